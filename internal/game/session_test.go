package game

import "testing"

func TestStats_RecordAndAccuracy(t *testing.T) {
	var s Stats
	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy with no words %v, want 0", got)
	}

	s.TotalWords = 4
	s.RecordCorrect()
	s.RecordCorrect()
	s.RecordIncorrect()
	s.RecordCorrect()

	if got := s.Answered(); got != 4 {
		t.Errorf("Answered %d, want 4", got)
	}
	if s.CorrectAnswers != 3 || s.IncorrectAnswers != 1 {
		t.Errorf("correct/incorrect = %d/%d, want 3/1", s.CorrectAnswers, s.IncorrectAnswers)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak %d, want 1", s.CurrentStreak)
	}
	if s.BestStreak != 2 {
		t.Errorf("BestStreak %d, want 2", s.BestStreak)
	}
	if s.BestStreak < s.CurrentStreak {
		t.Error("BestStreak must never trail CurrentStreak")
	}
	if got := s.Accuracy(); got != 75 {
		t.Errorf("Accuracy %v, want 75", got)
	}
}

func TestNewSession(t *testing.T) {
	bank := newTestBank(t)
	s := NewSession(bank, DifficultyMedium)
	if s.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty %v, want MEDIUM", s.Difficulty)
	}
	if got := s.RoundsTotal(); got != 10 {
		t.Errorf("RoundsTotal %d, want 10", got)
	}
	if s.Stats.TotalWords != 10 {
		t.Errorf("Stats.TotalWords %d, want 10", s.Stats.TotalWords)
	}
	if s.Index != 0 || s.Score != 0 {
		t.Errorf("fresh session has index=%d score=%d, want zeros", s.Index, s.Score)
	}
}

func TestSession_NextRound_WalksSequence(t *testing.T) {
	bank := newTestBank(t)
	s := NewSession(bank, DifficultyEasy)

	for i := 0; i < s.RoundsTotal(); i++ {
		round, ok := s.NextRound(bank)
		if !ok {
			t.Fatalf("NextRound signalled complete at round %d", i)
		}
		if round.Index != i {
			t.Errorf("round index %d, want %d", round.Index, i)
		}
		if round.Word != s.Sequence[i] {
			t.Errorf("round word %q, want %q", round.Word, s.Sequence[i])
		}
		if sortedLetters(round.Scrambled) != sortedLetters(round.Word) {
			t.Errorf("scrambled %q is not a permutation of %q", round.Scrambled, round.Word)
		}
		if len(round.Word) > 1 && round.Scrambled == round.Word {
			t.Errorf("scrambled %q equals the word", round.Scrambled)
		}
	}

	if _, ok := s.NextRound(bank); ok {
		t.Error("NextRound past the sequence should signal complete")
	}
	// Repeated calls keep signalling complete.
	if _, ok := s.NextRound(bank); ok {
		t.Error("NextRound should stay complete")
	}
}
