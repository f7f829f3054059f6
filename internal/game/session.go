package game

// Round is one word-guessing unit. Scrambled is a permutation of Word that
// differs from it whenever the word has more than one letter.
type Round struct {
	Word      string
	Scrambled string
	Index     int
}

// Session is one play-through: the shuffled round sequence for the chosen
// difficulty, the position within it, the score, and the statistics. It is
// created when a difficulty is chosen and dropped on return to the menu.
type Session struct {
	Difficulty Difficulty
	Sequence   []string
	Index      int
	Score      int
	Stats      Stats
}

// NewSession shuffles the tier's words into a fresh sequence with zeroed
// stats.
func NewSession(bank *WordBank, d Difficulty) *Session {
	sequence := bank.SelectTier(d)
	return &Session{
		Difficulty: d,
		Sequence:   sequence,
		Stats:      Stats{TotalWords: len(sequence)},
	}
}

// NextRound builds the next Round from the sequence, scrambling its word.
// It reports false when the sequence is exhausted (session complete).
func (s *Session) NextRound(bank *WordBank) (Round, bool) {
	if s.Index >= len(s.Sequence) {
		return Round{}, false
	}
	word := s.Sequence[s.Index]
	round := Round{
		Word:      word,
		Scrambled: bank.Scramble(word),
		Index:     s.Index,
	}
	s.Index++
	return round, true
}

// RoundsTotal returns the number of rounds in the session.
func (s *Session) RoundsTotal() int {
	return len(s.Sequence)
}
