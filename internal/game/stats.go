package game

// Stats accumulates answer outcomes for one session. TotalWords is fixed to
// the sequence length when the session starts, so Accuracy climbs toward its
// final value as rounds are answered.
type Stats struct {
	TotalWords       int
	CorrectAnswers   int
	IncorrectAnswers int
	CurrentStreak    int
	BestStreak       int
}

// RecordCorrect registers a correct answer and extends the streak.
func (s *Stats) RecordCorrect() {
	s.CorrectAnswers++
	s.CurrentStreak++
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
}

// RecordIncorrect registers a wrong answer and resets the streak.
func (s *Stats) RecordIncorrect() {
	s.IncorrectAnswers++
	s.CurrentStreak = 0
}

// Answered returns the number of evaluated rounds.
func (s Stats) Answered() int {
	return s.CorrectAnswers + s.IncorrectAnswers
}

// Accuracy returns the correct-answer percentage, 0 when nothing counts yet.
func (s Stats) Accuracy() float64 {
	if s.TotalWords == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalWords) * 100
}
