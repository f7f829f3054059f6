package game

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the built-in word tiers.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties returns all tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the canonical tier name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyMedium:
		return "MEDIUM"
	case DifficultyHard:
		return "HARD"
	default:
		return "UNKNOWN"
	}
}

// ParseDifficulty resolves a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return DifficultyEasy, nil
	case "MEDIUM":
		return DifficultyMedium, nil
	case "HARD":
		return DifficultyHard, nil
	default:
		return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
	}
}
