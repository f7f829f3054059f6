package game

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"
)

//go:embed words/*.txt
var wordsFS embed.FS

// scrambleAttempts caps the retries spent looking for a permutation that
// differs from the word. Words made of one repeated letter never produce
// one, so the cap keeps Scramble from spinning forever.
const scrambleAttempts = 50

// WordBank holds the embedded word tiers and produces shuffled round
// sequences and scrambled words.
type WordBank struct {
	tiers map[Difficulty][]string
}

// NewWordBank loads all embedded tiers. It fails if any tier file is
// missing or empty.
func NewWordBank() (*WordBank, error) {
	tiers := make(map[Difficulty][]string, 3)
	for _, d := range Difficulties() {
		words, err := loadTier(d)
		if err != nil {
			return nil, err
		}
		tiers[d] = words
	}
	return &WordBank{tiers: tiers}, nil
}

// loadTier reads the embedded word file for one difficulty.
func loadTier(d Difficulty) ([]string, error) {
	name := "words/" + strings.ToLower(d.String()) + ".txt"
	b, err := fs.ReadFile(wordsFS, name)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("word tier %s is empty", d)
	}
	return out, nil
}

// TierWords returns the unshuffled word list for a difficulty.
func (b *WordBank) TierWords(d Difficulty) []string {
	words := b.tiers[d]
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// SelectTier copies the tier's word list and shuffles it uniformly,
// producing the round sequence for one session.
func (b *WordBank) SelectTier(d Difficulty) []string {
	sequence := b.TierWords(d)
	rand.Shuffle(len(sequence), func(i, j int) {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	})
	return sequence
}

// Scramble returns a random permutation of word that differs from it.
// Words of length <= 1 are returned as-is; if no differing permutation is
// found within the retry cap the last permutation is accepted.
func (b *WordBank) Scramble(word string) string {
	letters := []rune(word)
	if len(letters) <= 1 {
		return word
	}
	scrambled := word
	for i := 0; i < scrambleAttempts && scrambled == word; i++ {
		rand.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		scrambled = string(letters)
	}
	return scrambled
}
