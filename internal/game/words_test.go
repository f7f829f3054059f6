package game

import (
	"sort"
	"strings"
	"testing"
)

func newTestBank(t *testing.T) *WordBank {
	t.Helper()
	bank, err := NewWordBank()
	if err != nil {
		t.Fatalf("NewWordBank: %v", err)
	}
	return bank
}

func sortedLetters(s string) string {
	letters := strings.Split(s, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

func TestWordBank_SelectTier_IsPermutation(t *testing.T) {
	bank := newTestBank(t)
	for _, d := range Difficulties() {
		want := bank.TierWords(d)
		got := bank.SelectTier(d)
		if len(got) != len(want) {
			t.Fatalf("%s: sequence length %d, want %d", d, len(got), len(want))
		}
		if len(got) != 10 {
			t.Errorf("%s: tier has %d words, want 10", d, len(got))
		}
		sortedGot := append([]string(nil), got...)
		sortedWant := append([]string(nil), want...)
		sort.Strings(sortedGot)
		sort.Strings(sortedWant)
		for i := range sortedWant {
			if sortedGot[i] != sortedWant[i] {
				t.Errorf("%s: sequence is not a permutation of the tier: %v vs %v", d, got, want)
				break
			}
		}
	}
}

func TestWordBank_SelectTier_DoesNotMutateTier(t *testing.T) {
	bank := newTestBank(t)
	before := bank.TierWords(DifficultyEasy)
	_ = bank.SelectTier(DifficultyEasy)
	after := bank.TierWords(DifficultyEasy)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tier mutated at %d: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestWordBank_Scramble_Permutes(t *testing.T) {
	bank := newTestBank(t)
	for _, word := range bank.TierWords(DifficultyMedium) {
		got := bank.Scramble(word)
		if sortedLetters(got) != sortedLetters(word) {
			t.Errorf("Scramble(%q) = %q, not a permutation", word, got)
		}
		if got == word {
			t.Errorf("Scramble(%q) returned the word unchanged", word)
		}
	}
}

func TestWordBank_Scramble_ShortWords(t *testing.T) {
	bank := newTestBank(t)
	for _, word := range []string{"", "a"} {
		if got := bank.Scramble(word); got != word {
			t.Errorf("Scramble(%q) = %q, want unchanged", word, got)
		}
	}
}

func TestWordBank_Scramble_RepeatedLettersTerminates(t *testing.T) {
	bank := newTestBank(t)
	// Every permutation equals the word; the retry cap must accept equality.
	if got := bank.Scramble("aaaa"); got != "aaaa" {
		t.Errorf("Scramble(aaaa) = %q, want aaaa", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"MEDIUM", DifficultyMedium, true},
		{" Hard ", DifficultyHard, true},
		{"extreme", DifficultyEasy, false},
		{"", DifficultyEasy, false},
	}
	for _, c := range cases {
		got, err := ParseDifficulty(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseDifficulty(%q): %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseDifficulty(%q) should fail", c.in)
		}
		if c.ok && got != c.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
