package codeword

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
)

var DefaultAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Codex maps each letter of an alphabet to a distinct code in 1..len(alphabet).
type Codex map[rune]int

// NewCodex shuffles alphabet and numbers the letters in shuffled order.
func NewCodex(alphabet []rune, r *rand.Rand) (Codex, error) {
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}
	byCode := slices.Clone(alphabet)
	r.Shuffle(len(byCode), func(i, j int) {
		byCode[i], byCode[j] = byCode[j], byCode[i]
	})
	codex := make(Codex, len(byCode))
	for i, letter := range byCode {
		codex[letter] = i + 1
	}
	return codex, nil
}

func validateAlphabet(alphabet []rune) error {
	if len(alphabet) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	seen := make(map[rune]bool, len(alphabet))
	for _, c := range alphabet {
		if c == Mask {
			return fmt.Errorf("%w: contains the mask symbol %q", ErrInvalidAlphabet, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate letter %q", ErrInvalidAlphabet, c)
		}
		seen[c] = true
	}
	return nil
}

// Code returns the code of a single-letter string, or 0 if letter is not
// exactly one letter of the alphabet.
func (c Codex) Code(letter string) int {
	runes := []rune(letter)
	if len(runes) != 1 {
		return 0
	}
	return c[runes[0]]
}

// ByCode returns the letters ordered by code; index i holds code i+1.
func (c Codex) ByCode() []rune {
	letters := make([]rune, len(c))
	for letter, code := range c {
		letters[code-1] = letter
	}
	return letters
}

// MarshalJSON encodes the codex as an object keyed by letter.
func (c Codex) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(c))
	for letter, code := range c {
		m[string(letter)] = code
	}
	return json.Marshal(m)
}
