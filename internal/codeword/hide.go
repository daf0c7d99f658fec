package codeword

import (
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/vancomm/codeword/internal/qxw"
)

// Mask replaces hidden letters in words.
const Mask = '_'

const DefaultHideChance = 0.5

// LetterSet is a set of letters, iterated in sorted order by Sorted.
type LetterSet map[rune]struct{}

func (s LetterSet) Add(letters string) {
	for _, c := range letters {
		s[c] = struct{}{}
	}
}

func (s LetterSet) Has(c rune) bool {
	_, ok := s[c]
	return ok
}

func (s LetterSet) Sorted() []rune {
	return slices.Sorted(maps.Keys(s))
}

func (s LetterSet) String() string {
	return string(s.Sorted())
}

// RevealedLetters returns the letter at each revealed square. Squares without
// a letter contribute nothing.
func RevealedLetters(p *qxw.Puzzle, reveal []qxw.Point) []string {
	letters := make([]string, 0, len(reveal))
	for _, pt := range reveal {
		if sq, ok := p.Square(pt); ok && sq.Letter() != "" {
			letters = append(letters, sq.Letter())
		}
	}
	return letters
}

func distinct(letters []string) []string {
	out := slices.Clone(letters)
	slices.Sort(out)
	return slices.Compact(out)
}

// RevealedWords returns the words that contain more than one occurrence of
// the revealed letters, counted together.
func RevealedWords(words []string, revealedLetters []string) []string {
	letters := distinct(revealedLetters)
	var revealed []string
	for _, word := range words {
		count := 0
		for _, letter := range letters {
			if letter != "" {
				count += strings.Count(word, letter)
			}
		}
		if count > 1 {
			revealed = append(revealed, word)
		}
	}
	return revealed
}

// HiddenLetters starts from the revealed letters and, for each revealed word
// with probability hideChance, adds all of that word's letters.
func HiddenLetters(
	revealedLetters, revealedWords []string, hideChance float64, r *rand.Rand,
) (LetterSet, error) {
	if hideChance < 0 || hideChance > 1 {
		return nil, ErrInvalidHideChance
	}
	hidden := LetterSet{}
	for _, letter := range revealedLetters {
		hidden.Add(letter)
	}
	for _, word := range revealedWords {
		if r.Float64() < hideChance {
			hidden.Add(word)
		}
	}
	return hidden, nil
}

// HideOneLetter masks one random position of word.
func HideOneLetter(word string, r *rand.Rand) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[r.IntN(len(runes))] = Mask
	return string(runes)
}

// MaskLetters masks every occurrence of the hidden letters. Positions that are
// already masked stay masked.
func MaskLetters(word string, hidden LetterSet) string {
	return strings.Map(func(c rune) rune {
		if hidden.Has(c) {
			return Mask
		}
		return c
	}, word)
}

// HideLetters masks one random position in every word, then every occurrence
// of the hidden letters.
func HideLetters(words []string, hidden LetterSet, r *rand.Rand) []string {
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = MaskLetters(HideOneLetter(word, r), hidden)
	}
	return out
}
