package codeword

import (
	"slices"
	"strings"

	"github.com/vancomm/codeword/internal/qxw"
)

// minWordLength is the shortest run of squares that counts as a word.
const minWordLength = 2

type wordScanner struct {
	words []string
	b     strings.Builder
	n     int
}

func (s *wordScanner) push(letter string) {
	s.b.WriteString(letter)
	s.n++
}

func (s *wordScanner) flush() {
	if s.n >= minWordLength {
		s.words = append(s.words, s.b.String())
	}
	s.b.Reset()
	s.n = 0
}

// visit extends the current run with the square at pt, or closes the run if
// pt is absent, blocked or has no letter.
func (s *wordScanner) visit(p *qxw.Puzzle, pt qxw.Point) {
	sq, ok := p.Square(pt)
	if !ok || sq.Blocked() || sq.Letter() == "" {
		s.flush()
		return
	}
	s.push(sq.Letter())
}

func WordsAcross(p *qxw.Puzzle) ([]string, error) {
	if p.Grid == nil {
		return nil, ErrMissingGeometry
	}
	var s wordScanner
	for y := range p.Grid.Height {
		for x := range p.Grid.Width {
			s.visit(p, qxw.Point{X: x, Y: y})
		}
		s.flush()
	}
	return s.words, nil
}

func WordsDown(p *qxw.Puzzle) ([]string, error) {
	if p.Grid == nil {
		return nil, ErrMissingGeometry
	}
	var s wordScanner
	for x := range p.Grid.Width {
		for y := range p.Grid.Height {
			s.visit(p, qxw.Point{X: x, Y: y})
		}
		s.flush()
	}
	return s.words, nil
}

// Words returns every across and down word in the grid, sorted. Equal words
// are kept. A square without a letter ends a word like a blocked square does.
func Words(p *qxw.Puzzle) ([]string, error) {
	across, err := WordsAcross(p)
	if err != nil {
		return nil, err
	}
	down, err := WordsDown(p)
	if err != nil {
		return nil, err
	}
	words := append(across, down...)
	slices.Sort(words)
	return words, nil
}
