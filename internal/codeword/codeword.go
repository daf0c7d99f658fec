package codeword

import (
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/codeword/internal/qxw"
)

var Log = logrus.New()

// revealAttempts bounds how often reveal selection is redrawn when the picked
// square borders a hole in the grid.
const revealAttempts = 8

type Options struct {
	Title      string // overrides the puzzle title when set
	HideChance float64
	Alphabet   []rune // DefaultAlphabet when nil
}

func DefaultOptions() Options {
	return Options{HideChance: DefaultHideChance}
}

type Cell struct {
	Present  bool   `json:"present"`
	Blocked  bool   `json:"blocked"`
	Letter   string `json:"letter,omitempty"`
	Code     int    `json:"code,omitempty"`
	Revealed bool   `json:"revealed,omitempty"`
}

type RevealedSquare struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter"`
}

// Codeword is everything a presentation layer needs to draw the puzzle.
type Codeword struct {
	Title         string           `json:"title"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	Cells         [][]Cell         `json:"cells"` // [y][x]
	Reveal        []RevealedSquare `json:"reveal"`
	Alphabet      string           `json:"alphabet"`
	Codex         Codex            `json:"codex"`
	Words         []string         `json:"words"`        // unmasked, sorted
	MaskedWords   []string         `json:"masked_words"` // Words with letters hidden, same order
	RevealedWords []string         `json:"revealed_words"`
	HiddenLetters string           `json:"hidden_letters"`
}

func (cw *Codeword) Cell(x, y int) Cell {
	return cw.Cells[y][x]
}

// Derive turns a parsed puzzle into a codeword puzzle. All randomness is drawn
// from r.
func Derive(p *qxw.Puzzle, opts Options, r *rand.Rand) (*Codeword, error) {
	if p.Grid == nil {
		return nil, ErrMissingGeometry
	}
	if opts.HideChance < 0 || opts.HideChance > 1 {
		return nil, ErrInvalidHideChance
	}
	alphabet := opts.Alphabet
	if alphabet == nil {
		alphabet = DefaultAlphabet
	}

	reveal, err := revealWithRetry(p, r)
	if err != nil {
		return nil, err
	}

	codex, err := NewCodex(alphabet, r)
	if err != nil {
		return nil, err
	}

	words, err := Words(p)
	if err != nil {
		return nil, err
	}

	revealedLetters := RevealedLetters(p, reveal)
	revealedWords := RevealedWords(words, revealedLetters)
	hidden, err := HiddenLetters(revealedLetters, revealedWords, opts.HideChance, r)
	if err != nil {
		return nil, err
	}
	masked := HideLetters(words, hidden, r)

	title := opts.Title
	if title == "" {
		title = p.TitleOr("")
	}

	cw := &Codeword{
		Title:         title,
		Width:         p.Grid.Width,
		Height:        p.Grid.Height,
		Alphabet:      string(alphabet),
		Codex:         codex,
		Words:         words,
		MaskedWords:   masked,
		RevealedWords: revealedWords,
		HiddenLetters: hidden.String(),
	}
	cw.Cells = cells(p, codex, reveal)
	for _, pt := range reveal {
		cw.Reveal = append(cw.Reveal, RevealedSquare{
			X: pt.X, Y: pt.Y, Letter: cw.Cell(pt.X, pt.Y).Letter,
		})
	}

	Log.WithFields(logrus.Fields{
		"reveal":         cw.Reveal,
		"revealed_words": revealedWords,
		"hidden_letters": cw.HiddenLetters,
		"words":          len(words),
	}).Debug("derived codeword")

	return cw, nil
}

func revealWithRetry(p *qxw.Puzzle, r *rand.Rand) (reveal []qxw.Point, err error) {
	for attempt := 1; attempt <= revealAttempts; attempt++ {
		reveal, err = Reveal(p, r)
		if !errors.Is(err, ErrNeighborNotInGrid) {
			return reveal, err
		}
		Log.WithField("attempt", attempt).Debug(err)
	}
	return nil, err
}

func cells(p *qxw.Puzzle, codex Codex, reveal []qxw.Point) [][]Cell {
	grid := make([][]Cell, p.Grid.Height)
	for y := range grid {
		grid[y] = make([]Cell, p.Grid.Width)
		for x := range grid[y] {
			sq, ok := p.Square(qxw.Point{X: x, Y: y})
			if !ok {
				continue
			}
			letter := sq.Letter()
			grid[y][x] = Cell{
				Present: true,
				Blocked: sq.Blocked(),
				Letter:  letter,
				Code:    codex.Code(letter),
			}
		}
	}
	for _, pt := range reveal {
		grid[pt.Y][pt.X].Revealed = true
	}
	return grid
}
