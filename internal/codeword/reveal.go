package codeword

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/codeword/internal/qxw"
)

// neighbors in the order they are tried: left, up, right, down.
var neighbors = [4]qxw.Point{{X: -1}, {Y: -1}, {X: 1}, {Y: 1}}

// OpenSquares lists the coordinates of existing, non-blocked squares in
// row-major order.
func OpenSquares(p *qxw.Puzzle) ([]qxw.Point, error) {
	if p.Grid == nil {
		return nil, ErrMissingGeometry
	}
	open := make([]qxw.Point, 0, p.Len())
	for y := range p.Grid.Height {
		for x := range p.Grid.Width {
			pt := qxw.Point{X: x, Y: y}
			if sq, ok := p.Square(pt); ok && !sq.Blocked() {
				open = append(open, pt)
			}
		}
	}
	return open, nil
}

// Reveal picks a random open square and, if possible, one open neighbor of
// it. The result always starts with the randomly picked square.
func Reveal(p *qxw.Puzzle, r *rand.Rand) ([]qxw.Point, error) {
	open, err := OpenSquares(p)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, ErrNoOpenSquares
	}

	primary := open[r.IntN(len(open))]
	reveal := []qxw.Point{primary}

	for _, d := range neighbors {
		pt := qxw.Point{X: primary.X + d.X, Y: primary.Y + d.Y}
		if !p.Grid.InBounds(pt) {
			continue
		}
		sq, ok := p.Square(pt)
		if !ok {
			return nil, fmt.Errorf("%w: %s next to %s", ErrNeighborNotInGrid, pt, primary)
		}
		if !sq.Blocked() {
			reveal = append(reveal, pt)
			break
		}
	}

	return reveal, nil
}
