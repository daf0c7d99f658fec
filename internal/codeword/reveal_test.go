package codeword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/codeword/internal/qxw"
)

func adjacent(a, b qxw.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

func TestRevealShape(t *testing.T) {
	p := grid("CAT#", "A#OX", "BOW#", "#E#Z")
	for seed := range uint64(200) {
		reveal, err := Reveal(p, newRand(seed))
		require.NoError(t, err)
		require.NotEmpty(t, reveal)
		require.LessOrEqual(t, len(reveal), 2)

		for _, pt := range reveal {
			sq, ok := p.Square(pt)
			require.True(t, ok)
			assert.False(t, sq.Blocked(), "revealed blocked square %s", pt)
		}
		if len(reveal) == 2 {
			assert.True(t, adjacent(reveal[0], reveal[1]), "%v not adjacent", reveal)
		}
	}
}

func TestRevealNeighborPriority(t *testing.T) {
	// left, then up, then right
	want := map[qxw.Point]qxw.Point{
		{X: 0, Y: 0}: {X: 1, Y: 0},
		{X: 1, Y: 0}: {X: 0, Y: 0},
		{X: 0, Y: 1}: {X: 0, Y: 0},
		{X: 1, Y: 1}: {X: 0, Y: 1},
	}
	p := grid("AB", "CD")
	seen := make(map[qxw.Point]bool)
	for seed := range uint64(100) {
		reveal, err := Reveal(p, newRand(seed))
		require.NoError(t, err)
		require.Len(t, reveal, 2)
		assert.Equal(t, want[reveal[0]], reveal[1], "neighbor of %s", reveal[0])
		seen[reveal[0]] = true
	}
	assert.Len(t, seen, 4, "every square should be picked at least once")
}

func TestRevealDownNeighbor(t *testing.T) {
	p := grid("A#", "B#")
	for seed := range uint64(20) {
		reveal, err := Reveal(p, newRand(seed))
		require.NoError(t, err)
		if reveal[0] == (qxw.Point{X: 0, Y: 0}) {
			assert.Equal(t, []qxw.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}, reveal)
		}
	}
}

func TestRevealIsolated(t *testing.T) {
	p := grid("###", "#A#", "###")
	reveal, err := Reveal(p, newRand(1))
	require.NoError(t, err)
	assert.Equal(t, []qxw.Point{{X: 1, Y: 1}}, reveal)
}

func TestRevealNeighborNotInGrid(t *testing.T) {
	p := grid("~A", "~B")
	_, err := Reveal(p, newRand(1))
	assert.ErrorIs(t, err, ErrNeighborNotInGrid)
}

func TestRevealErrors(t *testing.T) {
	_, err := Reveal(grid("##"), newRand(1))
	assert.ErrorIs(t, err, ErrNoOpenSquares)

	_, err = Reveal(qxw.NewPuzzle(), newRand(1))
	assert.ErrorIs(t, err, ErrMissingGeometry)
}

func TestRevealDeterministic(t *testing.T) {
	p := grid("CAT", "A#O", "BOW")
	a, err := Reveal(p, newRand(42))
	require.NoError(t, err)
	b, err := Reveal(p, newRand(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
