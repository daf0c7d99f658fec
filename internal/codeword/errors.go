package codeword

import "errors"

var (
	ErrMissingGeometry   = errors.New("puzzle has no grid geometry")
	ErrNoOpenSquares     = errors.New("puzzle has no open squares")
	ErrNeighborNotInGrid = errors.New("neighbor not in grid")
	ErrInvalidHideChance = errors.New("hide chance must be within [0, 1]")
	ErrInvalidAlphabet   = errors.New("invalid alphabet")
)
