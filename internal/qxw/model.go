package qxw

import (
	"fmt"
	"strings"
)

type GridKind int

const (
	GridSquare GridKind = iota
	GridHexH
	GridHexV
	GridCircleA
	GridCircleB
	GridCylinderLR
	GridCylinderTB
	GridMoebiusLR
	GridMoebiusTB
	GridTorus
)

func (k GridKind) String() string {
	switch k {
	case GridSquare:
		return "square"
	case GridHexH:
		return "hexH"
	case GridHexV:
		return "hexV"
	case GridCircleA:
		return "circleA"
	case GridCircleB:
		return "circleB"
	case GridCylinderLR:
		return "cylinderLR"
	case GridCylinderTB:
		return "cylinderTB"
	case GridMoebiusLR:
		return "moebiusLR"
	case GridMoebiusTB:
		return "moebiusTB"
	case GridTorus:
		return "torus"
	default:
		return fmt.Sprintf("GridKind(%d)", int(k))
	}
}

// MaxGridSize is the largest width or height Qxw can edit.
const MaxGridSize = 63

type GridProperties struct {
	Kind          GridKind
	Width, Height int
	Rotational    bool // symmr
	Mirror        bool // symmm
	Diagonal      bool // symmd
}

func (g GridProperties) InBounds(pt Point) bool {
	return 0 <= pt.X && pt.X < g.Width && 0 <= pt.Y && pt.Y < g.Height
}

type LightProperties struct {
	DictMask    int
	EntryMask   int
	Treatment   bool
	Override    bool
	Unnumbered  bool // dnran
	Multiplexed bool
}

type Decheck int

const (
	DecheckNormal Decheck = iota
	DecheckStacked
	DecheckSideBySide
)

type SquareProperties struct {
	Background string
	Foreground string
	Treatment  bool
	Override   bool
	FontStyle  int
	Decheck    Decheck
	MarkColor  string
	Marks      map[int]string // corner -> mark text
}

func (sp *SquareProperties) SetMark(corner int, text string) {
	if sp.Marks == nil {
		sp.Marks = make(map[int]string)
	}
	sp.Marks[corner] = text
}

const (
	FlagBlocked  = 1 << 0
	FlagOutside  = 1 << 3
	FlagSelected = 1 << 4
)

type Square struct {
	Bars       int
	Merge      int
	Flags      int
	Char       string // single character field of the SQ record, not authoritative
	Properties *SquareProperties
	Contents   map[int]string // layer -> letter
}

func (s *Square) Blocked() bool {
	return s.Flags&FlagBlocked != 0
}

func (s *Square) Outside() bool {
	return s.Flags&FlagOutside != 0
}

// Letter returns the solution letter (layer 0), or "" if the square has none.
// Qxw writes "." for an unfilled square.
func (s *Square) Letter() string {
	return s.LetterAt(0)
}

func (s *Square) LetterAt(layer int) string {
	c := s.Contents[layer]
	if c == "." {
		return ""
	}
	return c
}

func (s *Square) setContent(layer int, content string) {
	if s.Contents == nil {
		s.Contents = make(map[int]string)
	}
	s.Contents[layer] = content
}

func (s Square) String() string {
	return fmt.Sprintf("Square(bars=%d merge=%d fl=%d letter=%q)",
		s.Bars, s.Merge, s.Flags, s.Letter())
}

type Dictionaries struct {
	Filenames     map[int]string
	DictFilters   map[int]string
	AnswerFilters map[int]string
}

type Treatment struct {
	Zero      int
	Mode      int
	Ambiguous bool // tambaw
	Order     [2]int
	Info      string
	Messages  map[int]string
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Puzzle struct {
	Title  *string
	Author *string

	Grid          *GridProperties
	DefaultLight  *LightProperties
	DefaultSquare *SquareProperties
	Treatment     *Treatment
	Dictionaries  Dictionaries

	index   map[Point]int
	squares []Square
	order   []Point
}

func NewPuzzle() *Puzzle {
	return &Puzzle{
		Dictionaries: Dictionaries{
			Filenames:     make(map[int]string),
			DictFilters:   make(map[int]string),
			AnswerFilters: make(map[int]string),
		},
		index: make(map[Point]int),
	}
}

// Square looks up the square at pt. Coordinates never declared by a square
// record are not part of the grid.
func (p *Puzzle) Square(pt Point) (*Square, bool) {
	i, ok := p.index[pt]
	if !ok {
		return nil, false
	}
	return &p.squares[i], true
}

// Put declares the square at pt, replacing any previous declaration.
func (p *Puzzle) Put(pt Point, sq Square) {
	if i, ok := p.index[pt]; ok {
		p.squares[i] = sq
		return
	}
	p.index[pt] = len(p.squares)
	p.squares = append(p.squares, sq)
	p.order = append(p.order, pt)
}

func (p *Puzzle) Len() int {
	return len(p.squares)
}

// Points returns the declared coordinates in declaration order.
func (p *Puzzle) Points() []Point {
	return append([]Point(nil), p.order...)
}

// PropertiesAt resolves the square properties in effect at pt: the square's
// own override when present, the puzzle default otherwise.
func (p *Puzzle) PropertiesAt(pt Point) *SquareProperties {
	if sq, ok := p.Square(pt); ok && sq.Properties != nil {
		return sq.Properties
	}
	return p.DefaultSquare
}

func (p *Puzzle) TitleOr(fallback string) string {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return fallback
	}
	return *p.Title
}

func (p *Puzzle) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Puzzle(title=%q", p.TitleOr(""))
	if p.Grid != nil {
		fmt.Fprintf(&b, " %s %dx%d", p.Grid.Kind, p.Grid.Width, p.Grid.Height)
	}
	fmt.Fprintf(&b, " squares=%d)", len(p.squares))
	return b.String()
}
