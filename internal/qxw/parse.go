package qxw

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func ParseFile(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads a Qxw save file. Parsing stops at the END record or at the end
// of input, whichever comes first. Unrecognized records are skipped.
func Parse(r io.Reader) (*Puzzle, error) {
	p := NewPuzzle()
	lr := newLineReader(r)

	for {
		rec, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("unable to read save file: %w", err)
		}
		if !ok {
			break
		}
		if rec.kind == End {
			break
		}
		if err := checkArity(rec); err != nil {
			return nil, err
		}

		var payload string
		if rec.kind.HasPayload() {
			if payload, err = lr.payload(rec); err != nil {
				return nil, err
			}
		}

		if err := p.apply(rec, payload); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func checkArity(rec record) error {
	a := rec.kind.arity()
	n := len(rec.args)
	if n < a.min || (a.max >= 0 && n > a.max) {
		if a.min == a.max {
			return malformed(rec, "%s takes %d arguments, got %d", rec.tag, a.min, n)
		}
		return malformed(rec, "%s takes %d to %d arguments, got %d", rec.tag, a.min, a.max, n)
	}
	return nil
}

func (p *Puzzle) apply(rec record, payload string) error {
	if !rec.kind.Implemented() {
		skip(rec)
		return nil
	}

	switch rec.kind {
	case GridProps:
		v, err := ints(rec, rec.args)
		if err != nil {
			return err
		}
		if !validSize(v[1]) || !validSize(v[2]) {
			return malformed(rec, "grid size %dx%d outside 0..%d", v[1], v[2], MaxGridSize)
		}
		p.Grid = &GridProperties{
			Kind:       GridKind(v[0]),
			Width:      v[1],
			Height:     v[2],
			Rotational: v[3] != 0,
			Mirror:     v[4] != 0,
			Diagonal:   v[5] != 0,
		}

	case Title:
		p.Title = &payload

	case Author:
		p.Author = &payload

	case DefaultLightProps:
		v, err := ints(rec, rec.args)
		if err != nil {
			return err
		}
		v = append(v, 0, 0)
		p.DefaultLight = &LightProperties{
			DictMask:    v[0],
			EntryMask:   v[1],
			Treatment:   v[2] != 0,
			Override:    v[3] != 0,
			Unnumbered:  v[4] != 0,
			Multiplexed: v[5] != 0,
		}

	case DefaultSquareProps:
		sp, err := squareProperties(rec, rec.args)
		if err != nil {
			return err
		}
		p.DefaultSquare = sp

	case DefaultSquareMark:
		if p.DefaultSquare == nil {
			return malformed(rec, "mark before default square properties")
		}
		corner, err := atoi(rec, rec.args[0])
		if err != nil {
			return err
		}
		p.DefaultSquare.SetMark(corner, payload)

	case TreatmentRecord:
		v, err := ints(rec, rec.args)
		if err != nil {
			return err
		}
		p.Treatment = &Treatment{
			Zero:      v[0],
			Mode:      v[1],
			Ambiguous: v[2] != 0,
			Order:     [2]int{v[3], v[4]},
			Info:      payload,
			Messages:  make(map[int]string),
		}

	case TreatmentMessage:
		if p.Treatment == nil {
			return malformed(rec, "message before treatment")
		}
		i, err := atoi(rec, rec.args[1])
		if err != nil {
			return err
		}
		p.Treatment.Messages[i] = payload

	case DictFilename, DictFilter, AnswerFilter:
		id, err := atoi(rec, rec.args[0])
		if err != nil {
			return err
		}
		switch rec.kind {
		case DictFilename:
			p.Dictionaries.Filenames[id] = payload
		case DictFilter:
			p.Dictionaries.DictFilters[id] = payload
		default:
			p.Dictionaries.AnswerFilters[id] = payload
		}

	case SquareRecord:
		v, err := ints(rec, rec.args[:5])
		if err != nil {
			return err
		}
		sq := Square{Bars: v[2], Merge: v[3], Flags: v[4]}
		if len(rec.args) == 6 {
			sq.Char = rec.args[5]
		}
		p.Put(Point{v[0], v[1]}, sq)

	case SquareProps:
		sq, err := p.existing(rec)
		if err != nil {
			return err
		}
		sp, err := squareProperties(rec, rec.args[2:])
		if err != nil {
			return err
		}
		sq.Properties = sp

	case SquareContent:
		sq, err := p.existing(rec)
		if err != nil {
			return err
		}
		layer, err := atoi(rec, rec.args[2])
		if err != nil {
			return err
		}
		content := strings.Join(rec.args[3:], " ")
		sq.setContent(layer, strings.ReplaceAll(content, `"`, ""))

	case End:
		// handled by Parse

	default:
		panic(fmt.Sprintf("qxw: unhandled record kind %d", rec.kind))
	}
	return nil
}

func skip(rec record) {
	entry := Log.WithFields(logrus.Fields{
		"line": rec.line,
		"tag":  rec.tag,
	})
	if rec.kind == Unrecognized {
		entry.Debug(ErrUnrecognizedTag)
		return
	}
	entry.Debug("record has no effect on the puzzle")
}

// existing resolves the square addressed by the first two arguments of rec.
func (p *Puzzle) existing(rec record) (*Square, error) {
	v, err := ints(rec, rec.args[:2])
	if err != nil {
		return nil, err
	}
	pt := Point{v[0], v[1]}
	sq, ok := p.Square(pt)
	if !ok {
		return nil, malformed(rec, "%s references %s before its SQ record", rec.tag, pt)
	}
	return sq, nil
}

func validSize(n int) bool {
	return 0 <= n && n <= MaxGridSize
}

func squareProperties(rec record, args []string) (*SquareProperties, error) {
	v, err := ints(rec, args[2:6])
	if err != nil {
		return nil, err
	}
	dech := Decheck(v[3])
	if dech < DecheckNormal || dech > DecheckSideBySide {
		return nil, malformed(rec, "invalid de-check style %d", v[3])
	}
	return &SquareProperties{
		Background: args[0],
		Foreground: args[1],
		Treatment:  v[0] != 0,
		Override:   v[1] != 0,
		FontStyle:  v[2],
		Decheck:    dech,
		MarkColor:  args[6],
	}, nil
}

func atoi(rec record, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, malformed(rec, "%q is not an integer", s)
	}
	return n, nil
}

func ints(rec record, args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, s := range args {
		n, err := atoi(rec, s)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return v, nil
}
