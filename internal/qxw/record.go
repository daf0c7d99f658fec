package qxw

type RecordKind int

const (
	Unrecognized RecordKind = iota
	GridProps               // GP
	Title                   // TTL
	Author                  // AUT
	Alphabet                // ALP
	DefaultLightProps       // GLP
	DefaultSquareProps      // GSP
	DefaultSquareMark       // GSPMK
	TreatmentRecord         // TM
	TreatmentMessage        // TMSG
	TreatmentConstraint     // TCST
	DictFilename            // DFN
	DictFilter              // DSF
	AnswerFilter            // DAF
	SquareRecord            // SQ
	SquareProps             // SQSP
	SquarePropsMark         // SQSPMK
	SquareLightProps        // SQLP
	SquareContent           // SQCT
	LightList               // VL
	LightProps              // VLP
	End                     // END
)

var tags = map[string]RecordKind{
	"GP":     GridProps,
	"TTL":    Title,
	"AUT":    Author,
	"ALP":    Alphabet,
	"GLP":    DefaultLightProps,
	"GSP":    DefaultSquareProps,
	"GSPMK":  DefaultSquareMark,
	"TM":     TreatmentRecord,
	"TMSG":   TreatmentMessage,
	"TCST":   TreatmentConstraint,
	"DFN":    DictFilename,
	"DSF":    DictFilter,
	"DAF":    AnswerFilter,
	"SQ":     SquareRecord,
	"SQSP":   SquareProps,
	"SQSPMK": SquarePropsMark,
	"SQLP":   SquareLightProps,
	"SQCT":   SquareContent,
	"VL":     LightList,
	"VLP":    LightProps,
	"END":    End,
}

func KindOf(tag string) RecordKind {
	return tags[tag]
}

// arity bounds the number of arguments following the tag; max < 0 means
// unbounded.
type arity struct{ min, max int }

func (k RecordKind) arity() arity {
	switch k {
	case GridProps:
		return arity{6, 6}
	case Title, Author:
		return arity{0, 0}
	case DefaultLightProps:
		return arity{4, 6}
	case DefaultSquareProps:
		return arity{7, 7}
	case DefaultSquareMark, DictFilename, DictFilter, AnswerFilter:
		return arity{1, 1}
	case TreatmentRecord:
		return arity{5, 5}
	case TreatmentMessage:
		return arity{2, 2}
	case SquareRecord:
		return arity{5, 6}
	case SquareProps:
		return arity{9, 9}
	case SquareContent:
		return arity{4, -1}
	default:
		return arity{0, -1}
	}
}

// HasPayload reports whether records of kind k carry a continuation line.
func (k RecordKind) HasPayload() bool {
	switch k {
	case Title, Author, DefaultSquareMark, TreatmentRecord, TreatmentMessage,
		DictFilename, DictFilter, AnswerFilter, SquarePropsMark:
		return true
	default:
		return false
	}
}

// Implemented reports whether records of kind k affect the puzzle model.
func (k RecordKind) Implemented() bool {
	switch k {
	case Unrecognized, Alphabet, TreatmentConstraint, SquarePropsMark,
		SquareLightProps, LightList, LightProps:
		return false
	default:
		return true
	}
}
