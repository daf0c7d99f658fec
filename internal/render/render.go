package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/vancomm/codeword/internal/codeword"
)

//go:embed codeword.css
var stylesheet string

//go:embed codeword.html.tmpl
var page string

var tmpl = template.Must(template.New("codeword").Funcs(template.FuncMap{
	"spaced": spaced,
}).Parse(page))

// thinSpace pads masked positions so consecutive masks stay distinguishable.
const thinSpace = "\u2009"

func spaced(word string) string {
	mask := string(codeword.Mask)
	return strings.ReplaceAll(word, mask, thinSpace+mask+thinSpace)
}

type view struct {
	*codeword.Codeword
	Style    template.CSS
	Numbers  []int
	Letters  []string
	Rows     int
	WordRows int
}

func newView(cw *codeword.Codeword) view {
	v := view{
		Codeword: cw,
		Style:    template.CSS(stylesheet),
	}
	for i, c := range cw.Alphabet {
		v.Numbers = append(v.Numbers, i+1)
		v.Letters = append(v.Letters, string(c))
	}
	v.Rows = (len(v.Numbers) + 1) / 2
	v.WordRows = max(1, (len(cw.MaskedWords)+2)/3)
	return v
}

// HTML writes a standalone HTML page for the puzzle.
func HTML(w io.Writer, cw *codeword.Codeword) error {
	if err := tmpl.Execute(w, newView(cw)); err != nil {
		return fmt.Errorf("unable to render html: %w", err)
	}
	return nil
}

// Text writes a plain-text rendering: the grid of codes with revealed letters,
// then the word list.
func Text(w io.Writer, cw *codeword.Codeword) error {
	var b strings.Builder
	if cw.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", cw.Title)
	}
	for y := range cw.Height {
		for x := range cw.Width {
			cell := cw.Cell(x, y)
			switch {
			case !cell.Present:
				b.WriteString("     ")
			case cell.Blocked:
				b.WriteString(" ### ")
			case cell.Revealed:
				fmt.Fprintf(&b, " %2d%s ", cell.Code, cell.Letter)
			case cell.Code > 0:
				fmt.Fprintf(&b, " %2d  ", cell.Code)
			default:
				b.WriteString("  .  ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, word := range cw.MaskedWords {
		fmt.Fprintln(&b, word)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
