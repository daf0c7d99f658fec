package qxw

import (
	"bufio"
	"io"
	"strings"
)

const commentMarker = '#'

// foldMarker is the character Qxw inserts when folding long strings across
// lines. It is removed from continuation lines, nothing else is decoded.
const foldMarker = "+"

type record struct {
	line int
	text string
	tag  string
	args []string
	kind RecordKind
}

// lineReader splits a save file into record headers. Records that carry a
// payload fetch it with an explicit call to payload right after next.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

// next returns the next record header, skipping comments and blank lines.
// ok is false at end of input; err is set only on read failures.
func (lr *lineReader) next() (rec record, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimRight(lr.sc.Text(), "\r\n")
		if len(text) > 0 && text[0] == commentMarker {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		return record{
			line: lr.line,
			text: text,
			tag:  fields[0],
			args: fields[1:],
			kind: KindOf(fields[0]),
		}, true, nil
	}
	return record{}, false, lr.sc.Err()
}

// payload consumes the continuation line belonging to rec.
func (lr *lineReader) payload(rec record) (string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", err
		}
		return "", malformed(rec, "missing continuation line")
	}
	lr.line++
	text := strings.TrimRight(lr.sc.Text(), "\r\n")
	return strings.ReplaceAll(text, foldMarker, ""), nil
}
