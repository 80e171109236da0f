package m3u8

import (
	"bytes"
	"io"
)

// Writer serializes playlist lines to an output stream.
//
// Untouched parsed lines emit their source bytes with their original
// terminator, so a playlist written straight back reproduces its input
// exactly, carriage returns included. Constructed lines and lines whose
// tag record has been mutated emit the canonical rendering and a bare
// newline.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes one line. After a write error every further call
// returns the same error.
func (w *Writer) WriteLine(l Line) error {
	if w.err != nil {
		return w.err
	}
	b := l.Bytes()
	term := l.term
	if !l.untouched() {
		term = "\n"
	}
	if len(b) > 0 {
		if _, err := w.w.Write(b); err != nil {
			w.err = err
			return err
		}
	}
	if len(term) > 0 {
		if _, err := io.WriteString(w.w, term); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes every line in order.
func (w *Writer) WriteAll(lines []Line) error {
	for _, l := range lines {
		if err := w.WriteLine(l); err != nil {
			return err
		}
	}
	return nil
}

// Render serializes lines into a fresh buffer.
func Render(lines []Line) []byte {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_ = w.WriteAll(lines) //nolint:errcheck // bytes.Buffer writes cannot fail
	return buf.Bytes()
}
