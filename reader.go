package m3u8

import (
	"bytes"
	"io"

	"github.com/simonhull/m3u8/tag"
)

// Reader splits a playlist buffer into classified lines.
//
// Reader borrows data: returned lines and their tag records reference
// sub-slices of it, valid while the buffer is alive and unmodified.
type Reader struct {
	data    []byte
	opts    *parseOptions
	lineno  int
	started bool
}

// NewReader returns a reader over data.
//
// Options can be provided to customize parsing behavior:
//
//	r := m3u8.NewReader(data, m3u8.WithStrictLines())
func NewReader(data []byte, opts ...Option) *Reader {
	options := defaultParseOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Reader{data: data, opts: options}
}

// Next returns the next line of the playlist.
//
// At end of input Next returns io.EOF. A malformed tag line consumes the
// line and returns a ParseError; calling Next again continues with the
// following line, so callers choose between skipping bad lines and
// aborting.
func (r *Reader) Next() (Line, error) {
	if len(r.data) == 0 {
		return Line{}, io.EOF
	}
	r.lineno++
	first := !r.started
	r.started = true

	window, term, rest := splitRawLine(r.data)
	r.data = rest

	line, err := r.classify(window, term)
	if err != nil {
		return Line{}, &ParseError{Line: r.lineno, Err: err}
	}

	if first && r.opts.strict {
		if _, ok := line.Tag().(*tag.M3u); !ok {
			return Line{}, &ParseError{Line: r.lineno, Err: ErrMissingHeader}
		}
	}
	return line, nil
}

// ReadAll drains the reader, stopping at the first malformed line.
func (r *Reader) ReadAll() ([]Line, error) {
	var lines []Line
	for {
		line, err := r.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

// splitRawLine bounds data to its first line. window excludes the
// terminator, term is the terminator as found ("" with none at end of
// buffer), rest starts on the following line.
func splitRawLine(data []byte) (window []byte, term string, rest []byte) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return data, "", nil
	}
	window, rest = data[:nl], data[nl+1:]
	term = "\n"
	if n := len(window); n > 0 && window[n-1] == '\r' {
		window = window[:n-1]
		term = "\r\n"
	}
	return window, term, rest
}

func (r *Reader) classify(window []byte, term string) (Line, error) {
	switch {
	case len(window) == 0:
		return Line{kind: LineBlank, raw: window, term: term}, nil
	case window[0] != '#':
		return Line{kind: LineURI, raw: window, term: term}, nil
	case bytes.HasPrefix(window, []byte("#EXT")):
		t, err := parseTagLine(window, r.opts.custom)
		if err != nil {
			return Line{}, err
		}
		return Line{kind: LineTag, raw: window, term: term, tag: t}, nil
	default:
		return Line{kind: LineComment, raw: window, term: term}, nil
	}
}

// parseTagLine splits a "#EXT..." line at its first colon and dispatches
// on the tag name. A line with no colon carries no value.
func parseTagLine(window []byte, custom []tag.CustomParser) (tag.Tag, error) {
	rest := window[1:]
	name := rest
	value := tag.EmptyValue()
	if i := bytes.IndexByte(rest, ':'); i >= 0 {
		name = rest[:i]
		v, _, err := tag.ParseValue(rest[i+1:])
		if err != nil {
			return nil, err
		}
		value = v
	}
	return tag.Parse(name, value, window, custom)
}
