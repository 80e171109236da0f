package m3u8

import (
	"github.com/simonhull/m3u8/tag"
)

// LineKind identifies what a playlist line is.
type LineKind uint8

const (
	// LineBlank is an empty line.
	LineBlank LineKind = iota
	// LineComment is a '#' line without the "#EXT" tag prefix.
	LineComment
	// LineURI is a segment or playlist URI.
	LineURI
	// LineTag is a "#EXT..." line, parsed into a tag record.
	LineTag
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineURI:
		return "uri"
	case LineTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Line is one line of a playlist.
//
// A parsed Line retains its source bytes and the terminator that followed
// it, so a playlist read and written without modification reproduces its
// input byte-for-byte. The content of a tag line lives in its tag record;
// mutating the record is how the line changes.
//
// Parsed lines borrow sub-slices of the source buffer and stay valid while
// it is alive and unmodified. Constructed lines own their data.
type Line struct {
	kind LineKind
	raw  []byte // source bytes without the terminator; nil when constructed
	term string // "\n", "\r\n", or "" at end of input
	tag  tag.Tag
}

// TagLine wraps a tag record as a playlist line.
func TagLine(t tag.Tag) Line {
	return Line{kind: LineTag, tag: t, term: "\n"}
}

// URILine builds a URI line.
func URILine(uri string) Line {
	return Line{kind: LineURI, raw: []byte(uri), term: "\n"}
}

// CommentLine builds a comment line. text is the comment without the
// leading '#'.
func CommentLine(text string) Line {
	raw := make([]byte, 0, 1+len(text))
	raw = append(raw, '#')
	raw = append(raw, text...)
	return Line{kind: LineComment, raw: raw, term: "\n"}
}

// BlankLine builds an empty line.
func BlankLine() Line {
	return Line{kind: LineBlank, term: "\n"}
}

// Kind reports what the line is.
func (l Line) Kind() LineKind {
	return l.kind
}

// Tag returns the tag record of a LineTag line, nil for any other kind.
func (l Line) Tag() tag.Tag {
	if l.kind != LineTag {
		return nil
	}
	return l.tag
}

// URI returns the text of a LineURI line, "" for any other kind.
func (l Line) URI() string {
	if l.kind != LineURI {
		return ""
	}
	return string(l.raw)
}

// Raw returns the source bytes of a parsed line without its terminator.
// Constructed tag lines return nil; use Bytes for the current content.
func (l Line) Raw() []byte {
	return l.raw
}

// Bytes returns the line's current content without its terminator: the
// source bytes for blank, comment and URI lines, and the tag record's
// rendering for tag lines.
func (l Line) Bytes() []byte {
	if l.kind == LineTag && l.tag != nil {
		return l.tag.Line()
	}
	return l.raw
}

// untouched reports whether the line still renders its source bytes.
// Tag records serve the retained source slice itself until a mutation, so
// comparing slice identity is enough.
func (l Line) untouched() bool {
	if l.kind != LineTag {
		return true
	}
	if len(l.raw) == 0 || l.tag == nil {
		return false
	}
	b := l.tag.Line()
	return len(b) == len(l.raw) && &b[0] == &l.raw[0]
}
