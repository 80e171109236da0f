package tag

import (
	"github.com/simonhull/m3u8/internal/lazy"
	"github.com/simonhull/m3u8/internal/scan"
)

// The scanning model is implemented in an internal package; the aliases
// below are the public face of it. Custom tag parsers receive these types
// and can call the scanner directly on their own payloads.

// Value is the semi-parsed form of a tag's value span.
type Value = scan.Value

// Kind discriminates the four shapes a Value can take.
type Kind = scan.Kind

const (
	// KindEmpty: the tag had no value at all (no colon).
	KindEmpty = scan.KindEmpty
	// KindFloat: a decimal float first, then a free-text tail after a comma.
	KindFloat = scan.KindFloat
	// KindAttrList: a NAME=VALUE attribute list.
	KindAttrList = scan.KindAttrList
	// KindUnparsed: an opaque span the owning tag interprets itself.
	KindUnparsed = scan.KindUnparsed
)

// AttrValue is one scanned attribute value.
type AttrValue = scan.AttrValue

// AttrKind discriminates the four attribute value shapes.
type AttrKind = scan.AttrKind

const (
	AttrInteger  = scan.AttrInteger
	AttrFloat    = scan.AttrFloat
	AttrQuoted   = scan.AttrQuoted
	AttrUnquoted = scan.AttrUnquoted
)

// Attr is one NAME=VALUE pair as scanned.
type Attr = scan.Attr

// Attrs is a scanned attribute list in source order.
type Attrs = scan.Attrs

// SyntaxError is the scanner's error type.
type SyntaxError = scan.SyntaxError

// Cell is the tri-state holder behind optional tag fields, exported for
// custom tag implementations that want the same lazy semantics.
type Cell[T any] = lazy.Cell[T]

const (
	StateAbsent = lazy.StateAbsent
	StateRaw    = lazy.StateRaw
	StateSet    = lazy.StateSet
)

// CellOf seeds a cell with a typed value.
func CellOf[T any](v T) Cell[T] {
	return lazy.Of(v)
}

// CellFromRaw seeds a cell with a scanned, unconverted value.
func CellFromRaw[T any](raw AttrValue) Cell[T] {
	return lazy.FromRaw[T](raw)
}

// ParseValue classifies one tag value span. See the package documentation
// for the four shapes. rest is the input after the consumed line.
func ParseValue(data []byte) (Value, []byte, error) {
	return scan.Parse(data)
}

// ParseAttrValue scans a single attribute value, for custom parsers that
// walk their own attribute lists. more reports a trailing comma.
func ParseAttrValue(data []byte) (AttrValue, []byte, bool, error) {
	return scan.ParseAttr(data)
}

// EmptyValue returns the Value of a tag with no payload.
func EmptyValue() Value {
	return scan.Empty()
}

// UnparsedValue wraps raw bytes as an opaque Value.
func UnparsedValue(raw []byte) Value {
	return scan.Unparsed(raw)
}

// IntegerValue builds a decimal-integer AttrValue.
func IntegerValue(u uint64) AttrValue {
	return scan.IntegerValue(u)
}

// FloatValue builds a signed-float AttrValue.
func FloatValue(f float64) AttrValue {
	return scan.FloatValue(f)
}

// QuotedValue builds a quoted-string AttrValue over s.
func QuotedValue(s []byte) AttrValue {
	return scan.QuotedValue(s)
}

// UnquotedValue builds an unquoted-string AttrValue over s.
func UnquotedValue(s []byte) AttrValue {
	return scan.UnquotedValue(s)
}
