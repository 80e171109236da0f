// Package scan implements the single-pass byte scanner that classifies raw
// tag values and tokenizes attribute lists.
//
// All results borrow sub-slices of the caller's input buffer. Nothing in this
// package allocates on the happy path except the attribute slice itself, so a
// classified value is only valid while the input buffer is.
package scan

// Kind identifies the shape of a semi-parsed tag value.
type Kind uint8

const (
	// KindEmpty is a tag with no value at all (no colon after the name).
	KindEmpty Kind = iota
	// KindFloat is a decimal float followed by an optional comma-delimited
	// free-text tail (the EXTINF shape).
	KindFloat
	// KindAttrList is a comma-separated list of NAME=VALUE pairs.
	KindAttrList
	// KindUnparsed is an opaque byte span whose interpretation depends on
	// the owning tag (integer, integer pair, date-time, enumerated token).
	KindUnparsed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFloat:
		return "float"
	case KindAttrList:
		return "attribute-list"
	case KindUnparsed:
		return "unparsed"
	default:
		return "unknown"
	}
}

// Value is a semi-parsed tag value: exactly one shape holds at a time.
//
// Byte spans inside a Value are sub-slices of the scanned input and must not
// outlive it.
type Value struct {
	attrs   Attrs
	tail    []byte
	raw     []byte
	f       float64
	kind    Kind
	hasTail bool
}

// Empty returns the value of a tag that carried no value.
func Empty() Value {
	return Value{kind: KindEmpty}
}

// Unparsed wraps raw bytes as a KindUnparsed value.
//
// This is how tags constructed outside the classifier (custom parsers, direct
// construction helpers) hand opaque values to the reinterpretation layer.
func Unparsed(raw []byte) Value {
	return Value{kind: KindUnparsed, raw: raw}
}

// Kind reports which shape this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the decimal float for KindFloat values.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Tail returns the free-text tail of a KindFloat value.
//
// The second result distinguishes "no comma after the number" from an empty
// tail ("6.006," has an empty but present tail).
func (v Value) Tail() ([]byte, bool) {
	if v.kind != KindFloat {
		return nil, false
	}
	return v.tail, v.hasTail
}

// Attrs returns the attribute list for KindAttrList values.
func (v Value) Attrs() (Attrs, bool) {
	if v.kind != KindAttrList {
		return nil, false
	}
	return v.attrs, true
}

// Bytes returns the opaque span of a KindUnparsed value.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindUnparsed {
		return nil, false
	}
	return v.raw, true
}

// AttrKind identifies the shape of one attribute value.
type AttrKind uint8

const (
	// AttrInteger is a non-negative decimal integer that fits in a uint64.
	AttrInteger AttrKind = iota
	// AttrFloat is a signed decimal float.
	AttrFloat
	// AttrQuoted is a quoted string; the span excludes the quotes.
	AttrQuoted
	// AttrUnquoted is a bare non-numeric token.
	AttrUnquoted
)

// String returns the attribute kind name.
func (k AttrKind) String() string {
	switch k {
	case AttrInteger:
		return "integer"
	case AttrFloat:
		return "float"
	case AttrQuoted:
		return "quoted-string"
	case AttrUnquoted:
		return "unquoted-string"
	default:
		return "unknown"
	}
}

// AttrValue is one classified attribute value.
//
// The numeric split is a shape heuristic: "42" classifies as AttrInteger,
// "42.0" and "-42" as AttrFloat. Accessors with float semantics widen
// integers via Float; the reverse narrowing is deliberately absent.
type AttrValue struct {
	s    []byte
	u    uint64
	f    float64
	kind AttrKind
}

// IntegerValue builds an AttrInteger value. Used by tag constructors and
// custom parsers that synthesize attribute values without scanning.
func IntegerValue(u uint64) AttrValue {
	return AttrValue{kind: AttrInteger, u: u}
}

// FloatValue builds an AttrFloat value.
func FloatValue(f float64) AttrValue {
	return AttrValue{kind: AttrFloat, f: f}
}

// QuotedValue builds an AttrQuoted value over s.
func QuotedValue(s []byte) AttrValue {
	return AttrValue{kind: AttrQuoted, s: s}
}

// UnquotedValue builds an AttrUnquoted value over s.
func UnquotedValue(s []byte) AttrValue {
	return AttrValue{kind: AttrUnquoted, s: s}
}

// Kind reports which shape this attribute value holds.
func (a AttrValue) Kind() AttrKind {
	return a.kind
}

// Uint returns the integer for AttrInteger values.
func (a AttrValue) Uint() (uint64, bool) {
	if a.kind != AttrInteger {
		return 0, false
	}
	return a.u, true
}

// Float returns the numeric value for AttrFloat and AttrInteger values.
// Integers widen; precision above 2^53 is the caller's concern.
func (a AttrValue) Float() (float64, bool) {
	switch a.kind {
	case AttrFloat:
		return a.f, true
	case AttrInteger:
		return float64(a.u), true
	default:
		return 0, false
	}
}

// Quoted returns the content between the quotes for AttrQuoted values.
func (a AttrValue) Quoted() ([]byte, bool) {
	if a.kind != AttrQuoted {
		return nil, false
	}
	return a.s, true
}

// Unquoted returns the bare token for AttrUnquoted values.
func (a AttrValue) Unquoted() ([]byte, bool) {
	if a.kind != AttrUnquoted {
		return nil, false
	}
	return a.s, true
}

// Attr is one NAME=VALUE pair.
type Attr struct {
	Name  []byte
	Value AttrValue
}

// Attrs is the attribute list of a KindAttrList value, in source order.
//
// Order is preserved for iteration but carries no meaning; lookups go through
// Get. Lists are short, so Get scans linearly rather than building a map.
type Attrs []Attr

// Get returns the value of the named attribute.
func (as Attrs) Get(name string) (AttrValue, bool) {
	for _, a := range as {
		if string(a.Name) == name {
			return a.Value, true
		}
	}
	return AttrValue{}, false
}

// Has reports whether the named attribute is present.
func (as Attrs) Has(name string) bool {
	_, ok := as.Get(name)
	return ok
}
