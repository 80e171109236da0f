package scan

import "fmt"

// Reason identifies a scanner failure. All reasons are non-retryable syntax
// errors; the scanner never recovers mid-line.
type Reason uint8

const (
	// ReasonUnexpectedEndOfLine: the line ended while an attribute name was
	// still expected (a trailing comma, or a name with no '=').
	ReasonUnexpectedEndOfLine Reason = iota
	// ReasonEmptyAttributeName: an '=' with no name before it.
	ReasonEmptyAttributeName
	// ReasonEmptyAttributeValue: an '=' with nothing usable after it.
	ReasonEmptyAttributeValue
	// ReasonUnterminatedQuote: a quoted string with no closing quote before
	// the end of the line or buffer.
	ReasonUnterminatedQuote
	// ReasonUnexpectedAfterQuote: a closed quote followed by anything other
	// than a comma, a line terminator, or the end of the buffer.
	ReasonUnexpectedAfterQuote
	// ReasonInvalidFloat: a token containing '.' that does not parse as a
	// decimal float, or a float-position token that fails to parse.
	ReasonInvalidFloat
	// ReasonInvalidUTF8: a span that must be text is not valid UTF-8.
	ReasonInvalidUTF8
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonUnexpectedEndOfLine:
		return "unexpected end of line reading attribute name"
	case ReasonEmptyAttributeName:
		return "empty attribute name"
	case ReasonEmptyAttributeValue:
		return "empty attribute value"
	case ReasonUnterminatedQuote:
		return "unterminated quoted string"
	case ReasonUnexpectedAfterQuote:
		return "unexpected character after quoted string"
	case ReasonInvalidFloat:
		return "invalid floating-point value"
	case ReasonInvalidUTF8:
		return "invalid UTF-8 in string value"
	default:
		return "syntax error"
	}
}

// SyntaxError is returned when a tag value cannot be scanned. Offset is the
// byte position within the span handed to the scanner, so callers that track
// line positions can report absolute locations.
type SyntaxError struct {
	Reason Reason
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

func errAt(reason Reason, offset int) error {
	return &SyntaxError{Reason: reason, Offset: offset}
}
