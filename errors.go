package m3u8

import (
	"errors"
	"fmt"

	"github.com/simonhull/m3u8/internal/scan"
	"github.com/simonhull/m3u8/tag"
)

// SyntaxError is an alias to scan.SyntaxError.
// Re-exporting from internal/scan to keep the scanner internal while its
// errors stay matchable with errors.As.
type SyntaxError = scan.SyntaxError

// Reason is an alias to scan.Reason, the scanner failure codes.
type Reason = scan.Reason

// Re-export all scanner failure reasons.
const (
	ReasonUnexpectedEndOfLine  = scan.ReasonUnexpectedEndOfLine
	ReasonEmptyAttributeName   = scan.ReasonEmptyAttributeName
	ReasonEmptyAttributeValue  = scan.ReasonEmptyAttributeValue
	ReasonUnterminatedQuote    = scan.ReasonUnterminatedQuote
	ReasonUnexpectedAfterQuote = scan.ReasonUnexpectedAfterQuote
	ReasonInvalidFloat         = scan.ReasonInvalidFloat
	ReasonInvalidUTF8          = scan.ReasonInvalidUTF8
)

// ValueError is an alias to tag.ValueError: a tag value span with the
// wrong shape for its tag.
type ValueError = tag.ValueError

// AttributeError is an alias to tag.AttributeError: a missing required
// attribute or one whose value cannot carry its meaning.
type AttributeError = tag.AttributeError

// ErrMissingHeader is returned (wrapped in a ParseError) when strict
// parsing is enabled and the first line of a playlist is not #EXTM3U.
var ErrMissingHeader = errors.New("playlist does not begin with #EXTM3U")

// ParseError locates a malformed line within a playlist.
type ParseError struct {
	// Line is the 1-based line number within the input.
	Line int
	// Err is the underlying scan or tag error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
