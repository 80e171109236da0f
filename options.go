package m3u8

import "github.com/simonhull/m3u8/tag"

// Option configures parsing behavior.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	lines, err := m3u8.Parse(data,
//	    m3u8.WithStrictLines(),
//	    m3u8.WithCustomTags(parseSCTE35),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for parsing playlists.
type parseOptions struct {
	custom []tag.CustomParser // Consulted before the built-in tag table
	strict bool               // Require the #EXTM3U header on line 1
}

// defaultParseOptions returns the default configuration.
func defaultParseOptions() *parseOptions {
	return &parseOptions{}
}

// WithCustomTags registers parsers consulted before the built-in tag
// table, in the order given.
//
// A parser that reports handled claims the tag name, builtin or not; one
// that does not falls through to the next parser and finally to the
// built-in table. Unrecognized names are never an error, they parse as
// *tag.Unknown.
//
// Example:
//
//	lines, err := m3u8.Parse(data, m3u8.WithCustomTags(
//	    func(name string, value m3u8.Value, raw []byte) (m3u8.Tag, bool, error) {
//	        if name != "EXT-X-COM-EXAMPLE" {
//	            return nil, false, nil
//	        }
//	        // ...
//	    },
//	))
func WithCustomTags(parsers ...tag.CustomParser) Option {
	return func(o *parseOptions) {
		o.custom = append(o.custom, parsers...)
	}
}

// WithStrictLines rejects playlists whose first line is not #EXTM3U.
//
// Malformed tag lines are errors with or without strict mode; this option
// adds the header requirement on top.
//
// Example:
//
//	lines, err := m3u8.Parse(data, m3u8.WithStrictLines())
//	// err wraps ErrMissingHeader if line 1 is not #EXTM3U
func WithStrictLines() Option {
	return func(o *parseOptions) {
		o.strict = true
	}
}
