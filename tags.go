package m3u8

import (
	"github.com/simonhull/m3u8/tag"
)

// Tag is an alias to tag.Tag, the interface every tag record implements.
// Re-exporting so casual callers never import the tag package directly.
type Tag = tag.Tag

// CustomParser is an alias to tag.CustomParser, the extension point
// consulted before the built-in tag table.
type CustomParser = tag.CustomParser

// Value is an alias to tag.Value, the semi-parsed tag value handed to
// custom parsers.
type Value = tag.Value

// AttrValue is an alias to tag.AttrValue, one scanned attribute value.
type AttrValue = tag.AttrValue

// Attr is an alias to tag.Attr, one NAME=VALUE pair as scanned.
type Attr = tag.Attr

// Re-export the value shape constants for custom parsers that switch on
// Value.Kind().
const (
	KindEmpty    = tag.KindEmpty
	KindFloat    = tag.KindFloat
	KindAttrList = tag.KindAttrList
	KindUnparsed = tag.KindUnparsed
)
