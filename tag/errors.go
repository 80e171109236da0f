package tag

import "fmt"

// ValueError is returned when a tag's value span has the wrong shape for
// the tag, such as an attribute list where a single integer belongs.
type ValueError struct {
	Tag    string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("#%s: %s", e.Tag, e.Reason)
}

// AttributeError is returned when a required attribute is missing or an
// attribute value cannot carry the meaning the tag assigns it.
type AttributeError struct {
	Tag    string
	Attr   string
	Reason string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("#%s: attribute %s: %s", e.Tag, e.Attr, e.Reason)
}

func valueErr(tag, reason string) error {
	return &ValueError{Tag: tag, Reason: reason}
}

func attrErr(tag, attr, reason string) error {
	return &AttributeError{Tag: tag, Attr: attr, Reason: reason}
}

func missingAttr(tag, attr string) error {
	return attrErr(tag, attr, "required attribute missing")
}
