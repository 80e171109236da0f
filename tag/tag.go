// Package tag models playlist tag lines as typed records.
//
// Every record keeps the line it was parsed from and serves it back
// byte-for-byte until a mutator runs. The first serialization after a
// mutation re-renders the line in canonical attribute order and caches the
// result, so repeated writes never re-render.
//
// Records parsed from input borrow sub-slices of the source buffer; they
// stay valid while the buffer is alive and unmodified. Records built with
// the New constructors own their data.
package tag

// Tag is one playlist tag line.
//
// Name is the tag's name without the leading '#'. Line returns the full
// rendered line, without a terminator: the original bytes when the record
// is untouched, a canonical rendering once it has been mutated.
type Tag interface {
	Name() string
	Line() []byte
}

// cachedLine is the serialization state embedded in every built-in record.
// A record parsed from input starts with the source line retained; a
// constructed record starts empty and renders on first use.
type cachedLine struct {
	line  []byte
	dirty bool
}

func retained(line []byte) cachedLine {
	return cachedLine{line: line}
}

// markDirty discards the retained rendering. Every mutator calls it.
func (c *cachedLine) markDirty() {
	c.dirty = true
}

// render returns the retained line, rebuilding it through build only when a
// mutation invalidated it (or nothing was retained yet).
func (c *cachedLine) render(build func() []byte) []byte {
	if c.line == nil || c.dirty {
		c.line = build()
		c.dirty = false
	}
	return c.line
}
