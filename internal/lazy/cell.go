// Package lazy implements the deferred-conversion cell backing tag
// attribute fields.
//
// A Cell starts out holding the still-raw scanned form of one attribute (or
// nothing, when the source line omitted it) and converts to the typed value
// only when a reader asks. Writers replace the raw form outright. The cell
// itself carries no dirty flag; the owning tag records that a write
// happened.
package lazy

import "github.com/simonhull/m3u8/internal/scan"

// State is the occupancy of a Cell.
type State uint8

const (
	// StateAbsent: no source value and no user value. Reads fall back to
	// the field's default; serialization omits the attribute.
	StateAbsent State = iota
	// StateRaw: the scanned value is held unconverted. Serialization can
	// reproduce it without ever converting.
	StateRaw
	// StateSet: a caller assigned a typed value, shadowing any raw form.
	StateSet
)

// Cell is one tag field in its tri-state form. The zero Cell is absent.
type Cell[T any] struct {
	val    T
	raw    scan.AttrValue
	state  State
	cached bool
	convOK bool
}

// FromRaw seeds a cell with a scanned, unconverted value.
func FromRaw[T any](raw scan.AttrValue) Cell[T] {
	return Cell[T]{raw: raw, state: StateRaw}
}

// Of seeds a cell with a typed value, as tag constructors do.
func Of[T any](v T) Cell[T] {
	return Cell[T]{val: v, state: StateSet}
}

// State reports which of the three forms the cell holds.
func (c *Cell[T]) State() State {
	return c.state
}

// Present reports whether serialization will emit this field.
func (c *Cell[T]) Present() bool {
	return c.state != StateAbsent
}

// Raw returns the scanned value. Only meaningful in StateRaw.
func (c *Cell[T]) Raw() scan.AttrValue {
	return c.raw
}

// Get resolves the cell through conv, which interprets the raw scanned form.
// A user-set value wins without consulting conv. The conversion runs at most
// once per cell; its outcome is memoized, so conv must be deterministic for
// the cell's raw value. A raw value conv rejects reads as absent.
func (c *Cell[T]) Get(conv func(scan.AttrValue) (T, bool)) (T, bool) {
	switch c.state {
	case StateSet:
		return c.val, true
	case StateRaw:
		if !c.cached {
			c.val, c.convOK = conv(c.raw)
			c.cached = true
		}
		if !c.convOK {
			var zero T
			return zero, false
		}
		return c.val, true
	default:
		var zero T
		return zero, false
	}
}

// Value returns the user-set value without resolving a raw form.
// Serialization uses it: raw cells render from Raw, set cells from Value.
func (c *Cell[T]) Value() (T, bool) {
	if c.state != StateSet {
		var zero T
		return zero, false
	}
	return c.val, true
}

// Set assigns a typed value, replacing any raw form.
func (c *Cell[T]) Set(v T) {
	c.val = v
	c.state = StateSet
	c.cached = false
	c.convOK = false
}

// Unset clears the cell to absent. A later read sees the field's default,
// and serialization drops the attribute even if the source line had it.
func (c *Cell[T]) Unset() {
	var zero T
	c.val = zero
	c.raw = scan.AttrValue{}
	c.state = StateAbsent
	c.cached = false
	c.convOK = false
}
