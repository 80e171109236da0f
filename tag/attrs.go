package tag

import (
	"strconv"
	"time"
)

// attrLine builds a canonical tag line: "#NAME" then ":" before the first
// attribute and "," before each later one. Attribute order is whatever the
// caller's render method declares.
type attrLine struct {
	buf []byte
	n   int
}

func newAttrLine(name string) *attrLine {
	w := &attrLine{buf: make([]byte, 0, 64)}
	w.buf = append(w.buf, '#')
	w.buf = append(w.buf, name...)
	return w
}

func (w *attrLine) key(name string) {
	if w.n == 0 {
		w.buf = append(w.buf, ':')
	} else {
		w.buf = append(w.buf, ',')
	}
	w.n++
	w.buf = append(w.buf, name...)
	w.buf = append(w.buf, '=')
}

func (w *attrLine) putUint(name string, u uint64) {
	w.key(name)
	w.buf = strconv.AppendUint(w.buf, u, 10)
}

func (w *attrLine) putFloat(name string, f float64) {
	w.key(name)
	w.buf = appendFloat(w.buf, f)
}

func (w *attrLine) putQuoted(name, s string) {
	w.key(name)
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '"')
}

func (w *attrLine) putUnquoted(name, s string) {
	w.key(name)
	w.buf = append(w.buf, s...)
}

func (w *attrLine) putBool(name string, v bool) {
	if v {
		w.putUnquoted(name, "YES")
	} else {
		w.putUnquoted(name, "NO")
	}
}

func (w *attrLine) putTime(name string, t time.Time) {
	w.key(name)
	w.buf = append(w.buf, '"')
	w.buf = appendDateTime(w.buf, t)
	w.buf = append(w.buf, '"')
}

// putRaw re-renders a scanned value in its own shape, so untouched
// attributes survive a dirty line without conversion.
func (w *attrLine) putRaw(name string, v AttrValue) {
	switch v.Kind() {
	case AttrInteger:
		u, _ := v.Uint()
		w.putUint(name, u)
	case AttrFloat:
		f, _ := v.Float()
		w.putFloat(name, f)
	case AttrQuoted:
		s, _ := v.Quoted()
		w.key(name)
		w.buf = append(w.buf, '"')
		w.buf = append(w.buf, s...)
		w.buf = append(w.buf, '"')
	default:
		s, _ := v.Unquoted()
		w.key(name)
		w.buf = append(w.buf, s...)
	}
}

func (w *attrLine) bytes() []byte {
	return w.buf
}

// appendFloat renders a float the way the format writes them: plain decimal
// notation, shortest form, no forced trailing zero.
func appendFloat(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'f', -1, 64)
}

// writeCell emits one optional attribute: nothing when absent, the scanned
// form verbatim when raw, the canonical form via put when set.
func writeCell[T any](w *attrLine, name string, c *Cell[T], put func(*attrLine, string, T)) {
	switch c.State() {
	case StateRaw:
		w.putRaw(name, c.Raw())
	case StateSet:
		if v, ok := c.Value(); ok {
			put(w, name, v)
		}
	}
}

func writeUintCell(w *attrLine, name string, c *Cell[uint64]) {
	writeCell(w, name, c, (*attrLine).putUint)
}

func writeFloatCell(w *attrLine, name string, c *Cell[float64]) {
	writeCell(w, name, c, (*attrLine).putFloat)
}

func writeQuotedCell(w *attrLine, name string, c *Cell[string]) {
	writeCell(w, name, c, func(w *attrLine, name string, s string) {
		w.putQuoted(name, s)
	})
}

func writeUnquotedCell(w *attrLine, name string, c *Cell[string]) {
	writeCell(w, name, c, func(w *attrLine, name string, s string) {
		w.putUnquoted(name, s)
	})
}

func writeBoolCell(w *attrLine, name string, c *Cell[bool]) {
	writeCell(w, name, c, (*attrLine).putBool)
}

func writeTimeCell(w *attrLine, name string, c *Cell[time.Time]) {
	writeCell(w, name, c, (*attrLine).putTime)
}

func writeEnumCell[T ~string](w *attrLine, name string, c *Cell[EnumeratedString[T]]) {
	writeCell(w, name, c, func(w *attrLine, name string, e EnumeratedString[T]) {
		w.putUnquoted(name, e.String())
	})
}

func writeListCell[T ~string](w *attrLine, name string, c *Cell[EnumeratedStringList[T]]) {
	writeCell(w, name, c, func(w *attrLine, name string, l EnumeratedStringList[T]) {
		w.putQuoted(name, l.String())
	})
}

// Conversions from scanned attribute values into field types. Each runs at
// most once per cell; failures read as absent.

func convUint(v AttrValue) (uint64, bool) {
	return v.Uint()
}

func convFloat(v AttrValue) (float64, bool) {
	return v.Float()
}

func convQuoted(v AttrValue) (string, bool) {
	b, ok := v.Quoted()
	if !ok {
		return "", false
	}
	return string(b), true
}

func convUnquoted(v AttrValue) (string, bool) {
	b, ok := v.Unquoted()
	if !ok {
		return "", false
	}
	return string(b), true
}

// convAnyString accepts either string shape, for attributes like
// CLOSED-CAPTIONS that are a quoted group name or a bare sentinel.
func convAnyString(v AttrValue) (string, bool) {
	if b, ok := v.Quoted(); ok {
		return string(b), true
	}
	if b, ok := v.Unquoted(); ok {
		return string(b), true
	}
	return "", false
}

func convBool(v AttrValue) (bool, bool) {
	b, ok := v.Unquoted()
	if !ok {
		return false, false
	}
	switch string(b) {
	case "YES":
		return true, true
	case "NO":
		return false, true
	}
	return false, false
}

func convTime(v AttrValue) (time.Time, bool) {
	b, ok := v.Quoted()
	if !ok {
		return time.Time{}, false
	}
	return parseDateTime(string(b))
}
