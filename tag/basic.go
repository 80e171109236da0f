package tag

import "strconv"

// Shape guards shared by the record parsers. Recognized names are strict
// about their value shape; the error names the tag so callers can locate
// the offending line.

func wantEmpty(tagName string, value Value) error {
	if value.Kind() != KindEmpty {
		return valueErr(tagName, "tag takes no value")
	}
	return nil
}

func wantAttrList(tagName string, value Value) (Attrs, error) {
	attrs, ok := value.Attrs()
	if !ok {
		return nil, valueErr(tagName, "expected an attribute list")
	}
	return attrs, nil
}

func wantUintValue(tagName string, value Value) (uint64, error) {
	b, ok := value.Bytes()
	if !ok || len(b) == 0 {
		return 0, valueErr(tagName, "expected an integer value")
	}
	u, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0, valueErr(tagName, "expected an integer value")
	}
	return u, nil
}

func reqQuoted(tagName string, a Attr) (string, error) {
	s, ok := a.Value.Quoted()
	if !ok {
		return "", attrErr(tagName, string(a.Name), "expected a quoted string")
	}
	return string(s), nil
}

func reqUint(tagName string, a Attr) (uint64, error) {
	u, ok := a.Value.Uint()
	if !ok {
		return 0, attrErr(tagName, string(a.Name), "expected a decimal integer")
	}
	return u, nil
}

func reqFloat(tagName string, a Attr) (float64, error) {
	f, ok := a.Value.Float()
	if !ok {
		return 0, attrErr(tagName, string(a.Name), "expected a decimal number")
	}
	return f, nil
}

func reqEnum[T ~string](tagName string, a Attr, all []T) (EnumeratedString[T], error) {
	b, ok := a.Value.Unquoted()
	if !ok {
		return EnumeratedString[T]{}, attrErr(tagName, string(a.Name), "expected an enumerated string")
	}
	return enumOf(string(b), all), nil
}

// markerTag renders a tag that carries no value at all.
func markerTag(name string) []byte {
	b := make([]byte, 0, 1+len(name))
	b = append(b, '#')
	return append(b, name...)
}

// M3u is the #EXTM3U header line that opens every playlist.
type M3u struct {
	cachedLine
}

func parseM3u(value Value, raw []byte) (*M3u, error) {
	if err := wantEmpty("EXTM3U", value); err != nil {
		return nil, err
	}
	return &M3u{cachedLine: retained(raw)}, nil
}

// NewM3u builds the playlist header.
func NewM3u() *M3u { return &M3u{} }

func (t *M3u) Name() string { return "EXTM3U" }

func (t *M3u) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// Version is #EXT-X-VERSION, the protocol compatibility version.
type Version struct {
	cachedLine
	version uint64
}

func parseVersion(value Value, raw []byte) (*Version, error) {
	u, err := wantUintValue("EXT-X-VERSION", value)
	if err != nil {
		return nil, err
	}
	return &Version{cachedLine: retained(raw), version: u}, nil
}

// NewVersion builds a version tag.
func NewVersion(version uint64) *Version {
	return &Version{version: version}
}

func (t *Version) Name() string { return "EXT-X-VERSION" }

// Version returns the declared compatibility version.
func (t *Version) Version() uint64 { return t.version }

// SetVersion replaces the version.
func (t *Version) SetVersion(v uint64) {
	t.version = v
	t.markDirty()
}

func (t *Version) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return strconv.AppendUint(b, t.version, 10)
	})
}
