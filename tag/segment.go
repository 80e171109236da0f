package tag

import (
	"bytes"
	"strconv"
	"time"

	"github.com/simonhull/m3u8/internal/lazy"
)

// Inf is #EXTINF, the duration line preceding each media segment URI.
type Inf struct {
	cachedLine
	duration float64
	title    []byte
}

func parseInf(value Value, raw []byte) (*Inf, error) {
	t := &Inf{cachedLine: retained(raw)}
	switch value.Kind() {
	case KindFloat:
		t.duration, _ = value.Float()
		t.title, _ = value.Tail()
	case KindUnparsed:
		// No comma after the duration. Tolerated on read, normalized on
		// re-render.
		b, _ := value.Bytes()
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return nil, valueErr("EXTINF", "expected a decimal duration")
		}
		t.duration = f
	default:
		return nil, valueErr("EXTINF", "expected a duration value")
	}
	return t, nil
}

// NewInf builds a segment duration tag with an empty title.
func NewInf(duration float64) *Inf {
	return &Inf{duration: duration}
}

func (t *Inf) Name() string { return "EXTINF" }

// Duration returns the segment duration in seconds.
func (t *Inf) Duration() float64 { return t.duration }

// SetDuration replaces the duration.
func (t *Inf) SetDuration(d float64) {
	t.duration = d
	t.markDirty()
}

// Title returns the free-text title after the comma, empty if none.
func (t *Inf) Title() string { return string(t.title) }

// SetTitle replaces the title.
func (t *Inf) SetTitle(s string) {
	t.title = []byte(s)
	t.markDirty()
}

func (t *Inf) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		b = appendFloat(b, t.duration)
		b = append(b, ',')
		return append(b, t.title...)
	})
}

// ByteRange is a length with an optional offset, the n[@o] form used by
// EXT-X-BYTERANGE and the BYTERANGE attributes of EXT-X-MAP and EXT-X-PART.
type ByteRange struct {
	Length    uint64
	Offset    uint64
	HasOffset bool
}

func parseByteRangeSpec(b []byte) (ByteRange, bool) {
	var r ByteRange
	length := b
	if at := bytes.IndexByte(b, '@'); at >= 0 {
		length = b[:at]
		o, err := strconv.ParseUint(string(b[at+1:]), 10, 64)
		if err != nil {
			return ByteRange{}, false
		}
		r.Offset = o
		r.HasOffset = true
	}
	n, err := strconv.ParseUint(string(length), 10, 64)
	if err != nil {
		return ByteRange{}, false
	}
	r.Length = n
	return r, true
}

func convByteRange(v AttrValue) (ByteRange, bool) {
	b, ok := v.Quoted()
	if !ok {
		return ByteRange{}, false
	}
	return parseByteRangeSpec(b)
}

func (r ByteRange) append(b []byte) []byte {
	b = strconv.AppendUint(b, r.Length, 10)
	if r.HasOffset {
		b = append(b, '@')
		b = strconv.AppendUint(b, r.Offset, 10)
	}
	return b
}

// String renders the n[@o] form.
func (r ByteRange) String() string {
	return string(r.append(nil))
}

func writeByteRangeCell(w *attrLine, name string, c *Cell[ByteRange]) {
	writeCell(w, name, c, func(w *attrLine, name string, r ByteRange) {
		w.putQuoted(name, r.String())
	})
}

// Byterange is #EXT-X-BYTERANGE, scoping the next segment URI to a
// sub-range of its resource.
type Byterange struct {
	cachedLine
	length uint64
	offset lazy.Cell[uint64]
}

func parseByterange(value Value, raw []byte) (*Byterange, error) {
	b, ok := value.Bytes()
	if !ok {
		return nil, valueErr("EXT-X-BYTERANGE", "expected a byte range value")
	}
	r, ok := parseByteRangeSpec(b)
	if !ok {
		return nil, valueErr("EXT-X-BYTERANGE", "malformed byte range")
	}
	t := &Byterange{cachedLine: retained(raw), length: r.Length}
	if r.HasOffset {
		t.offset = lazy.FromRaw[uint64](IntegerValue(r.Offset))
	}
	return t, nil
}

// NewByterange builds a byte range of the given length with no offset.
func NewByterange(length uint64) *Byterange {
	return &Byterange{length: length}
}

func (t *Byterange) Name() string { return "EXT-X-BYTERANGE" }

// Length returns the sub-range length in bytes.
func (t *Byterange) Length() uint64 { return t.length }

// SetLength replaces the length.
func (t *Byterange) SetLength(n uint64) {
	t.length = n
	t.markDirty()
}

// Offset returns the start offset, if one is declared. Without an offset
// the range starts where the previous one ended.
func (t *Byterange) Offset() (uint64, bool) {
	return t.offset.Get(convUint)
}

// SetOffset declares the start offset.
func (t *Byterange) SetOffset(o uint64) {
	t.offset.Set(o)
	t.markDirty()
}

// UnsetOffset removes the offset; the range becomes relative again.
func (t *Byterange) UnsetOffset() {
	t.offset.Unset()
	t.markDirty()
}

func (t *Byterange) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		b = strconv.AppendUint(b, t.length, 10)
		switch t.offset.State() {
		case lazy.StateRaw:
			if o, ok := t.offset.Raw().Uint(); ok {
				b = append(b, '@')
				b = strconv.AppendUint(b, o, 10)
			}
		case lazy.StateSet:
			o, _ := t.offset.Value()
			b = append(b, '@')
			b = strconv.AppendUint(b, o, 10)
		}
		return b
	})
}

// Discontinuity is #EXT-X-DISCONTINUITY, marking an encoding break.
type Discontinuity struct {
	cachedLine
}

func parseDiscontinuity(value Value, raw []byte) (*Discontinuity, error) {
	if err := wantEmpty("EXT-X-DISCONTINUITY", value); err != nil {
		return nil, err
	}
	return &Discontinuity{cachedLine: retained(raw)}, nil
}

// NewDiscontinuity builds a discontinuity marker.
func NewDiscontinuity() *Discontinuity { return &Discontinuity{} }

func (t *Discontinuity) Name() string { return "EXT-X-DISCONTINUITY" }

func (t *Discontinuity) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// Gap is #EXT-X-GAP, declaring the next segment unavailable.
type Gap struct {
	cachedLine
}

func parseGap(value Value, raw []byte) (*Gap, error) {
	if err := wantEmpty("EXT-X-GAP", value); err != nil {
		return nil, err
	}
	return &Gap{cachedLine: retained(raw)}, nil
}

// NewGap builds a gap marker.
func NewGap() *Gap { return &Gap{} }

func (t *Gap) Name() string { return "EXT-X-GAP" }

func (t *Gap) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// keyAttrs is the attribute set shared by EXT-X-KEY and EXT-X-SESSION-KEY.
// It carries the line cache so accessors and mutators promote into both
// tags; only Name, Line and parse-time validation differ between them.
type keyAttrs struct {
	cachedLine
	attrs             Attrs
	method            EnumeratedString[KeyMethod]
	uri               lazy.Cell[string]
	iv                lazy.Cell[string]
	keyFormat         lazy.Cell[string]
	keyFormatVersions lazy.Cell[string]
}

func parseKeyAttrs(tagName string, value Value) (keyAttrs, error) {
	attrs, err := wantAttrList(tagName, value)
	if err != nil {
		return keyAttrs{}, err
	}
	k := keyAttrs{attrs: attrs}
	haveMethod := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "METHOD":
			e, err := reqEnum(tagName, a, keyMethods)
			if err != nil {
				return keyAttrs{}, err
			}
			k.method = e
			haveMethod = true
		case "URI":
			k.uri = lazy.FromRaw[string](a.Value)
		case "IV":
			k.iv = lazy.FromRaw[string](a.Value)
		case "KEYFORMAT":
			k.keyFormat = lazy.FromRaw[string](a.Value)
		case "KEYFORMATVERSIONS":
			k.keyFormatVersions = lazy.FromRaw[string](a.Value)
		}
	}
	if !haveMethod {
		return keyAttrs{}, missingAttr(tagName, "METHOD")
	}
	if !k.method.Is(MethodNone) && !k.uri.Present() {
		return keyAttrs{}, missingAttr(tagName, "URI")
	}
	return k, nil
}

// Method returns the encryption method.
func (k *keyAttrs) Method() EnumeratedString[KeyMethod] { return k.method }

// URI returns the key URI, if declared.
func (k *keyAttrs) URI() (string, bool) { return k.uri.Get(convQuoted) }

// IV returns the initialization vector literal (0x-prefixed), if declared.
func (k *keyAttrs) IV() (string, bool) { return k.iv.Get(convUnquoted) }

// KeyFormat returns the KEYFORMAT value, if declared.
func (k *keyAttrs) KeyFormat() (string, bool) { return k.keyFormat.Get(convQuoted) }

// KeyFormatVersions returns the KEYFORMATVERSIONS value, if declared.
func (k *keyAttrs) KeyFormatVersions() (string, bool) { return k.keyFormatVersions.Get(convQuoted) }

// RawAttributes returns the scanned attribute list in source order,
// including attributes this tag does not model.
func (k *keyAttrs) RawAttributes() Attrs { return k.attrs }

// SetMethod replaces the encryption method.
func (k *keyAttrs) SetMethod(m KeyMethod) {
	k.method = enumKnown(m)
	k.markDirty()
}

// SetURI declares the key URI.
func (k *keyAttrs) SetURI(uri string) {
	k.uri.Set(uri)
	k.markDirty()
}

// UnsetURI removes the key URI.
func (k *keyAttrs) UnsetURI() {
	k.uri.Unset()
	k.markDirty()
}

// SetIV declares the initialization vector literal.
func (k *keyAttrs) SetIV(iv string) {
	k.iv.Set(iv)
	k.markDirty()
}

// UnsetIV removes the initialization vector.
func (k *keyAttrs) UnsetIV() {
	k.iv.Unset()
	k.markDirty()
}

// SetKeyFormat declares the key format.
func (k *keyAttrs) SetKeyFormat(s string) {
	k.keyFormat.Set(s)
	k.markDirty()
}

// UnsetKeyFormat removes the key format.
func (k *keyAttrs) UnsetKeyFormat() {
	k.keyFormat.Unset()
	k.markDirty()
}

// SetKeyFormatVersions declares the supported key format versions.
func (k *keyAttrs) SetKeyFormatVersions(s string) {
	k.keyFormatVersions.Set(s)
	k.markDirty()
}

// UnsetKeyFormatVersions removes the key format versions.
func (k *keyAttrs) UnsetKeyFormatVersions() {
	k.keyFormatVersions.Unset()
	k.markDirty()
}

func (k *keyAttrs) writeKeyAttrs(w *attrLine) {
	w.putUnquoted("METHOD", k.method.String())
	writeQuotedCell(w, "URI", &k.uri)
	writeUnquotedCell(w, "IV", &k.iv)
	writeQuotedCell(w, "KEYFORMAT", &k.keyFormat)
	writeQuotedCell(w, "KEYFORMATVERSIONS", &k.keyFormatVersions)
}

// Key is #EXT-X-KEY, declaring how following segments are encrypted.
type Key struct {
	keyAttrs
}

func parseKey(value Value, raw []byte) (*Key, error) {
	k, err := parseKeyAttrs("EXT-X-KEY", value)
	if err != nil {
		return nil, err
	}
	k.cachedLine = retained(raw)
	return &Key{keyAttrs: k}, nil
}

// NewKey builds a key tag. Methods other than NONE need a URI before the
// line renders as a valid tag.
func NewKey(method KeyMethod) *Key {
	return &Key{keyAttrs: keyAttrs{method: enumKnown(method)}}
}

func (t *Key) Name() string { return "EXT-X-KEY" }

func (t *Key) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		t.writeKeyAttrs(w)
		return w.bytes()
	})
}

// Map is #EXT-X-MAP, the media initialization section.
type Map struct {
	cachedLine
	attrs     Attrs
	uri       string
	byterange lazy.Cell[ByteRange]
}

func parseMap(value Value, raw []byte) (*Map, error) {
	const name = "EXT-X-MAP"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Map{cachedLine: retained(raw), attrs: attrs}
	haveURI := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "URI":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.uri = s
			haveURI = true
		case "BYTERANGE":
			t.byterange = lazy.FromRaw[ByteRange](a.Value)
		}
	}
	if !haveURI {
		return nil, missingAttr(name, "URI")
	}
	return t, nil
}

// NewMap builds an initialization section tag.
func NewMap(uri string) *Map {
	return &Map{uri: uri}
}

func (t *Map) Name() string { return "EXT-X-MAP" }

// URI returns the initialization section URI.
func (t *Map) URI() string { return t.uri }

// SetURI replaces the URI.
func (t *Map) SetURI(uri string) {
	t.uri = uri
	t.markDirty()
}

// Byterange returns the sub-range of the URI holding the section.
func (t *Map) Byterange() (ByteRange, bool) {
	return t.byterange.Get(convByteRange)
}

// SetByterange scopes the URI to a sub-range.
func (t *Map) SetByterange(r ByteRange) {
	t.byterange.Set(r)
	t.markDirty()
}

// UnsetByterange removes the sub-range.
func (t *Map) UnsetByterange() {
	t.byterange.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Map) RawAttributes() Attrs { return t.attrs }

func (t *Map) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putQuoted("URI", t.uri)
		writeByteRangeCell(w, "BYTERANGE", &t.byterange)
		return w.bytes()
	})
}

// ProgramDateTime is #EXT-X-PROGRAM-DATE-TIME, pinning the next segment to
// an absolute date and time.
type ProgramDateTime struct {
	cachedLine
	at time.Time
}

func parseProgramDateTime(value Value, raw []byte) (*ProgramDateTime, error) {
	b, ok := value.Bytes()
	if !ok || len(b) == 0 {
		return nil, valueErr("EXT-X-PROGRAM-DATE-TIME", "expected a date-time value")
	}
	at, ok := parseDateTime(string(b))
	if !ok {
		return nil, valueErr("EXT-X-PROGRAM-DATE-TIME", "malformed date-time")
	}
	return &ProgramDateTime{cachedLine: retained(raw), at: at}, nil
}

// NewProgramDateTime builds a program date-time tag.
func NewProgramDateTime(at time.Time) *ProgramDateTime {
	return &ProgramDateTime{at: at}
}

func (t *ProgramDateTime) Name() string { return "EXT-X-PROGRAM-DATE-TIME" }

// Time returns the absolute time of the next segment's first sample.
func (t *ProgramDateTime) Time() time.Time { return t.at }

// SetTime replaces the time.
func (t *ProgramDateTime) SetTime(at time.Time) {
	t.at = at
	t.markDirty()
}

func (t *ProgramDateTime) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return appendDateTime(b, t.at)
	})
}

// Bitrate is #EXT-X-BITRATE, the average bit rate of following segments in
// kilobits per second.
type Bitrate struct {
	cachedLine
	rate uint64
}

func parseBitrate(value Value, raw []byte) (*Bitrate, error) {
	u, err := wantUintValue("EXT-X-BITRATE", value)
	if err != nil {
		return nil, err
	}
	return &Bitrate{cachedLine: retained(raw), rate: u}, nil
}

// NewBitrate builds a bitrate tag.
func NewBitrate(rate uint64) *Bitrate {
	return &Bitrate{rate: rate}
}

func (t *Bitrate) Name() string { return "EXT-X-BITRATE" }

// Rate returns the bit rate in kilobits per second.
func (t *Bitrate) Rate() uint64 { return t.rate }

// SetRate replaces the bit rate.
func (t *Bitrate) SetRate(r uint64) {
	t.rate = r
	t.markDirty()
}

func (t *Bitrate) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return strconv.AppendUint(b, t.rate, 10)
	})
}

// Part is #EXT-X-PART, one partial segment in a low-latency playlist.
type Part struct {
	cachedLine
	attrs       Attrs
	duration    float64
	uri         string
	independent lazy.Cell[bool]
	byterange   lazy.Cell[ByteRange]
	gap         lazy.Cell[bool]
}

func parsePart(value Value, raw []byte) (*Part, error) {
	const name = "EXT-X-PART"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Part{cachedLine: retained(raw), attrs: attrs}
	var haveDuration, haveURI bool
	for _, a := range attrs {
		switch string(a.Name) {
		case "DURATION":
			f, err := reqFloat(name, a)
			if err != nil {
				return nil, err
			}
			t.duration = f
			haveDuration = true
		case "URI":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.uri = s
			haveURI = true
		case "INDEPENDENT":
			t.independent = lazy.FromRaw[bool](a.Value)
		case "BYTERANGE":
			t.byterange = lazy.FromRaw[ByteRange](a.Value)
		case "GAP":
			t.gap = lazy.FromRaw[bool](a.Value)
		}
	}
	if !haveDuration {
		return nil, missingAttr(name, "DURATION")
	}
	if !haveURI {
		return nil, missingAttr(name, "URI")
	}
	return t, nil
}

// NewPart builds a partial segment tag.
func NewPart(duration float64, uri string) *Part {
	return &Part{duration: duration, uri: uri}
}

func (t *Part) Name() string { return "EXT-X-PART" }

// Duration returns the part duration in seconds.
func (t *Part) Duration() float64 { return t.duration }

// SetDuration replaces the duration.
func (t *Part) SetDuration(d float64) {
	t.duration = d
	t.markDirty()
}

// URI returns the part URI.
func (t *Part) URI() string { return t.uri }

// SetURI replaces the URI.
func (t *Part) SetURI(uri string) {
	t.uri = uri
	t.markDirty()
}

// Independent reports the INDEPENDENT attribute, if declared.
func (t *Part) Independent() (bool, bool) { return t.independent.Get(convBool) }

// SetIndependent declares whether the part starts at an independent frame.
func (t *Part) SetIndependent(v bool) {
	t.independent.Set(v)
	t.markDirty()
}

// UnsetIndependent removes the INDEPENDENT attribute.
func (t *Part) UnsetIndependent() {
	t.independent.Unset()
	t.markDirty()
}

// Byterange returns the part's sub-range of its URI, if declared.
func (t *Part) Byterange() (ByteRange, bool) { return t.byterange.Get(convByteRange) }

// SetByterange scopes the part to a sub-range.
func (t *Part) SetByterange(r ByteRange) {
	t.byterange.Set(r)
	t.markDirty()
}

// UnsetByterange removes the sub-range.
func (t *Part) UnsetByterange() {
	t.byterange.Unset()
	t.markDirty()
}

// Gap reports the GAP attribute, if declared.
func (t *Part) Gap() (bool, bool) { return t.gap.Get(convBool) }

// SetGap declares the part unavailable.
func (t *Part) SetGap(v bool) {
	t.gap.Set(v)
	t.markDirty()
}

// UnsetGap removes the GAP attribute.
func (t *Part) UnsetGap() {
	t.gap.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Part) RawAttributes() Attrs { return t.attrs }

func (t *Part) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putFloat("DURATION", t.duration)
		w.putQuoted("URI", t.uri)
		writeBoolCell(w, "INDEPENDENT", &t.independent)
		writeByteRangeCell(w, "BYTERANGE", &t.byterange)
		writeBoolCell(w, "GAP", &t.gap)
		return w.bytes()
	})
}
