package tag

import (
	"bytes"
	"time"

	"github.com/simonhull/m3u8/internal/lazy"
)

// IndependentSegments is #EXT-X-INDEPENDENT-SEGMENTS.
type IndependentSegments struct {
	cachedLine
}

func parseIndependentSegments(value Value, raw []byte) (*IndependentSegments, error) {
	if err := wantEmpty("EXT-X-INDEPENDENT-SEGMENTS", value); err != nil {
		return nil, err
	}
	return &IndependentSegments{cachedLine: retained(raw)}, nil
}

// NewIndependentSegments builds the marker.
func NewIndependentSegments() *IndependentSegments { return &IndependentSegments{} }

func (t *IndependentSegments) Name() string { return "EXT-X-INDEPENDENT-SEGMENTS" }

func (t *IndependentSegments) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// Start is #EXT-X-START, the preferred playback start point.
type Start struct {
	cachedLine
	attrs      Attrs
	timeOffset float64
	precise    lazy.Cell[bool]
}

func parseStart(value Value, raw []byte) (*Start, error) {
	const name = "EXT-X-START"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Start{cachedLine: retained(raw), attrs: attrs}
	haveOffset := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "TIME-OFFSET":
			f, err := reqFloat(name, a)
			if err != nil {
				return nil, err
			}
			t.timeOffset = f
			haveOffset = true
		case "PRECISE":
			t.precise = lazy.FromRaw[bool](a.Value)
		}
	}
	if !haveOffset {
		return nil, missingAttr(name, "TIME-OFFSET")
	}
	return t, nil
}

// NewStart builds a start point. Negative offsets count back from the end.
func NewStart(timeOffset float64) *Start {
	return &Start{timeOffset: timeOffset}
}

func (t *Start) Name() string { return "EXT-X-START" }

// TimeOffset returns the offset in seconds from the start of the playlist,
// or from the end when negative.
func (t *Start) TimeOffset() float64 { return t.timeOffset }

// SetTimeOffset replaces the offset.
func (t *Start) SetTimeOffset(f float64) {
	t.timeOffset = f
	t.markDirty()
}

// Precise reports the PRECISE attribute, if declared.
func (t *Start) Precise() (bool, bool) { return t.precise.Get(convBool) }

// SetPrecise declares whether clients should start exactly at the offset.
func (t *Start) SetPrecise(v bool) {
	t.precise.Set(v)
	t.markDirty()
}

// UnsetPrecise removes the PRECISE attribute.
func (t *Start) UnsetPrecise() {
	t.precise.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Start) RawAttributes() Attrs { return t.attrs }

func (t *Start) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putFloat("TIME-OFFSET", t.timeOffset)
		writeBoolCell(w, "PRECISE", &t.precise)
		return w.bytes()
	})
}

// Define is #EXT-X-DEFINE, one playlist variable. A definition takes
// exactly one of three forms: NAME with a VALUE, IMPORT from the parent
// playlist, or QUERYPARAM taken from the playlist URI.
type Define struct {
	cachedLine
	attrs      Attrs
	varName    lazy.Cell[string]
	value      lazy.Cell[string]
	imp        lazy.Cell[string]
	queryParam lazy.Cell[string]
}

func parseDefine(value Value, raw []byte) (*Define, error) {
	const name = "EXT-X-DEFINE"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Define{cachedLine: retained(raw), attrs: attrs}
	for _, a := range attrs {
		switch string(a.Name) {
		case "NAME":
			t.varName = lazy.FromRaw[string](a.Value)
		case "VALUE":
			t.value = lazy.FromRaw[string](a.Value)
		case "IMPORT":
			t.imp = lazy.FromRaw[string](a.Value)
		case "QUERYPARAM":
			t.queryParam = lazy.FromRaw[string](a.Value)
		}
	}
	forms := 0
	if t.varName.Present() {
		forms++
	}
	if t.imp.Present() {
		forms++
	}
	if t.queryParam.Present() {
		forms++
	}
	if forms != 1 {
		return nil, valueErr(name, "expected exactly one of NAME, IMPORT or QUERYPARAM")
	}
	if t.varName.Present() && !t.value.Present() {
		return nil, missingAttr(name, "VALUE")
	}
	return t, nil
}

// NewDefine builds a NAME=VALUE definition.
func NewDefine(name, value string) *Define {
	t := &Define{}
	t.varName.Set(name)
	t.value.Set(value)
	return t
}

// NewDefineImport builds a definition imported from the parent playlist.
func NewDefineImport(name string) *Define {
	t := &Define{}
	t.imp.Set(name)
	return t
}

// NewDefineQueryParam builds a definition taken from a URI query parameter.
func NewDefineQueryParam(name string) *Define {
	t := &Define{}
	t.queryParam.Set(name)
	return t
}

func (t *Define) Name() string { return "EXT-X-DEFINE" }

// VarName returns the NAME attribute of a NAME=VALUE definition.
func (t *Define) VarName() (string, bool) { return t.varName.Get(convQuoted) }

// Value returns the VALUE attribute of a NAME=VALUE definition.
func (t *Define) Value() (string, bool) { return t.value.Get(convQuoted) }

// SetValue replaces the VALUE of a NAME=VALUE definition.
func (t *Define) SetValue(s string) {
	t.value.Set(s)
	t.markDirty()
}

// Import returns the variable name of an IMPORT definition.
func (t *Define) Import() (string, bool) { return t.imp.Get(convQuoted) }

// QueryParam returns the parameter name of a QUERYPARAM definition.
func (t *Define) QueryParam() (string, bool) { return t.queryParam.Get(convQuoted) }

// RawAttributes returns the scanned attribute list in source order.
func (t *Define) RawAttributes() Attrs { return t.attrs }

func (t *Define) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		writeQuotedCell(w, "NAME", &t.varName)
		writeQuotedCell(w, "VALUE", &t.value)
		writeQuotedCell(w, "IMPORT", &t.imp)
		writeQuotedCell(w, "QUERYPARAM", &t.queryParam)
		return w.bytes()
	})
}

// Daterange is #EXT-X-DATERANGE, a range of time carrying metadata, most
// often SCTE-35 splice information. Client attributes (names beginning
// with X-) are preserved through re-rendering.
type Daterange struct {
	cachedLine
	attrs           Attrs
	id              string
	startDate       time.Time
	class           lazy.Cell[string]
	cue             lazy.Cell[EnumeratedStringList[Cue]]
	endDate         lazy.Cell[time.Time]
	duration        lazy.Cell[float64]
	plannedDuration lazy.Cell[float64]
	clientAttrs     []Attr
	scte35Cmd       lazy.Cell[string]
	scte35Out       lazy.Cell[string]
	scte35In        lazy.Cell[string]
	endOnNext       lazy.Cell[bool]
}

func parseDaterange(value Value, raw []byte) (*Daterange, error) {
	const name = "EXT-X-DATERANGE"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Daterange{cachedLine: retained(raw), attrs: attrs}
	var haveID, haveStart bool
	for _, a := range attrs {
		if bytes.HasPrefix(a.Name, []byte("X-")) {
			t.clientAttrs = append(t.clientAttrs, a)
			continue
		}
		switch string(a.Name) {
		case "ID":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.id = s
			haveID = true
		case "START-DATE":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			at, ok := parseDateTime(s)
			if !ok {
				return nil, attrErr(name, "START-DATE", "malformed date-time")
			}
			t.startDate = at
			haveStart = true
		case "CLASS":
			t.class = lazy.FromRaw[string](a.Value)
		case "CUE":
			t.cue = lazy.FromRaw[EnumeratedStringList[Cue]](a.Value)
		case "END-DATE":
			t.endDate = lazy.FromRaw[time.Time](a.Value)
		case "DURATION":
			t.duration = lazy.FromRaw[float64](a.Value)
		case "PLANNED-DURATION":
			t.plannedDuration = lazy.FromRaw[float64](a.Value)
		case "SCTE35-CMD":
			t.scte35Cmd = lazy.FromRaw[string](a.Value)
		case "SCTE35-OUT":
			t.scte35Out = lazy.FromRaw[string](a.Value)
		case "SCTE35-IN":
			t.scte35In = lazy.FromRaw[string](a.Value)
		case "END-ON-NEXT":
			t.endOnNext = lazy.FromRaw[bool](a.Value)
		}
	}
	if !haveID {
		return nil, missingAttr(name, "ID")
	}
	if !haveStart {
		return nil, missingAttr(name, "START-DATE")
	}
	return t, nil
}

// NewDaterange builds a date range.
func NewDaterange(id string, startDate time.Time) *Daterange {
	return &Daterange{id: id, startDate: startDate}
}

func (t *Daterange) Name() string { return "EXT-X-DATERANGE" }

// ID returns the range identifier.
func (t *Daterange) ID() string { return t.id }

// SetID replaces the range identifier.
func (t *Daterange) SetID(s string) {
	t.id = s
	t.markDirty()
}

// StartDate returns the range start.
func (t *Daterange) StartDate() time.Time { return t.startDate }

// SetStartDate replaces the range start.
func (t *Daterange) SetStartDate(at time.Time) {
	t.startDate = at
	t.markDirty()
}

// Class returns the range class, if declared.
func (t *Daterange) Class() (string, bool) { return t.class.Get(convQuoted) }

// SetClass declares the range class.
func (t *Daterange) SetClass(s string) {
	t.class.Set(s)
	t.markDirty()
}

// UnsetClass removes the range class.
func (t *Daterange) UnsetClass() {
	t.class.Unset()
	t.markDirty()
}

// CueList returns the CUE trigger list, if declared.
func (t *Daterange) CueList() (EnumeratedStringList[Cue], bool) {
	return t.cue.Get(convCueList)
}

// SetCueList declares the CUE trigger list.
func (t *Daterange) SetCueList(l EnumeratedStringList[Cue]) {
	t.cue.Set(l)
	t.markDirty()
}

// UnsetCueList removes the CUE trigger list.
func (t *Daterange) UnsetCueList() {
	t.cue.Unset()
	t.markDirty()
}

// EndDate returns the range end, if declared.
func (t *Daterange) EndDate() (time.Time, bool) { return t.endDate.Get(convTime) }

// SetEndDate declares the range end.
func (t *Daterange) SetEndDate(at time.Time) {
	t.endDate.Set(at)
	t.markDirty()
}

// UnsetEndDate removes the range end.
func (t *Daterange) UnsetEndDate() {
	t.endDate.Unset()
	t.markDirty()
}

// Duration returns the range duration in seconds, if declared.
func (t *Daterange) Duration() (float64, bool) { return t.duration.Get(convFloat) }

// SetDuration declares the range duration.
func (t *Daterange) SetDuration(f float64) {
	t.duration.Set(f)
	t.markDirty()
}

// UnsetDuration removes the range duration.
func (t *Daterange) UnsetDuration() {
	t.duration.Unset()
	t.markDirty()
}

// PlannedDuration returns the expected duration, if declared.
func (t *Daterange) PlannedDuration() (float64, bool) { return t.plannedDuration.Get(convFloat) }

// SetPlannedDuration declares the expected duration.
func (t *Daterange) SetPlannedDuration(f float64) {
	t.plannedDuration.Set(f)
	t.markDirty()
}

// UnsetPlannedDuration removes the expected duration.
func (t *Daterange) UnsetPlannedDuration() {
	t.plannedDuration.Unset()
	t.markDirty()
}

// Scte35Cmd returns the SCTE35-CMD payload, if declared.
func (t *Daterange) Scte35Cmd() (string, bool) { return t.scte35Cmd.Get(convUnquoted) }

// SetScte35Cmd declares the SCTE35-CMD payload.
func (t *Daterange) SetScte35Cmd(s string) {
	t.scte35Cmd.Set(s)
	t.markDirty()
}

// UnsetScte35Cmd removes the SCTE35-CMD payload.
func (t *Daterange) UnsetScte35Cmd() {
	t.scte35Cmd.Unset()
	t.markDirty()
}

// Scte35Out returns the SCTE35-OUT payload, if declared.
func (t *Daterange) Scte35Out() (string, bool) { return t.scte35Out.Get(convUnquoted) }

// SetScte35Out declares the SCTE35-OUT payload.
func (t *Daterange) SetScte35Out(s string) {
	t.scte35Out.Set(s)
	t.markDirty()
}

// UnsetScte35Out removes the SCTE35-OUT payload.
func (t *Daterange) UnsetScte35Out() {
	t.scte35Out.Unset()
	t.markDirty()
}

// Scte35In returns the SCTE35-IN payload, if declared.
func (t *Daterange) Scte35In() (string, bool) { return t.scte35In.Get(convUnquoted) }

// SetScte35In declares the SCTE35-IN payload.
func (t *Daterange) SetScte35In(s string) {
	t.scte35In.Set(s)
	t.markDirty()
}

// UnsetScte35In removes the SCTE35-IN payload.
func (t *Daterange) UnsetScte35In() {
	t.scte35In.Unset()
	t.markDirty()
}

// EndOnNext reports the END-ON-NEXT attribute, if declared.
func (t *Daterange) EndOnNext() (bool, bool) { return t.endOnNext.Get(convBool) }

// SetEndOnNext declares that the range ends at the next range of its class.
func (t *Daterange) SetEndOnNext(v bool) {
	t.endOnNext.Set(v)
	t.markDirty()
}

// UnsetEndOnNext removes the END-ON-NEXT attribute.
func (t *Daterange) UnsetEndOnNext() {
	t.endOnNext.Unset()
	t.markDirty()
}

// ClientAttributes returns the X- prefixed attributes in source order.
func (t *Daterange) ClientAttributes() []Attr { return t.clientAttrs }

// SetClientAttribute sets one client attribute, replacing an existing one
// of the same name. The name should begin with X-.
func (t *Daterange) SetClientAttribute(name string, v AttrValue) {
	for i, a := range t.clientAttrs {
		if string(a.Name) == name {
			t.clientAttrs[i].Value = v
			t.markDirty()
			return
		}
	}
	t.clientAttrs = append(t.clientAttrs, Attr{Name: []byte(name), Value: v})
	t.markDirty()
}

// UnsetClientAttribute removes one client attribute by name.
func (t *Daterange) UnsetClientAttribute(name string) {
	for i, a := range t.clientAttrs {
		if string(a.Name) == name {
			t.clientAttrs = append(t.clientAttrs[:i], t.clientAttrs[i+1:]...)
			t.markDirty()
			return
		}
	}
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Daterange) RawAttributes() Attrs { return t.attrs }

func (t *Daterange) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putQuoted("ID", t.id)
		writeQuotedCell(w, "CLASS", &t.class)
		w.putTime("START-DATE", t.startDate)
		writeListCell(w, "CUE", &t.cue)
		writeTimeCell(w, "END-DATE", &t.endDate)
		writeFloatCell(w, "DURATION", &t.duration)
		writeFloatCell(w, "PLANNED-DURATION", &t.plannedDuration)
		for _, a := range t.clientAttrs {
			w.putRaw(string(a.Name), a.Value)
		}
		writeUnquotedCell(w, "SCTE35-CMD", &t.scte35Cmd)
		writeUnquotedCell(w, "SCTE35-OUT", &t.scte35Out)
		writeUnquotedCell(w, "SCTE35-IN", &t.scte35In)
		writeBoolCell(w, "END-ON-NEXT", &t.endOnNext)
		return w.bytes()
	})
}

// Skip is #EXT-X-SKIP, replacing skipped segments in a delta update.
type Skip struct {
	cachedLine
	attrs                     Attrs
	skippedSegments           uint64
	recentlyRemovedDateranges lazy.Cell[string]
}

func parseSkip(value Value, raw []byte) (*Skip, error) {
	const name = "EXT-X-SKIP"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Skip{cachedLine: retained(raw), attrs: attrs}
	haveSkipped := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "SKIPPED-SEGMENTS":
			u, err := reqUint(name, a)
			if err != nil {
				return nil, err
			}
			t.skippedSegments = u
			haveSkipped = true
		case "RECENTLY-REMOVED-DATERANGES":
			t.recentlyRemovedDateranges = lazy.FromRaw[string](a.Value)
		}
	}
	if !haveSkipped {
		return nil, missingAttr(name, "SKIPPED-SEGMENTS")
	}
	return t, nil
}

// NewSkip builds a skip tag.
func NewSkip(skippedSegments uint64) *Skip {
	return &Skip{skippedSegments: skippedSegments}
}

func (t *Skip) Name() string { return "EXT-X-SKIP" }

// SkippedSegments returns the number of segments replaced by this tag.
func (t *Skip) SkippedSegments() uint64 { return t.skippedSegments }

// SetSkippedSegments replaces the skipped segment count.
func (t *Skip) SetSkippedSegments(u uint64) {
	t.skippedSegments = u
	t.markDirty()
}

// RecentlyRemovedDateranges returns the removed date range IDs, if
// declared.
func (t *Skip) RecentlyRemovedDateranges() (string, bool) {
	return t.recentlyRemovedDateranges.Get(convQuoted)
}

// SetRecentlyRemovedDateranges declares the removed date range IDs.
func (t *Skip) SetRecentlyRemovedDateranges(s string) {
	t.recentlyRemovedDateranges.Set(s)
	t.markDirty()
}

// UnsetRecentlyRemovedDateranges removes the attribute.
func (t *Skip) UnsetRecentlyRemovedDateranges() {
	t.recentlyRemovedDateranges.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Skip) RawAttributes() Attrs { return t.attrs }

func (t *Skip) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putUint("SKIPPED-SEGMENTS", t.skippedSegments)
		writeQuotedCell(w, "RECENTLY-REMOVED-DATERANGES", &t.recentlyRemovedDateranges)
		return w.bytes()
	})
}

// PreloadHint is #EXT-X-PRELOAD-HINT, a resource the server expects to
// need soon.
type PreloadHint struct {
	cachedLine
	attrs           Attrs
	typ             EnumeratedString[PreloadHintType]
	uri             string
	byterangeStart  lazy.Cell[uint64]
	byterangeLength lazy.Cell[uint64]
}

func parsePreloadHint(value Value, raw []byte) (*PreloadHint, error) {
	const name = "EXT-X-PRELOAD-HINT"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &PreloadHint{cachedLine: retained(raw), attrs: attrs}
	var haveType, haveURI bool
	for _, a := range attrs {
		switch string(a.Name) {
		case "TYPE":
			e, err := reqEnum(name, a, preloadHintTypes)
			if err != nil {
				return nil, err
			}
			t.typ = e
			haveType = true
		case "URI":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.uri = s
			haveURI = true
		case "BYTERANGE-START":
			t.byterangeStart = lazy.FromRaw[uint64](a.Value)
		case "BYTERANGE-LENGTH":
			t.byterangeLength = lazy.FromRaw[uint64](a.Value)
		}
	}
	if !haveType {
		return nil, missingAttr(name, "TYPE")
	}
	if !haveURI {
		return nil, missingAttr(name, "URI")
	}
	return t, nil
}

// NewPreloadHint builds a preload hint.
func NewPreloadHint(typ PreloadHintType, uri string) *PreloadHint {
	return &PreloadHint{typ: enumKnown(typ), uri: uri}
}

func (t *PreloadHint) Name() string { return "EXT-X-PRELOAD-HINT" }

// Type returns the hinted resource type.
func (t *PreloadHint) Type() EnumeratedString[PreloadHintType] { return t.typ }

// SetType replaces the hinted resource type.
func (t *PreloadHint) SetType(v PreloadHintType) {
	t.typ = enumKnown(v)
	t.markDirty()
}

// URI returns the hinted resource URI.
func (t *PreloadHint) URI() string { return t.uri }

// SetURI replaces the hinted resource URI.
func (t *PreloadHint) SetURI(uri string) {
	t.uri = uri
	t.markDirty()
}

// ByterangeStart returns the first byte of the hinted range, if declared.
func (t *PreloadHint) ByterangeStart() (uint64, bool) { return t.byterangeStart.Get(convUint) }

// SetByterangeStart declares the first byte of the hinted range.
func (t *PreloadHint) SetByterangeStart(u uint64) {
	t.byterangeStart.Set(u)
	t.markDirty()
}

// UnsetByterangeStart removes the range start.
func (t *PreloadHint) UnsetByterangeStart() {
	t.byterangeStart.Unset()
	t.markDirty()
}

// ByterangeLength returns the length of the hinted range, if declared.
func (t *PreloadHint) ByterangeLength() (uint64, bool) { return t.byterangeLength.Get(convUint) }

// SetByterangeLength declares the length of the hinted range.
func (t *PreloadHint) SetByterangeLength(u uint64) {
	t.byterangeLength.Set(u)
	t.markDirty()
}

// UnsetByterangeLength removes the range length.
func (t *PreloadHint) UnsetByterangeLength() {
	t.byterangeLength.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *PreloadHint) RawAttributes() Attrs { return t.attrs }

func (t *PreloadHint) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putUnquoted("TYPE", t.typ.String())
		w.putQuoted("URI", t.uri)
		writeUintCell(w, "BYTERANGE-START", &t.byterangeStart)
		writeUintCell(w, "BYTERANGE-LENGTH", &t.byterangeLength)
		return w.bytes()
	})
}

// RenditionReport is #EXT-X-RENDITION-REPORT, the state of another
// rendition of the same content.
type RenditionReport struct {
	cachedLine
	attrs    Attrs
	uri      string
	lastMSN  lazy.Cell[uint64]
	lastPart lazy.Cell[uint64]
}

func parseRenditionReport(value Value, raw []byte) (*RenditionReport, error) {
	const name = "EXT-X-RENDITION-REPORT"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &RenditionReport{cachedLine: retained(raw), attrs: attrs}
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
		case "LAST-MSN":
			t.lastMSN = lazy.FromRaw[uint64](a.Value)
		case "LAST-PART":
			t.lastPart = lazy.FromRaw[uint64](a.Value)
		}
	}
	if !haveURI {
		return nil, missingAttr(name, "URI")
	}
	return t, nil
}

// NewRenditionReport builds a rendition report.
func NewRenditionReport(uri string) *RenditionReport {
	return &RenditionReport{uri: uri}
}

func (t *RenditionReport) Name() string { return "EXT-X-RENDITION-REPORT" }

// URI returns the reported rendition's playlist URI.
func (t *RenditionReport) URI() string { return t.uri }

// SetURI replaces the reported rendition's playlist URI.
func (t *RenditionReport) SetURI(uri string) {
	t.uri = uri
	t.markDirty()
}

// LastMSN returns the rendition's last media sequence number, if declared.
func (t *RenditionReport) LastMSN() (uint64, bool) { return t.lastMSN.Get(convUint) }

// SetLastMSN declares the rendition's last media sequence number.
func (t *RenditionReport) SetLastMSN(u uint64) {
	t.lastMSN.Set(u)
	t.markDirty()
}

// UnsetLastMSN removes the last media sequence number.
func (t *RenditionReport) UnsetLastMSN() {
	t.lastMSN.Unset()
	t.markDirty()
}

// LastPart returns the rendition's last partial segment index, if
// declared.
func (t *RenditionReport) LastPart() (uint64, bool) { return t.lastPart.Get(convUint) }

// SetLastPart declares the rendition's last partial segment index.
func (t *RenditionReport) SetLastPart(u uint64) {
	t.lastPart.Set(u)
	t.markDirty()
}

// UnsetLastPart removes the last partial segment index.
func (t *RenditionReport) UnsetLastPart() {
	t.lastPart.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *RenditionReport) RawAttributes() Attrs { return t.attrs }

func (t *RenditionReport) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putQuoted("URI", t.uri)
		writeUintCell(w, "LAST-MSN", &t.lastMSN)
		writeUintCell(w, "LAST-PART", &t.lastPart)
		return w.bytes()
	})
}
