package tag

import (
	"strconv"

	"github.com/simonhull/m3u8/internal/lazy"
)

// Targetduration is #EXT-X-TARGETDURATION, the upper bound on segment
// durations in a media playlist.
type Targetduration struct {
	cachedLine
	seconds uint64
}

func parseTargetduration(value Value, raw []byte) (*Targetduration, error) {
	u, err := wantUintValue("EXT-X-TARGETDURATION", value)
	if err != nil {
		return nil, err
	}
	return &Targetduration{cachedLine: retained(raw), seconds: u}, nil
}

// NewTargetduration builds a target duration tag.
func NewTargetduration(seconds uint64) *Targetduration {
	return &Targetduration{seconds: seconds}
}

func (t *Targetduration) Name() string { return "EXT-X-TARGETDURATION" }

// Duration returns the target duration in seconds.
func (t *Targetduration) Duration() uint64 { return t.seconds }

// SetDuration replaces the target duration.
func (t *Targetduration) SetDuration(s uint64) {
	t.seconds = s
	t.markDirty()
}

func (t *Targetduration) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return strconv.AppendUint(b, t.seconds, 10)
	})
}

// MediaSequence is #EXT-X-MEDIA-SEQUENCE, the sequence number of the first
// segment in the playlist.
type MediaSequence struct {
	cachedLine
	seq uint64
}

func parseMediaSequence(value Value, raw []byte) (*MediaSequence, error) {
	u, err := wantUintValue("EXT-X-MEDIA-SEQUENCE", value)
	if err != nil {
		return nil, err
	}
	return &MediaSequence{cachedLine: retained(raw), seq: u}, nil
}

// NewMediaSequence builds a media sequence tag.
func NewMediaSequence(seq uint64) *MediaSequence {
	return &MediaSequence{seq: seq}
}

func (t *MediaSequence) Name() string { return "EXT-X-MEDIA-SEQUENCE" }

// Sequence returns the first segment's sequence number.
func (t *MediaSequence) Sequence() uint64 { return t.seq }

// SetSequence replaces the sequence number.
func (t *MediaSequence) SetSequence(seq uint64) {
	t.seq = seq
	t.markDirty()
}

func (t *MediaSequence) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return strconv.AppendUint(b, t.seq, 10)
	})
}

// DiscontinuitySequence is #EXT-X-DISCONTINUITY-SEQUENCE, numbering the
// discontinuities that precede the playlist.
type DiscontinuitySequence struct {
	cachedLine
	seq uint64
}

func parseDiscontinuitySequence(value Value, raw []byte) (*DiscontinuitySequence, error) {
	u, err := wantUintValue("EXT-X-DISCONTINUITY-SEQUENCE", value)
	if err != nil {
		return nil, err
	}
	return &DiscontinuitySequence{cachedLine: retained(raw), seq: u}, nil
}

// NewDiscontinuitySequence builds a discontinuity sequence tag.
func NewDiscontinuitySequence(seq uint64) *DiscontinuitySequence {
	return &DiscontinuitySequence{seq: seq}
}

func (t *DiscontinuitySequence) Name() string { return "EXT-X-DISCONTINUITY-SEQUENCE" }

// Sequence returns the discontinuity sequence number.
func (t *DiscontinuitySequence) Sequence() uint64 { return t.seq }

// SetSequence replaces the sequence number.
func (t *DiscontinuitySequence) SetSequence(seq uint64) {
	t.seq = seq
	t.markDirty()
}

func (t *DiscontinuitySequence) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return strconv.AppendUint(b, t.seq, 10)
	})
}

// Endlist is #EXT-X-ENDLIST, marking that no more segments will be added.
type Endlist struct {
	cachedLine
}

func parseEndlist(value Value, raw []byte) (*Endlist, error) {
	if err := wantEmpty("EXT-X-ENDLIST", value); err != nil {
		return nil, err
	}
	return &Endlist{cachedLine: retained(raw)}, nil
}

// NewEndlist builds an end-of-list marker.
func NewEndlist() *Endlist { return &Endlist{} }

func (t *Endlist) Name() string { return "EXT-X-ENDLIST" }

func (t *Endlist) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// PlaylistType is #EXT-X-PLAYLIST-TYPE, the mutability contract of a media
// playlist.
type PlaylistType struct {
	cachedLine
	typ EnumeratedString[PlaylistTypeValue]
}

func parsePlaylistType(value Value, raw []byte) (*PlaylistType, error) {
	b, ok := value.Bytes()
	if !ok || len(b) == 0 {
		return nil, valueErr("EXT-X-PLAYLIST-TYPE", "expected a playlist type value")
	}
	t := &PlaylistType{cachedLine: retained(raw)}
	t.typ = enumOf(string(b), playlistTypeValues)
	return t, nil
}

// NewPlaylistType builds a playlist type tag.
func NewPlaylistType(v PlaylistTypeValue) *PlaylistType {
	return &PlaylistType{typ: enumKnown(v)}
}

func (t *PlaylistType) Name() string { return "EXT-X-PLAYLIST-TYPE" }

// Type returns the playlist type. Values outside EVENT/VOD come back
// unknown rather than failing the parse.
func (t *PlaylistType) Type() EnumeratedString[PlaylistTypeValue] { return t.typ }

// SetType replaces the playlist type.
func (t *PlaylistType) SetType(v PlaylistTypeValue) {
	t.typ = enumKnown(v)
	t.markDirty()
}

func (t *PlaylistType) Line() []byte {
	return t.render(func() []byte {
		b := append(markerTag(t.Name()), ':')
		return append(b, t.typ.String()...)
	})
}

// IFramesOnly is #EXT-X-I-FRAMES-ONLY, marking a playlist whose segments
// are single I-frames.
type IFramesOnly struct {
	cachedLine
}

func parseIFramesOnly(value Value, raw []byte) (*IFramesOnly, error) {
	if err := wantEmpty("EXT-X-I-FRAMES-ONLY", value); err != nil {
		return nil, err
	}
	return &IFramesOnly{cachedLine: retained(raw)}, nil
}

// NewIFramesOnly builds an I-frames-only marker.
func NewIFramesOnly() *IFramesOnly { return &IFramesOnly{} }

func (t *IFramesOnly) Name() string { return "EXT-X-I-FRAMES-ONLY" }

func (t *IFramesOnly) Line() []byte {
	return t.render(func() []byte { return markerTag(t.Name()) })
}

// PartInf is #EXT-X-PART-INF, the partial segment parameters of a
// low-latency playlist.
type PartInf struct {
	cachedLine
	attrs      Attrs
	partTarget float64
}

func parsePartInf(value Value, raw []byte) (*PartInf, error) {
	const name = "EXT-X-PART-INF"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &PartInf{cachedLine: retained(raw), attrs: attrs}
	have := false
	for _, a := range attrs {
		if string(a.Name) == "PART-TARGET" {
			f, err := reqFloat(name, a)
			if err != nil {
				return nil, err
			}
			t.partTarget = f
			have = true
		}
	}
	if !have {
		return nil, missingAttr(name, "PART-TARGET")
	}
	return t, nil
}

// NewPartInf builds a part parameters tag.
func NewPartInf(partTarget float64) *PartInf {
	return &PartInf{partTarget: partTarget}
}

func (t *PartInf) Name() string { return "EXT-X-PART-INF" }

// PartTarget returns the target part duration in seconds.
func (t *PartInf) PartTarget() float64 { return t.partTarget }

// SetPartTarget replaces the target part duration.
func (t *PartInf) SetPartTarget(f float64) {
	t.partTarget = f
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *PartInf) RawAttributes() Attrs { return t.attrs }

func (t *PartInf) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putFloat("PART-TARGET", t.partTarget)
		return w.bytes()
	})
}

// ServerControl is #EXT-X-SERVER-CONTROL, the delivery directives a server
// offers its clients. Every attribute is optional.
type ServerControl struct {
	cachedLine
	attrs             Attrs
	canSkipUntil      lazy.Cell[float64]
	canSkipDateranges lazy.Cell[bool]
	holdBack          lazy.Cell[float64]
	partHoldBack      lazy.Cell[float64]
	canBlockReload    lazy.Cell[bool]
}

func parseServerControl(value Value, raw []byte) (*ServerControl, error) {
	attrs, err := wantAttrList("EXT-X-SERVER-CONTROL", value)
	if err != nil {
		return nil, err
	}
	t := &ServerControl{cachedLine: retained(raw), attrs: attrs}
	for _, a := range attrs {
		switch string(a.Name) {
		case "CAN-SKIP-UNTIL":
			t.canSkipUntil = lazy.FromRaw[float64](a.Value)
		case "CAN-SKIP-DATERANGES":
			t.canSkipDateranges = lazy.FromRaw[bool](a.Value)
		case "HOLD-BACK":
			t.holdBack = lazy.FromRaw[float64](a.Value)
		case "PART-HOLD-BACK":
			t.partHoldBack = lazy.FromRaw[float64](a.Value)
		case "CAN-BLOCK-RELOAD":
			t.canBlockReload = lazy.FromRaw[bool](a.Value)
		}
	}
	return t, nil
}

// NewServerControl builds an empty server control tag; declare directives
// with the setters.
func NewServerControl() *ServerControl { return &ServerControl{} }

func (t *ServerControl) Name() string { return "EXT-X-SERVER-CONTROL" }

// CanSkipUntil returns the skip boundary in seconds, if declared.
func (t *ServerControl) CanSkipUntil() (float64, bool) { return t.canSkipUntil.Get(convFloat) }

// SetCanSkipUntil declares the skip boundary.
func (t *ServerControl) SetCanSkipUntil(f float64) {
	t.canSkipUntil.Set(f)
	t.markDirty()
}

// UnsetCanSkipUntil removes the skip boundary.
func (t *ServerControl) UnsetCanSkipUntil() {
	t.canSkipUntil.Unset()
	t.markDirty()
}

// CanSkipDateranges reports the CAN-SKIP-DATERANGES attribute, if declared.
func (t *ServerControl) CanSkipDateranges() (bool, bool) { return t.canSkipDateranges.Get(convBool) }

// SetCanSkipDateranges declares whether skip responses may drop dateranges.
func (t *ServerControl) SetCanSkipDateranges(v bool) {
	t.canSkipDateranges.Set(v)
	t.markDirty()
}

// UnsetCanSkipDateranges removes the attribute.
func (t *ServerControl) UnsetCanSkipDateranges() {
	t.canSkipDateranges.Unset()
	t.markDirty()
}

// HoldBack returns the minimum distance from the live edge, if declared.
func (t *ServerControl) HoldBack() (float64, bool) { return t.holdBack.Get(convFloat) }

// SetHoldBack declares the hold-back distance.
func (t *ServerControl) SetHoldBack(f float64) {
	t.holdBack.Set(f)
	t.markDirty()
}

// UnsetHoldBack removes the hold-back distance.
func (t *ServerControl) UnsetHoldBack() {
	t.holdBack.Unset()
	t.markDirty()
}

// PartHoldBack returns the part hold-back distance, if declared.
func (t *ServerControl) PartHoldBack() (float64, bool) { return t.partHoldBack.Get(convFloat) }

// SetPartHoldBack declares the part hold-back distance.
func (t *ServerControl) SetPartHoldBack(f float64) {
	t.partHoldBack.Set(f)
	t.markDirty()
}

// UnsetPartHoldBack removes the part hold-back distance.
func (t *ServerControl) UnsetPartHoldBack() {
	t.partHoldBack.Unset()
	t.markDirty()
}

// CanBlockReload reports the CAN-BLOCK-RELOAD attribute, if declared.
func (t *ServerControl) CanBlockReload() (bool, bool) { return t.canBlockReload.Get(convBool) }

// SetCanBlockReload declares blocking reload support.
func (t *ServerControl) SetCanBlockReload(v bool) {
	t.canBlockReload.Set(v)
	t.markDirty()
}

// UnsetCanBlockReload removes the attribute.
func (t *ServerControl) UnsetCanBlockReload() {
	t.canBlockReload.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *ServerControl) RawAttributes() Attrs { return t.attrs }

func (t *ServerControl) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		writeFloatCell(w, "CAN-SKIP-UNTIL", &t.canSkipUntil)
		writeBoolCell(w, "CAN-SKIP-DATERANGES", &t.canSkipDateranges)
		writeFloatCell(w, "HOLD-BACK", &t.holdBack)
		writeFloatCell(w, "PART-HOLD-BACK", &t.partHoldBack)
		writeBoolCell(w, "CAN-BLOCK-RELOAD", &t.canBlockReload)
		return w.bytes()
	})
}
