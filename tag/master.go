package tag

import (
	"strconv"

	"github.com/simonhull/m3u8/internal/lazy"
)

// Resolution is the WxH pixel resolution of a variant stream.
type Resolution struct {
	Width  uint64
	Height uint64
}

// String renders the WxH form.
func (r Resolution) String() string {
	b := strconv.AppendUint(nil, r.Width, 10)
	b = append(b, 'x')
	b = strconv.AppendUint(b, r.Height, 10)
	return string(b)
}

func convResolution(v AttrValue) (Resolution, bool) {
	b, ok := v.Unquoted()
	if !ok {
		return Resolution{}, false
	}
	x := -1
	for i, c := range b {
		if c == 'x' {
			x = i
			break
		}
	}
	if x <= 0 || x == len(b)-1 {
		return Resolution{}, false
	}
	w, err := strconv.ParseUint(string(b[:x]), 10, 64)
	if err != nil {
		return Resolution{}, false
	}
	h, err := strconv.ParseUint(string(b[x+1:]), 10, 64)
	if err != nil {
		return Resolution{}, false
	}
	return Resolution{Width: w, Height: h}, true
}

func writeResolutionCell(w *attrLine, name string, c *Cell[Resolution]) {
	writeCell(w, name, c, func(w *attrLine, name string, r Resolution) {
		w.putUnquoted(name, r.String())
	})
}

// Media is #EXT-X-MEDIA, one alternative rendition of a master playlist.
type Media struct {
	cachedLine
	attrs             Attrs
	typ               EnumeratedString[MediaType]
	groupID           string
	renditionName     string
	uri               lazy.Cell[string]
	language          lazy.Cell[string]
	assocLanguage     lazy.Cell[string]
	stableRenditionID lazy.Cell[string]
	deflt             lazy.Cell[bool]
	autoselect        lazy.Cell[bool]
	forced            lazy.Cell[bool]
	instreamID        lazy.Cell[string]
	bitDepth          lazy.Cell[uint64]
	sampleRate        lazy.Cell[uint64]
	characteristics   lazy.Cell[string]
	channels          lazy.Cell[string]
}

func parseMedia(value Value, raw []byte) (*Media, error) {
	const name = "EXT-X-MEDIA"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &Media{cachedLine: retained(raw), attrs: attrs}
	var haveType, haveGroup, haveName bool
	for _, a := range attrs {
		switch string(a.Name) {
		case "TYPE":
			e, err := reqEnum(name, a, mediaTypes)
			if err != nil {
				return nil, err
			}
			t.typ = e
			haveType = true
		case "GROUP-ID":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.groupID = s
			haveGroup = true
		case "NAME":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.renditionName = s
			haveName = true
		case "URI":
			t.uri = lazy.FromRaw[string](a.Value)
		case "LANGUAGE":
			t.language = lazy.FromRaw[string](a.Value)
		case "ASSOC-LANGUAGE":
			t.assocLanguage = lazy.FromRaw[string](a.Value)
		case "STABLE-RENDITION-ID":
			t.stableRenditionID = lazy.FromRaw[string](a.Value)
		case "DEFAULT":
			t.deflt = lazy.FromRaw[bool](a.Value)
		case "AUTOSELECT":
			t.autoselect = lazy.FromRaw[bool](a.Value)
		case "FORCED":
			t.forced = lazy.FromRaw[bool](a.Value)
		case "INSTREAM-ID":
			t.instreamID = lazy.FromRaw[string](a.Value)
		case "BIT-DEPTH":
			t.bitDepth = lazy.FromRaw[uint64](a.Value)
		case "SAMPLE-RATE":
			t.sampleRate = lazy.FromRaw[uint64](a.Value)
		case "CHARACTERISTICS":
			t.characteristics = lazy.FromRaw[string](a.Value)
		case "CHANNELS":
			t.channels = lazy.FromRaw[string](a.Value)
		}
	}
	if !haveType {
		return nil, missingAttr(name, "TYPE")
	}
	if !haveGroup {
		return nil, missingAttr(name, "GROUP-ID")
	}
	if !haveName {
		return nil, missingAttr(name, "NAME")
	}
	return t, nil
}

// NewMedia builds a rendition declaration.
func NewMedia(typ MediaType, groupID, renditionName string) *Media {
	return &Media{typ: enumKnown(typ), groupID: groupID, renditionName: renditionName}
}

func (t *Media) Name() string { return "EXT-X-MEDIA" }

// Type returns the rendition's media type.
func (t *Media) Type() EnumeratedString[MediaType] { return t.typ }

// SetType replaces the media type.
func (t *Media) SetType(v MediaType) {
	t.typ = enumKnown(v)
	t.markDirty()
}

// GroupID returns the rendition group.
func (t *Media) GroupID() string { return t.groupID }

// SetGroupID replaces the rendition group.
func (t *Media) SetGroupID(s string) {
	t.groupID = s
	t.markDirty()
}

// RenditionName returns the NAME attribute, the rendition's human-readable
// name.
func (t *Media) RenditionName() string { return t.renditionName }

// SetRenditionName replaces the rendition name.
func (t *Media) SetRenditionName(s string) {
	t.renditionName = s
	t.markDirty()
}

// URI returns the rendition's playlist URI, if declared.
func (t *Media) URI() (string, bool) { return t.uri.Get(convQuoted) }

// SetURI declares the playlist URI.
func (t *Media) SetURI(uri string) {
	t.uri.Set(uri)
	t.markDirty()
}

// UnsetURI removes the playlist URI.
func (t *Media) UnsetURI() {
	t.uri.Unset()
	t.markDirty()
}

// Language returns the primary language, if declared.
func (t *Media) Language() (string, bool) { return t.language.Get(convQuoted) }

// SetLanguage declares the primary language.
func (t *Media) SetLanguage(s string) {
	t.language.Set(s)
	t.markDirty()
}

// UnsetLanguage removes the language.
func (t *Media) UnsetLanguage() {
	t.language.Unset()
	t.markDirty()
}

// AssocLanguage returns the associated language, if declared.
func (t *Media) AssocLanguage() (string, bool) { return t.assocLanguage.Get(convQuoted) }

// SetAssocLanguage declares the associated language.
func (t *Media) SetAssocLanguage(s string) {
	t.assocLanguage.Set(s)
	t.markDirty()
}

// UnsetAssocLanguage removes the associated language.
func (t *Media) UnsetAssocLanguage() {
	t.assocLanguage.Unset()
	t.markDirty()
}

// StableRenditionID returns the stable rendition identifier, if declared.
func (t *Media) StableRenditionID() (string, bool) { return t.stableRenditionID.Get(convQuoted) }

// SetStableRenditionID declares the stable rendition identifier.
func (t *Media) SetStableRenditionID(s string) {
	t.stableRenditionID.Set(s)
	t.markDirty()
}

// UnsetStableRenditionID removes the stable rendition identifier.
func (t *Media) UnsetStableRenditionID() {
	t.stableRenditionID.Unset()
	t.markDirty()
}

// Default reports the DEFAULT attribute, if declared.
func (t *Media) Default() (bool, bool) { return t.deflt.Get(convBool) }

// SetDefault declares whether the rendition is the group default.
func (t *Media) SetDefault(v bool) {
	t.deflt.Set(v)
	t.markDirty()
}

// UnsetDefault removes the DEFAULT attribute.
func (t *Media) UnsetDefault() {
	t.deflt.Unset()
	t.markDirty()
}

// Autoselect reports the AUTOSELECT attribute, if declared.
func (t *Media) Autoselect() (bool, bool) { return t.autoselect.Get(convBool) }

// SetAutoselect declares automatic selection eligibility.
func (t *Media) SetAutoselect(v bool) {
	t.autoselect.Set(v)
	t.markDirty()
}

// UnsetAutoselect removes the AUTOSELECT attribute.
func (t *Media) UnsetAutoselect() {
	t.autoselect.Unset()
	t.markDirty()
}

// Forced reports the FORCED attribute, if declared.
func (t *Media) Forced() (bool, bool) { return t.forced.Get(convBool) }

// SetForced declares forced rendering.
func (t *Media) SetForced(v bool) {
	t.forced.Set(v)
	t.markDirty()
}

// UnsetForced removes the FORCED attribute.
func (t *Media) UnsetForced() {
	t.forced.Unset()
	t.markDirty()
}

// InstreamID returns the in-stream identifier (CC1..CC4 or SERVICEn), if
// declared.
func (t *Media) InstreamID() (string, bool) { return t.instreamID.Get(convQuoted) }

// SetInstreamID declares the in-stream identifier.
func (t *Media) SetInstreamID(s string) {
	t.instreamID.Set(s)
	t.markDirty()
}

// UnsetInstreamID removes the in-stream identifier.
func (t *Media) UnsetInstreamID() {
	t.instreamID.Unset()
	t.markDirty()
}

// BitDepth returns the audio bit depth, if declared.
func (t *Media) BitDepth() (uint64, bool) { return t.bitDepth.Get(convUint) }

// SetBitDepth declares the audio bit depth.
func (t *Media) SetBitDepth(u uint64) {
	t.bitDepth.Set(u)
	t.markDirty()
}

// UnsetBitDepth removes the bit depth.
func (t *Media) UnsetBitDepth() {
	t.bitDepth.Unset()
	t.markDirty()
}

// SampleRate returns the audio sample rate, if declared.
func (t *Media) SampleRate() (uint64, bool) { return t.sampleRate.Get(convUint) }

// SetSampleRate declares the audio sample rate.
func (t *Media) SetSampleRate(u uint64) {
	t.sampleRate.Set(u)
	t.markDirty()
}

// UnsetSampleRate removes the sample rate.
func (t *Media) UnsetSampleRate() {
	t.sampleRate.Unset()
	t.markDirty()
}

// Characteristics returns the media characteristic tags, if declared.
func (t *Media) Characteristics() (string, bool) { return t.characteristics.Get(convQuoted) }

// SetCharacteristics declares the media characteristic tags.
func (t *Media) SetCharacteristics(s string) {
	t.characteristics.Set(s)
	t.markDirty()
}

// UnsetCharacteristics removes the characteristics.
func (t *Media) UnsetCharacteristics() {
	t.characteristics.Unset()
	t.markDirty()
}

// Channels returns the channel layout, if declared.
func (t *Media) Channels() (string, bool) { return t.channels.Get(convQuoted) }

// SetChannels declares the channel layout.
func (t *Media) SetChannels(s string) {
	t.channels.Set(s)
	t.markDirty()
}

// UnsetChannels removes the channel layout.
func (t *Media) UnsetChannels() {
	t.channels.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *Media) RawAttributes() Attrs { return t.attrs }

func (t *Media) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putUnquoted("TYPE", t.typ.String())
		writeQuotedCell(w, "URI", &t.uri)
		w.putQuoted("GROUP-ID", t.groupID)
		writeQuotedCell(w, "LANGUAGE", &t.language)
		writeQuotedCell(w, "ASSOC-LANGUAGE", &t.assocLanguage)
		w.putQuoted("NAME", t.renditionName)
		writeQuotedCell(w, "STABLE-RENDITION-ID", &t.stableRenditionID)
		writeBoolCell(w, "DEFAULT", &t.deflt)
		writeBoolCell(w, "AUTOSELECT", &t.autoselect)
		writeBoolCell(w, "FORCED", &t.forced)
		writeQuotedCell(w, "INSTREAM-ID", &t.instreamID)
		writeUintCell(w, "BIT-DEPTH", &t.bitDepth)
		writeUintCell(w, "SAMPLE-RATE", &t.sampleRate)
		writeQuotedCell(w, "CHARACTERISTICS", &t.characteristics)
		writeQuotedCell(w, "CHANNELS", &t.channels)
		return w.bytes()
	})
}

// variantAttrs is the attribute set shared by EXT-X-STREAM-INF and
// EXT-X-I-FRAME-STREAM-INF, carrying the line cache so accessors and
// mutators promote into both.
type variantAttrs struct {
	cachedLine
	attrs              Attrs
	bandwidth          uint64
	haveBandwidth      bool
	averageBandwidth   lazy.Cell[uint64]
	score              lazy.Cell[float64]
	codecs             lazy.Cell[string]
	supplementalCodecs lazy.Cell[string]
	resolution         lazy.Cell[Resolution]
	hdcpLevel          lazy.Cell[EnumeratedString[HdcpLevel]]
	allowedCPC         lazy.Cell[string]
	videoRange         lazy.Cell[EnumeratedString[VideoRange]]
	reqVideoLayout     lazy.Cell[EnumeratedStringList[VideoChannelSpecifier]]
	stableVariantID    lazy.Cell[string]
	video              lazy.Cell[string]
}

// parseAttr handles one shared attribute, reporting whether it claimed it.
func (v *variantAttrs) parseAttr(tagName string, a Attr) (bool, error) {
	switch string(a.Name) {
	case "BANDWIDTH":
		u, err := reqUint(tagName, a)
		if err != nil {
			return true, err
		}
		v.bandwidth = u
		v.haveBandwidth = true
	case "AVERAGE-BANDWIDTH":
		v.averageBandwidth = lazy.FromRaw[uint64](a.Value)
	case "SCORE":
		v.score = lazy.FromRaw[float64](a.Value)
	case "CODECS":
		v.codecs = lazy.FromRaw[string](a.Value)
	case "SUPPLEMENTAL-CODECS":
		v.supplementalCodecs = lazy.FromRaw[string](a.Value)
	case "RESOLUTION":
		v.resolution = lazy.FromRaw[Resolution](a.Value)
	case "HDCP-LEVEL":
		v.hdcpLevel = lazy.FromRaw[EnumeratedString[HdcpLevel]](a.Value)
	case "ALLOWED-CPC":
		v.allowedCPC = lazy.FromRaw[string](a.Value)
	case "VIDEO-RANGE":
		v.videoRange = lazy.FromRaw[EnumeratedString[VideoRange]](a.Value)
	case "REQ-VIDEO-LAYOUT":
		v.reqVideoLayout = lazy.FromRaw[EnumeratedStringList[VideoChannelSpecifier]](a.Value)
	case "STABLE-VARIANT-ID":
		v.stableVariantID = lazy.FromRaw[string](a.Value)
	case "VIDEO":
		v.video = lazy.FromRaw[string](a.Value)
	default:
		return false, nil
	}
	return true, nil
}

func (v *variantAttrs) finish(tagName string) error {
	if !v.haveBandwidth {
		return missingAttr(tagName, "BANDWIDTH")
	}
	return nil
}

// Bandwidth returns the peak bandwidth in bits per second.
func (v *variantAttrs) Bandwidth() uint64 { return v.bandwidth }

// SetBandwidth replaces the peak bandwidth.
func (v *variantAttrs) SetBandwidth(u uint64) {
	v.bandwidth = u
	v.haveBandwidth = true
	v.markDirty()
}

// AverageBandwidth returns the average bandwidth, if declared.
func (v *variantAttrs) AverageBandwidth() (uint64, bool) { return v.averageBandwidth.Get(convUint) }

// SetAverageBandwidth declares the average bandwidth.
func (v *variantAttrs) SetAverageBandwidth(u uint64) {
	v.averageBandwidth.Set(u)
	v.markDirty()
}

// UnsetAverageBandwidth removes the average bandwidth.
func (v *variantAttrs) UnsetAverageBandwidth() {
	v.averageBandwidth.Unset()
	v.markDirty()
}

// Score returns the selection preference score, if declared.
func (v *variantAttrs) Score() (float64, bool) { return v.score.Get(convFloat) }

// SetScore declares the selection preference score.
func (v *variantAttrs) SetScore(f float64) {
	v.score.Set(f)
	v.markDirty()
}

// UnsetScore removes the score.
func (v *variantAttrs) UnsetScore() {
	v.score.Unset()
	v.markDirty()
}

// Codecs returns the codec list, if declared.
func (v *variantAttrs) Codecs() (string, bool) { return v.codecs.Get(convQuoted) }

// SetCodecs declares the codec list.
func (v *variantAttrs) SetCodecs(s string) {
	v.codecs.Set(s)
	v.markDirty()
}

// UnsetCodecs removes the codec list.
func (v *variantAttrs) UnsetCodecs() {
	v.codecs.Unset()
	v.markDirty()
}

// SupplementalCodecs returns the supplemental codec list, if declared.
func (v *variantAttrs) SupplementalCodecs() (string, bool) {
	return v.supplementalCodecs.Get(convQuoted)
}

// SetSupplementalCodecs declares the supplemental codec list.
func (v *variantAttrs) SetSupplementalCodecs(s string) {
	v.supplementalCodecs.Set(s)
	v.markDirty()
}

// UnsetSupplementalCodecs removes the supplemental codec list.
func (v *variantAttrs) UnsetSupplementalCodecs() {
	v.supplementalCodecs.Unset()
	v.markDirty()
}

// Resolution returns the pixel resolution, if declared.
func (v *variantAttrs) Resolution() (Resolution, bool) { return v.resolution.Get(convResolution) }

// SetResolution declares the pixel resolution.
func (v *variantAttrs) SetResolution(r Resolution) {
	v.resolution.Set(r)
	v.markDirty()
}

// UnsetResolution removes the resolution.
func (v *variantAttrs) UnsetResolution() {
	v.resolution.Unset()
	v.markDirty()
}

// HdcpLevel returns the HDCP level, if declared.
func (v *variantAttrs) HdcpLevel() (EnumeratedString[HdcpLevel], bool) {
	return v.hdcpLevel.Get(convHdcpLevel)
}

// SetHdcpLevel declares the HDCP level.
func (v *variantAttrs) SetHdcpLevel(l HdcpLevel) {
	v.hdcpLevel.Set(enumKnown(l))
	v.markDirty()
}

// UnsetHdcpLevel removes the HDCP level.
func (v *variantAttrs) UnsetHdcpLevel() {
	v.hdcpLevel.Unset()
	v.markDirty()
}

// AllowedCPC returns the content protection configuration, if declared.
func (v *variantAttrs) AllowedCPC() (string, bool) { return v.allowedCPC.Get(convQuoted) }

// SetAllowedCPC declares the content protection configuration.
func (v *variantAttrs) SetAllowedCPC(s string) {
	v.allowedCPC.Set(s)
	v.markDirty()
}

// UnsetAllowedCPC removes the content protection configuration.
func (v *variantAttrs) UnsetAllowedCPC() {
	v.allowedCPC.Unset()
	v.markDirty()
}

// VideoRange returns the dynamic range, if declared.
func (v *variantAttrs) VideoRange() (EnumeratedString[VideoRange], bool) {
	return v.videoRange.Get(convVideoRange)
}

// SetVideoRange declares the dynamic range.
func (v *variantAttrs) SetVideoRange(r VideoRange) {
	v.videoRange.Set(enumKnown(r))
	v.markDirty()
}

// UnsetVideoRange removes the dynamic range.
func (v *variantAttrs) UnsetVideoRange() {
	v.videoRange.Unset()
	v.markDirty()
}

// ReqVideoLayout returns the required video layout list, if declared.
func (v *variantAttrs) ReqVideoLayout() (EnumeratedStringList[VideoChannelSpecifier], bool) {
	return v.reqVideoLayout.Get(convVideoLayout)
}

// SetReqVideoLayout declares the required video layout list.
func (v *variantAttrs) SetReqVideoLayout(l EnumeratedStringList[VideoChannelSpecifier]) {
	v.reqVideoLayout.Set(l)
	v.markDirty()
}

// UnsetReqVideoLayout removes the required video layout list.
func (v *variantAttrs) UnsetReqVideoLayout() {
	v.reqVideoLayout.Unset()
	v.markDirty()
}

// StableVariantID returns the stable variant identifier, if declared.
func (v *variantAttrs) StableVariantID() (string, bool) { return v.stableVariantID.Get(convQuoted) }

// SetStableVariantID declares the stable variant identifier.
func (v *variantAttrs) SetStableVariantID(s string) {
	v.stableVariantID.Set(s)
	v.markDirty()
}

// UnsetStableVariantID removes the stable variant identifier.
func (v *variantAttrs) UnsetStableVariantID() {
	v.stableVariantID.Unset()
	v.markDirty()
}

// Video returns the video rendition group, if declared.
func (v *variantAttrs) Video() (string, bool) { return v.video.Get(convQuoted) }

// SetVideo declares the video rendition group.
func (v *variantAttrs) SetVideo(s string) {
	v.video.Set(s)
	v.markDirty()
}

// UnsetVideo removes the video rendition group.
func (v *variantAttrs) UnsetVideo() {
	v.video.Unset()
	v.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (v *variantAttrs) RawAttributes() Attrs { return v.attrs }

// StreamInf is #EXT-X-STREAM-INF, a variant stream; the URI is the line
// that follows it.
type StreamInf struct {
	variantAttrs
	frameRate      lazy.Cell[float64]
	audio          lazy.Cell[string]
	subtitles      lazy.Cell[string]
	closedCaptions lazy.Cell[string]
}

func parseStreamInf(value Value, raw []byte) (*StreamInf, error) {
	const name = "EXT-X-STREAM-INF"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &StreamInf{}
	t.cachedLine = retained(raw)
	t.attrs = attrs
	for _, a := range attrs {
		handled, err := t.parseAttr(name, a)
		if err != nil {
			return nil, err
		}
		if handled {
			continue
		}
		switch string(a.Name) {
		case "FRAME-RATE":
			t.frameRate = lazy.FromRaw[float64](a.Value)
		case "AUDIO":
			t.audio = lazy.FromRaw[string](a.Value)
		case "SUBTITLES":
			t.subtitles = lazy.FromRaw[string](a.Value)
		case "CLOSED-CAPTIONS":
			t.closedCaptions = lazy.FromRaw[string](a.Value)
		}
	}
	if err := t.finish(name); err != nil {
		return nil, err
	}
	return t, nil
}

// NewStreamInf builds a variant stream declaration.
func NewStreamInf(bandwidth uint64) *StreamInf {
	t := &StreamInf{}
	t.bandwidth = bandwidth
	t.haveBandwidth = true
	return t
}

func (t *StreamInf) Name() string { return "EXT-X-STREAM-INF" }

// FrameRate returns the maximum frame rate, if declared.
func (t *StreamInf) FrameRate() (float64, bool) { return t.frameRate.Get(convFloat) }

// SetFrameRate declares the maximum frame rate.
func (t *StreamInf) SetFrameRate(f float64) {
	t.frameRate.Set(f)
	t.markDirty()
}

// UnsetFrameRate removes the frame rate.
func (t *StreamInf) UnsetFrameRate() {
	t.frameRate.Unset()
	t.markDirty()
}

// Audio returns the audio rendition group, if declared.
func (t *StreamInf) Audio() (string, bool) { return t.audio.Get(convQuoted) }

// SetAudio declares the audio rendition group.
func (t *StreamInf) SetAudio(s string) {
	t.audio.Set(s)
	t.markDirty()
}

// UnsetAudio removes the audio rendition group.
func (t *StreamInf) UnsetAudio() {
	t.audio.Unset()
	t.markDirty()
}

// Subtitles returns the subtitle rendition group, if declared.
func (t *StreamInf) Subtitles() (string, bool) { return t.subtitles.Get(convQuoted) }

// SetSubtitles declares the subtitle rendition group.
func (t *StreamInf) SetSubtitles(s string) {
	t.subtitles.Set(s)
	t.markDirty()
}

// UnsetSubtitles removes the subtitle rendition group.
func (t *StreamInf) UnsetSubtitles() {
	t.subtitles.Unset()
	t.markDirty()
}

// ClosedCaptions returns the closed captions group, or the literal NONE
// sentinel, if declared.
func (t *StreamInf) ClosedCaptions() (string, bool) { return t.closedCaptions.Get(convAnyString) }

// SetClosedCaptions declares the closed captions group. The value NONE is
// written as the bare sentinel rather than a group name.
func (t *StreamInf) SetClosedCaptions(s string) {
	t.closedCaptions.Set(s)
	t.markDirty()
}

// UnsetClosedCaptions removes the closed captions attribute.
func (t *StreamInf) UnsetClosedCaptions() {
	t.closedCaptions.Unset()
	t.markDirty()
}

func (t *StreamInf) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putUint("BANDWIDTH", t.bandwidth)
		writeUintCell(w, "AVERAGE-BANDWIDTH", &t.averageBandwidth)
		writeFloatCell(w, "SCORE", &t.score)
		writeQuotedCell(w, "CODECS", &t.codecs)
		writeQuotedCell(w, "SUPPLEMENTAL-CODECS", &t.supplementalCodecs)
		writeResolutionCell(w, "RESOLUTION", &t.resolution)
		writeFloatCell(w, "FRAME-RATE", &t.frameRate)
		writeEnumCell(w, "HDCP-LEVEL", &t.hdcpLevel)
		writeQuotedCell(w, "ALLOWED-CPC", &t.allowedCPC)
		writeEnumCell(w, "VIDEO-RANGE", &t.videoRange)
		writeListCell(w, "REQ-VIDEO-LAYOUT", &t.reqVideoLayout)
		writeQuotedCell(w, "STABLE-VARIANT-ID", &t.stableVariantID)
		writeQuotedCell(w, "AUDIO", &t.audio)
		writeQuotedCell(w, "VIDEO", &t.video)
		writeQuotedCell(w, "SUBTITLES", &t.subtitles)
		writeCell(w, "CLOSED-CAPTIONS", &t.closedCaptions, func(w *attrLine, name string, s string) {
			if s == "NONE" {
				w.putUnquoted(name, s)
			} else {
				w.putQuoted(name, s)
			}
		})
		return w.bytes()
	})
}

// IFrameStreamInf is #EXT-X-I-FRAME-STREAM-INF, a variant stream of
// I-frame-only segments, with the URI carried as an attribute.
type IFrameStreamInf struct {
	variantAttrs
	uri string
}

func parseIFrameStreamInf(value Value, raw []byte) (*IFrameStreamInf, error) {
	const name = "EXT-X-I-FRAME-STREAM-INF"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &IFrameStreamInf{}
	t.cachedLine = retained(raw)
	t.attrs = attrs
	haveURI := false
	for _, a := range attrs {
		handled, err := t.parseAttr(name, a)
		if err != nil {
			return nil, err
		}
		if handled {
			continue
		}
		if string(a.Name) == "URI" {
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.uri = s
			haveURI = true
		}
	}
	if err := t.finish(name); err != nil {
		return nil, err
	}
	if !haveURI {
		return nil, missingAttr(name, "URI")
	}
	return t, nil
}

// NewIFrameStreamInf builds an I-frame variant declaration.
func NewIFrameStreamInf(uri string, bandwidth uint64) *IFrameStreamInf {
	t := &IFrameStreamInf{uri: uri}
	t.bandwidth = bandwidth
	t.haveBandwidth = true
	return t
}

func (t *IFrameStreamInf) Name() string { return "EXT-X-I-FRAME-STREAM-INF" }

// URI returns the I-frame playlist URI.
func (t *IFrameStreamInf) URI() string { return t.uri }

// SetURI replaces the URI.
func (t *IFrameStreamInf) SetURI(uri string) {
	t.uri = uri
	t.markDirty()
}

func (t *IFrameStreamInf) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putUint("BANDWIDTH", t.bandwidth)
		writeUintCell(w, "AVERAGE-BANDWIDTH", &t.averageBandwidth)
		writeFloatCell(w, "SCORE", &t.score)
		writeQuotedCell(w, "CODECS", &t.codecs)
		writeQuotedCell(w, "SUPPLEMENTAL-CODECS", &t.supplementalCodecs)
		writeResolutionCell(w, "RESOLUTION", &t.resolution)
		writeEnumCell(w, "HDCP-LEVEL", &t.hdcpLevel)
		writeQuotedCell(w, "ALLOWED-CPC", &t.allowedCPC)
		writeEnumCell(w, "VIDEO-RANGE", &t.videoRange)
		writeListCell(w, "REQ-VIDEO-LAYOUT", &t.reqVideoLayout)
		writeQuotedCell(w, "STABLE-VARIANT-ID", &t.stableVariantID)
		writeQuotedCell(w, "VIDEO", &t.video)
		w.putQuoted("URI", t.uri)
		return w.bytes()
	})
}

// SessionData is #EXT-X-SESSION-DATA, arbitrary session metadata carried
// in a master playlist.
type SessionData struct {
	cachedLine
	attrs    Attrs
	dataID   string
	value    lazy.Cell[string]
	uri      lazy.Cell[string]
	format   lazy.Cell[string]
	language lazy.Cell[string]
}

func parseSessionData(value Value, raw []byte) (*SessionData, error) {
	const name = "EXT-X-SESSION-DATA"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &SessionData{cachedLine: retained(raw), attrs: attrs}
	haveID := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "DATA-ID":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.dataID = s
			haveID = true
		case "VALUE":
			t.value = lazy.FromRaw[string](a.Value)
		case "URI":
			t.uri = lazy.FromRaw[string](a.Value)
		case "FORMAT":
			t.format = lazy.FromRaw[string](a.Value)
		case "LANGUAGE":
			t.language = lazy.FromRaw[string](a.Value)
		}
	}
	if !haveID {
		return nil, missingAttr(name, "DATA-ID")
	}
	return t, nil
}

// NewSessionData builds a session data tag.
func NewSessionData(dataID string) *SessionData {
	return &SessionData{dataID: dataID}
}

func (t *SessionData) Name() string { return "EXT-X-SESSION-DATA" }

// DataID returns the reverse-DNS data identifier.
func (t *SessionData) DataID() string { return t.dataID }

// SetDataID replaces the data identifier.
func (t *SessionData) SetDataID(s string) {
	t.dataID = s
	t.markDirty()
}

// Value returns the inline value, if declared.
func (t *SessionData) Value() (string, bool) { return t.value.Get(convQuoted) }

// SetValue declares the inline value.
func (t *SessionData) SetValue(s string) {
	t.value.Set(s)
	t.markDirty()
}

// UnsetValue removes the inline value.
func (t *SessionData) UnsetValue() {
	t.value.Unset()
	t.markDirty()
}

// URI returns the external value URI, if declared.
func (t *SessionData) URI() (string, bool) { return t.uri.Get(convQuoted) }

// SetURI declares the external value URI.
func (t *SessionData) SetURI(uri string) {
	t.uri.Set(uri)
	t.markDirty()
}

// UnsetURI removes the external value URI.
func (t *SessionData) UnsetURI() {
	t.uri.Unset()
	t.markDirty()
}

// Format returns the value format (JSON or RAW), if declared.
func (t *SessionData) Format() (string, bool) { return t.format.Get(convUnquoted) }

// SetFormat declares the value format.
func (t *SessionData) SetFormat(s string) {
	t.format.Set(s)
	t.markDirty()
}

// UnsetFormat removes the value format.
func (t *SessionData) UnsetFormat() {
	t.format.Unset()
	t.markDirty()
}

// Language returns the value's language, if declared.
func (t *SessionData) Language() (string, bool) { return t.language.Get(convQuoted) }

// SetLanguage declares the value's language.
func (t *SessionData) SetLanguage(s string) {
	t.language.Set(s)
	t.markDirty()
}

// UnsetLanguage removes the language.
func (t *SessionData) UnsetLanguage() {
	t.language.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *SessionData) RawAttributes() Attrs { return t.attrs }

func (t *SessionData) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putQuoted("DATA-ID", t.dataID)
		writeQuotedCell(w, "VALUE", &t.value)
		writeQuotedCell(w, "URI", &t.uri)
		writeUnquotedCell(w, "FORMAT", &t.format)
		writeQuotedCell(w, "LANGUAGE", &t.language)
		return w.bytes()
	})
}

// SessionKey is #EXT-X-SESSION-KEY, a key preload declaration in a master
// playlist. Unlike EXT-X-KEY its method can never be NONE.
type SessionKey struct {
	keyAttrs
}

func parseSessionKey(value Value, raw []byte) (*SessionKey, error) {
	const name = "EXT-X-SESSION-KEY"
	k, err := parseKeyAttrs(name, value)
	if err != nil {
		return nil, err
	}
	if k.method.Is(MethodNone) {
		return nil, attrErr(name, "METHOD", "must not be NONE")
	}
	k.cachedLine = retained(raw)
	return &SessionKey{keyAttrs: k}, nil
}

// NewSessionKey builds a session key tag.
func NewSessionKey(method KeyMethod, uri string) *SessionKey {
	t := &SessionKey{keyAttrs: keyAttrs{method: enumKnown(method)}}
	t.uri.Set(uri)
	return t
}

func (t *SessionKey) Name() string { return "EXT-X-SESSION-KEY" }

func (t *SessionKey) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		t.writeKeyAttrs(w)
		return w.bytes()
	})
}

// ContentSteering is #EXT-X-CONTENT-STEERING, pointing at the steering
// manifest of a master playlist.
type ContentSteering struct {
	cachedLine
	attrs     Attrs
	serverURI string
	pathwayID lazy.Cell[string]
}

func parseContentSteering(value Value, raw []byte) (*ContentSteering, error) {
	const name = "EXT-X-CONTENT-STEERING"
	attrs, err := wantAttrList(name, value)
	if err != nil {
		return nil, err
	}
	t := &ContentSteering{cachedLine: retained(raw), attrs: attrs}
	haveURI := false
	for _, a := range attrs {
		switch string(a.Name) {
		case "SERVER-URI":
			s, err := reqQuoted(name, a)
			if err != nil {
				return nil, err
			}
			t.serverURI = s
			haveURI = true
		case "PATHWAY-ID":
			t.pathwayID = lazy.FromRaw[string](a.Value)
		}
	}
	if !haveURI {
		return nil, missingAttr(name, "SERVER-URI")
	}
	return t, nil
}

// NewContentSteering builds a content steering tag.
func NewContentSteering(serverURI string) *ContentSteering {
	return &ContentSteering{serverURI: serverURI}
}

func (t *ContentSteering) Name() string { return "EXT-X-CONTENT-STEERING" }

// ServerURI returns the steering manifest URI.
func (t *ContentSteering) ServerURI() string { return t.serverURI }

// SetServerURI replaces the steering manifest URI.
func (t *ContentSteering) SetServerURI(uri string) {
	t.serverURI = uri
	t.markDirty()
}

// PathwayID returns the initial pathway, if declared.
func (t *ContentSteering) PathwayID() (string, bool) { return t.pathwayID.Get(convQuoted) }

// SetPathwayID declares the initial pathway.
func (t *ContentSteering) SetPathwayID(s string) {
	t.pathwayID.Set(s)
	t.markDirty()
}

// UnsetPathwayID removes the initial pathway.
func (t *ContentSteering) UnsetPathwayID() {
	t.pathwayID.Unset()
	t.markDirty()
}

// RawAttributes returns the scanned attribute list in source order.
func (t *ContentSteering) RawAttributes() Attrs { return t.attrs }

func (t *ContentSteering) Line() []byte {
	return t.render(func() []byte {
		w := newAttrLine(t.Name())
		w.putQuoted("SERVER-URI", t.serverURI)
		writeQuotedCell(w, "PATHWAY-ID", &t.pathwayID)
		return w.bytes()
	})
}
