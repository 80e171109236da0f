package tag

import "strings"

// EnumeratedString is a token from a closed set that must survive values
// the set does not cover yet. Parsing never rejects a token: values outside
// the set come back with Known reporting false and the literal text intact,
// and they re-render exactly as read.
type EnumeratedString[T ~string] struct {
	text  string
	known bool
}

// Known returns the typed token when the text matched the closed set.
func (e EnumeratedString[T]) Known() (T, bool) {
	if !e.known {
		return "", false
	}
	return T(e.text), true
}

// IsKnown reports whether the text matched the closed set.
func (e EnumeratedString[T]) IsKnown() bool {
	return e.known
}

// Is reports whether the value is the given known token.
func (e EnumeratedString[T]) Is(v T) bool {
	return e.known && e.text == string(v)
}

// String returns the literal token text, known or not.
func (e EnumeratedString[T]) String() string {
	return e.text
}

// enumOf classifies text against the closed set.
func enumOf[T ~string](text string, all []T) EnumeratedString[T] {
	for _, v := range all {
		if text == string(v) {
			return EnumeratedString[T]{text: text, known: true}
		}
	}
	return EnumeratedString[T]{text: text}
}

// enumKnown wraps a caller-supplied token. Setters use it: a token the
// caller chose is taken at its word rather than checked against the set.
func enumKnown[T ~string](v T) EnumeratedString[T] {
	return EnumeratedString[T]{text: string(v), known: true}
}

// enumConv builds the cell conversion for an unquoted enumerated attribute.
func enumConv[T ~string](all []T) func(AttrValue) (EnumeratedString[T], bool) {
	return func(v AttrValue) (EnumeratedString[T], bool) {
		b, ok := v.Unquoted()
		if !ok {
			return EnumeratedString[T]{}, false
		}
		return enumOf(string(b), all), true
	}
}

// EnumeratedStringList is a comma-separated list of enumerated strings,
// held as its literal joined text. Mutations splice the text, so items the
// caller never touched keep their exact bytes, unknown tokens included.
type EnumeratedStringList[T ~string] struct {
	text string
	conv func(string) EnumeratedString[T]
}

// NewEnumeratedStringList builds a list from known tokens.
func NewEnumeratedStringList[T ~string](items ...T) EnumeratedStringList[T] {
	var b strings.Builder
	for i, v := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(v))
	}
	return EnumeratedStringList[T]{text: b.String()}
}

// listConv builds the cell conversion for a quoted enumerated-string-list
// attribute, classifying items against the closed set on iteration.
func listConv[T ~string](all []T) func(AttrValue) (EnumeratedStringList[T], bool) {
	return func(v AttrValue) (EnumeratedStringList[T], bool) {
		b, ok := v.Quoted()
		if !ok {
			return EnumeratedStringList[T]{}, false
		}
		return EnumeratedStringList[T]{
			text: string(b),
			conv: func(s string) EnumeratedString[T] { return enumOf(s, all) },
		}, true
	}
}

// Items splits the literal text into its enumerated strings. An empty list
// has no items.
func (l EnumeratedStringList[T]) Items() []EnumeratedString[T] {
	if l.text == "" {
		return nil
	}
	parts := strings.Split(l.text, ",")
	items := make([]EnumeratedString[T], len(parts))
	for i, p := range parts {
		if l.conv != nil {
			items[i] = l.conv(p)
		} else {
			items[i] = EnumeratedString[T]{text: p, known: true}
		}
	}
	return items
}

// Contains reports whether the token appears in the list.
func (l EnumeratedStringList[T]) Contains(v T) bool {
	return l.index(string(v)) >= 0
}

// Add appends the token to the end of the list text.
func (l *EnumeratedStringList[T]) Add(v T) {
	if l.text == "" {
		l.text = string(v)
		return
	}
	l.text += "," + string(v)
}

// Remove splices the first occurrence of the token out of the list text,
// leaving every other item's bytes untouched. It reports whether the token
// was found.
func (l *EnumeratedStringList[T]) Remove(v T) bool {
	i := l.index(string(v))
	if i < 0 {
		return false
	}
	end := i + len(v)
	switch {
	case i == 0 && end == len(l.text):
		l.text = ""
	case end < len(l.text):
		// Not the last item: take the following comma with it.
		l.text = l.text[:i] + l.text[end+1:]
	default:
		// Last item: take the preceding comma.
		l.text = l.text[:i-1]
	}
	return true
}

// String returns the literal comma-joined text.
func (l EnumeratedStringList[T]) String() string {
	return l.text
}

// index locates s as a whole comma-delimited item and returns its byte
// offset in the text, or -1.
func (l EnumeratedStringList[T]) index(s string) int {
	off := 0
	rest := l.text
	for rest != "" {
		item := rest
		next := -1
		if c := strings.IndexByte(rest, ','); c >= 0 {
			item = rest[:c]
			next = c + 1
		}
		if item == s {
			return off
		}
		if next < 0 {
			break
		}
		off += next
		rest = rest[next:]
	}
	return -1
}

// PlaylistTypeValue is the value of EXT-X-PLAYLIST-TYPE.
type PlaylistTypeValue string

const (
	PlaylistTypeEvent PlaylistTypeValue = "EVENT"
	PlaylistTypeVod   PlaylistTypeValue = "VOD"
)

var playlistTypeValues = []PlaylistTypeValue{PlaylistTypeEvent, PlaylistTypeVod}

// KeyMethod is the METHOD of EXT-X-KEY and EXT-X-SESSION-KEY.
type KeyMethod string

const (
	MethodNone         KeyMethod = "NONE"
	MethodAES128       KeyMethod = "AES-128"
	MethodSampleAES    KeyMethod = "SAMPLE-AES"
	MethodSampleAESCTR KeyMethod = "SAMPLE-AES-CTR"
)

var keyMethods = []KeyMethod{MethodNone, MethodAES128, MethodSampleAES, MethodSampleAESCTR}

// MediaType is the TYPE of EXT-X-MEDIA.
type MediaType string

const (
	MediaTypeAudio          MediaType = "AUDIO"
	MediaTypeVideo          MediaType = "VIDEO"
	MediaTypeSubtitles      MediaType = "SUBTITLES"
	MediaTypeClosedCaptions MediaType = "CLOSED-CAPTIONS"
)

var mediaTypes = []MediaType{MediaTypeAudio, MediaTypeVideo, MediaTypeSubtitles, MediaTypeClosedCaptions}

// HdcpLevel is the HDCP-LEVEL of variant streams.
type HdcpLevel string

const (
	HdcpLevelNone  HdcpLevel = "NONE"
	HdcpLevelType0 HdcpLevel = "TYPE-0"
	HdcpLevelType1 HdcpLevel = "TYPE-1"
)

var hdcpLevels = []HdcpLevel{HdcpLevelNone, HdcpLevelType0, HdcpLevelType1}

// VideoRange is the VIDEO-RANGE of variant streams.
type VideoRange string

const (
	VideoRangeSDR VideoRange = "SDR"
	VideoRangeHLG VideoRange = "HLG"
	VideoRangePQ  VideoRange = "PQ"
)

var videoRanges = []VideoRange{VideoRangeSDR, VideoRangeHLG, VideoRangePQ}

// PreloadHintType is the TYPE of EXT-X-PRELOAD-HINT.
type PreloadHintType string

const (
	PreloadHintPart PreloadHintType = "PART"
	PreloadHintMap  PreloadHintType = "MAP"
)

var preloadHintTypes = []PreloadHintType{PreloadHintPart, PreloadHintMap}

// Cue is one token of the EXT-X-DATERANGE CUE list.
type Cue string

const (
	CuePre  Cue = "PRE"
	CuePost Cue = "POST"
	CueOnce Cue = "ONCE"
)

var cues = []Cue{CuePre, CuePost, CueOnce}

// VideoChannelSpecifier is one token of the REQ-VIDEO-LAYOUT list.
type VideoChannelSpecifier string

const (
	ChannelStereo VideoChannelSpecifier = "CH-STEREO"
	ChannelMono   VideoChannelSpecifier = "CH-MONO"
)

var videoChannelSpecifiers = []VideoChannelSpecifier{ChannelStereo, ChannelMono}

// Cell conversions for the enumerated attributes.
var (
	convHdcpLevel   = enumConv(hdcpLevels)
	convVideoRange  = enumConv(videoRanges)
	convCueList     = listConv(cues)
	convVideoLayout = listConv(videoChannelSpecifiers)
)
