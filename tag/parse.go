package tag

import "bytes"

// CustomParser extends the tag table from the caller's side. Parsers are
// consulted in order, before the built-in names, so a caller can both add
// private tags and override a built-in. Return handled false to pass the
// tag on; an error aborts the parse of that line.
//
// name arrives without the leading '#'. raw is the complete source line,
// terminator excluded, for implementations that retain it.
type CustomParser func(name string, value Value, raw []byte) (t Tag, handled bool, err error)

// Parse dispatches one scanned tag line to its record type.
//
// Unrecognized names are not an error: they come back as *Unknown and
// round-trip verbatim. A recognized name whose value does not fit the
// tag's shape is an error.
func Parse(name []byte, value Value, raw []byte, custom []CustomParser) (Tag, error) {
	if len(custom) > 0 {
		n := string(name)
		for _, p := range custom {
			t, handled, err := p(n, value, raw)
			if err != nil {
				return nil, err
			}
			if handled {
				return t, nil
			}
		}
	}

	switch string(name) {
	case "EXTM3U":
		return parseM3u(value, raw)
	case "EXT-X-VERSION":
		return parseVersion(value, raw)
	case "EXTINF":
		return parseInf(value, raw)
	case "EXT-X-BYTERANGE":
		return parseByterange(value, raw)
	case "EXT-X-DISCONTINUITY":
		return parseDiscontinuity(value, raw)
	case "EXT-X-KEY":
		return parseKey(value, raw)
	case "EXT-X-MAP":
		return parseMap(value, raw)
	case "EXT-X-PROGRAM-DATE-TIME":
		return parseProgramDateTime(value, raw)
	case "EXT-X-GAP":
		return parseGap(value, raw)
	case "EXT-X-BITRATE":
		return parseBitrate(value, raw)
	case "EXT-X-PART":
		return parsePart(value, raw)
	case "EXT-X-TARGETDURATION":
		return parseTargetduration(value, raw)
	case "EXT-X-MEDIA-SEQUENCE":
		return parseMediaSequence(value, raw)
	case "EXT-X-DISCONTINUITY-SEQUENCE":
		return parseDiscontinuitySequence(value, raw)
	case "EXT-X-ENDLIST":
		return parseEndlist(value, raw)
	case "EXT-X-PLAYLIST-TYPE":
		return parsePlaylistType(value, raw)
	case "EXT-X-I-FRAMES-ONLY":
		return parseIFramesOnly(value, raw)
	case "EXT-X-PART-INF":
		return parsePartInf(value, raw)
	case "EXT-X-SERVER-CONTROL":
		return parseServerControl(value, raw)
	case "EXT-X-MEDIA":
		return parseMedia(value, raw)
	case "EXT-X-STREAM-INF":
		return parseStreamInf(value, raw)
	case "EXT-X-I-FRAME-STREAM-INF":
		return parseIFrameStreamInf(value, raw)
	case "EXT-X-SESSION-DATA":
		return parseSessionData(value, raw)
	case "EXT-X-SESSION-KEY":
		return parseSessionKey(value, raw)
	case "EXT-X-CONTENT-STEERING":
		return parseContentSteering(value, raw)
	case "EXT-X-INDEPENDENT-SEGMENTS":
		return parseIndependentSegments(value, raw)
	case "EXT-X-START":
		return parseStart(value, raw)
	case "EXT-X-DEFINE":
		return parseDefine(value, raw)
	case "EXT-X-DATERANGE":
		return parseDaterange(value, raw)
	case "EXT-X-SKIP":
		return parseSkip(value, raw)
	case "EXT-X-PRELOAD-HINT":
		return parsePreloadHint(value, raw)
	case "EXT-X-RENDITION-REPORT":
		return parseRenditionReport(value, raw)
	}

	return newUnknown(name, value, raw), nil
}

// Unknown is any tag whose name no parser claimed. It is a pure
// pass-through: the line survives exactly as read and nothing about it can
// be mutated.
type Unknown struct {
	cachedLine
	name  string
	value []byte
}

func newUnknown(name []byte, value Value, raw []byte) *Unknown {
	t := &Unknown{cachedLine: retained(raw), name: string(name)}
	if b, ok := value.Bytes(); ok {
		t.value = b
	} else if i := bytes.IndexByte(raw, ':'); i >= 0 {
		// The value span scanned as some richer shape; the tag is opaque
		// anyway, so recover the span from the line itself.
		t.value = raw[i+1:]
	}
	return t
}

// NewUnknown builds a pass-through tag from scratch. value may be empty
// for a tag with no payload.
func NewUnknown(name, value string) *Unknown {
	t := &Unknown{name: name}
	if value != "" {
		t.value = []byte(value)
	}
	return t
}

func (t *Unknown) Name() string { return t.name }

// Value returns the raw value span following the colon, if any.
func (t *Unknown) Value() []byte { return t.value }

func (t *Unknown) Line() []byte {
	return t.render(func() []byte {
		b := make([]byte, 0, 1+len(t.name)+1+len(t.value))
		b = append(b, '#')
		b = append(b, t.name...)
		if t.value != nil {
			b = append(b, ':')
			b = append(b, t.value...)
		}
		return b
	})
}
