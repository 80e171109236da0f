package tag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// parseLine splits a raw tag line the way the playlist reader does and
// hands it to Parse.
func parseLine(tb testing.TB, line string) Tag {
	tb.Helper()
	tag, err := tryParseLine(line)
	if err != nil {
		tb.Fatalf("parse %q: %v", line, err)
	}
	return tag
}

func tryParseLine(line string) (Tag, error) {
	raw := []byte(line)
	rest := raw[1:]
	name := rest
	value := EmptyValue()
	if i := bytes.IndexByte(rest, ':'); i >= 0 {
		name = rest[:i]
		v, _, err := ParseValue(rest[i+1:])
		if err != nil {
			return nil, err
		}
		value = v
	}
	return Parse(name, value, raw, nil)
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"#EXTM3U", "*tag.M3u"},
		{"#EXT-X-VERSION:7", "*tag.Version"},
		{"#EXTINF:6.006,Segment one", "*tag.Inf"},
		{"#EXT-X-BYTERANGE:1024@512", "*tag.Byterange"},
		{"#EXT-X-DISCONTINUITY", "*tag.Discontinuity"},
		{"#EXT-X-KEY:METHOD=AES-128,URI=\"key.bin\"", "*tag.Key"},
		{"#EXT-X-MAP:URI=\"init.mp4\"", "*tag.Map"},
		{"#EXT-X-PROGRAM-DATE-TIME:2010-02-19T14:54:23.031+08:00", "*tag.ProgramDateTime"},
		{"#EXT-X-GAP", "*tag.Gap"},
		{"#EXT-X-BITRATE:8000", "*tag.Bitrate"},
		{"#EXT-X-PART:DURATION=0.334,URI=\"part.1.mp4\"", "*tag.Part"},
		{"#EXT-X-TARGETDURATION:6", "*tag.Targetduration"},
		{"#EXT-X-MEDIA-SEQUENCE:2680", "*tag.MediaSequence"},
		{"#EXT-X-DISCONTINUITY-SEQUENCE:1", "*tag.DiscontinuitySequence"},
		{"#EXT-X-ENDLIST", "*tag.Endlist"},
		{"#EXT-X-PLAYLIST-TYPE:VOD", "*tag.PlaylistType"},
		{"#EXT-X-I-FRAMES-ONLY", "*tag.IFramesOnly"},
		{"#EXT-X-PART-INF:PART-TARGET=0.33334", "*tag.PartInf"},
		{"#EXT-X-SERVER-CONTROL:CAN-BLOCK-RELOAD=YES", "*tag.ServerControl"},
		{"#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"aud1\",NAME=\"English\"", "*tag.Media"},
		{"#EXT-X-STREAM-INF:BANDWIDTH=1280000", "*tag.StreamInf"},
		{"#EXT-X-I-FRAME-STREAM-INF:BANDWIDTH=86000,URI=\"iframe.m3u8\"", "*tag.IFrameStreamInf"},
		{"#EXT-X-SESSION-DATA:DATA-ID=\"com.example.title\",VALUE=\"My Title\"", "*tag.SessionData"},
		{"#EXT-X-SESSION-KEY:METHOD=AES-128,URI=\"key.bin\"", "*tag.SessionKey"},
		{"#EXT-X-CONTENT-STEERING:SERVER-URI=\"steering.json\"", "*tag.ContentSteering"},
		{"#EXT-X-INDEPENDENT-SEGMENTS", "*tag.IndependentSegments"},
		{"#EXT-X-START:TIME-OFFSET=-28.5", "*tag.Start"},
		{"#EXT-X-DEFINE:NAME=\"region\",VALUE=\"us-east\"", "*tag.Define"},
		{"#EXT-X-DATERANGE:ID=\"splice-6FFFFFF0\",START-DATE=\"2014-03-05T11:15:00Z\"", "*tag.Daterange"},
		{"#EXT-X-SKIP:SKIPPED-SEGMENTS=10", "*tag.Skip"},
		{"#EXT-X-PRELOAD-HINT:TYPE=PART,URI=\"part.2.mp4\"", "*tag.PreloadHint"},
		{"#EXT-X-RENDITION-REPORT:URI=\"low.m3u8\",LAST-MSN=273", "*tag.RenditionReport"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tag := parseLine(t, tt.line)
			if got := fmt.Sprintf("%T", tag); got != tt.want {
				t.Fatalf("parse %q = %s, want %s", tt.line, got, tt.want)
			}
			wantName := tt.line[1:]
			if i := bytes.IndexByte([]byte(wantName), ':'); i >= 0 {
				wantName = wantName[:i]
			}
			if tag.Name() != wantName {
				t.Errorf("Name() = %q, want %q", tag.Name(), wantName)
			}
			if got := string(tag.Line()); got != tt.line {
				t.Errorf("untouched Line() = %q, want the source line %q", got, tt.line)
			}
		})
	}
}

func TestParseUnknownName(t *testing.T) {
	tests := []struct {
		line      string
		wantName  string
		wantValue string
	}{
		{"#EXT-X-CUSTOM-MARKER", "EXT-X-CUSTOM-MARKER", ""},
		{"#EXT-X-CUSTOM:opaque payload 123", "EXT-X-CUSTOM", "opaque payload 123"},
		{"#EXT-X-CUSTOM-ATTRS:A=1,B=\"x\"", "EXT-X-CUSTOM-ATTRS", "A=1,B=\"x\""},
		{"#EXT-OATCLS-SCTE35:/DA0AAAA", "EXT-OATCLS-SCTE35", "/DA0AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tag := parseLine(t, tt.line)
			u, ok := tag.(*Unknown)
			if !ok {
				t.Fatalf("parse %q = %T, want *tag.Unknown", tt.line, tag)
			}
			if u.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", u.Name(), tt.wantName)
			}
			if got := string(u.Value()); got != tt.wantValue {
				t.Errorf("Value() = %q, want %q", got, tt.wantValue)
			}
			if got := string(u.Line()); got != tt.line {
				t.Errorf("Line() = %q, want %q", got, tt.line)
			}
		})
	}
}

func TestNewUnknown(t *testing.T) {
	u := NewUnknown("X-COM-EXAMPLE-BEACON", "fired")
	if got := string(u.Line()); got != "#X-COM-EXAMPLE-BEACON:fired" {
		t.Errorf("Line() = %q, want %q", got, "#X-COM-EXAMPLE-BEACON:fired")
	}

	marker := NewUnknown("X-COM-EXAMPLE-MARKER", "")
	if got := string(marker.Line()); got != "#X-COM-EXAMPLE-MARKER" {
		t.Errorf("marker Line() = %q, want %q", got, "#X-COM-EXAMPLE-MARKER")
	}
}

func TestCustomParserClaimsPrivateTag(t *testing.T) {
	want := NewUnknown("EXT-X-ACME", "handled")
	calls := 0
	custom := []CustomParser{
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			calls++
			if name != "EXT-X-ACME" {
				return nil, false, nil
			}
			return want, true, nil
		},
	}

	raw := []byte("#EXT-X-ACME:payload")
	v, _, err := ParseValue([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse([]byte("EXT-X-ACME"), v, raw, custom)
	if err != nil {
		t.Fatal(err)
	}
	if got != Tag(want) {
		t.Errorf("Parse returned %v, want the custom parser's tag", got)
	}
	if calls != 1 {
		t.Errorf("custom parser ran %d times, want 1", calls)
	}
}

func TestCustomParserOverridesBuiltin(t *testing.T) {
	want := NewUnknown("EXT-X-VERSION", "overridden")
	custom := []CustomParser{
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			if name != "EXT-X-VERSION" {
				return nil, false, nil
			}
			return want, true, nil
		},
	}

	v, _, err := ParseValue([]byte("7"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse([]byte("EXT-X-VERSION"), v, []byte("#EXT-X-VERSION:7"), custom)
	if err != nil {
		t.Fatal(err)
	}
	if _, isVersion := got.(*Version); isVersion {
		t.Fatal("builtin parser ran despite the custom override")
	}
	if got != Tag(want) {
		t.Errorf("Parse returned %v, want the custom parser's tag", got)
	}
}

func TestCustomParserFallsThrough(t *testing.T) {
	custom := []CustomParser{
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			return nil, false, nil
		},
	}

	v, _, err := ParseValue([]byte("7"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse([]byte("EXT-X-VERSION"), v, []byte("#EXT-X-VERSION:7"), custom)
	if err != nil {
		t.Fatal(err)
	}
	ver, ok := got.(*Version)
	if !ok {
		t.Fatalf("Parse = %T, want *tag.Version after fall-through", got)
	}
	if ver.Version() != 7 {
		t.Errorf("Version() = %d, want 7", ver.Version())
	}
}

func TestCustomParserError(t *testing.T) {
	boom := errors.New("boom")
	custom := []CustomParser{
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			return nil, false, boom
		},
	}

	_, err := Parse([]byte("EXT-X-VERSION"), EmptyValue(), []byte("#EXT-X-VERSION"), custom)
	if !errors.Is(err, boom) {
		t.Errorf("Parse error = %v, want the custom parser's error", err)
	}
}

func TestCustomParserOrder(t *testing.T) {
	first := NewUnknown("EXT-X-ACME", "first")
	secondRan := false
	custom := []CustomParser{
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			return first, true, nil
		},
		func(name string, value Value, raw []byte) (Tag, bool, error) {
			secondRan = true
			return nil, false, nil
		},
	}

	got, err := Parse([]byte("EXT-X-ACME"), EmptyValue(), []byte("#EXT-X-ACME"), custom)
	if err != nil {
		t.Fatal(err)
	}
	if got != Tag(first) {
		t.Errorf("Parse returned %v, want the first parser's tag", got)
	}
	if secondRan {
		t.Error("second parser ran after the first already handled the tag")
	}
}

func TestParseShapeErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr string
	}{
		{"#EXTM3U:1", "#EXTM3U: tag takes no value"},
		{"#EXT-X-GAP:1", "#EXT-X-GAP: tag takes no value"},
		{"#EXT-X-VERSION", "#EXT-X-VERSION: expected an integer value"},
		{"#EXT-X-VERSION:abc", "#EXT-X-VERSION: expected an integer value"},
		{"#EXTINF:abc", "#EXTINF: expected a decimal duration"},
		{"#EXTINF", "#EXTINF: expected a duration value"},
		{"#EXT-X-BYTERANGE:12@", "#EXT-X-BYTERANGE: malformed byte range"},
		{"#EXT-X-KEY", "#EXT-X-KEY: expected an attribute list"},
		{"#EXT-X-KEY:METHOD=AES-128", "#EXT-X-KEY: attribute URI: required attribute missing"},
		{"#EXT-X-MAP:BYTERANGE=\"1024@0\"", "#EXT-X-MAP: attribute URI: required attribute missing"},
		{"#EXT-X-PART:URI=\"p.mp4\"", "#EXT-X-PART: attribute DURATION: required attribute missing"},
		{"#EXT-X-PART-INF:OTHER=1", "#EXT-X-PART-INF: attribute PART-TARGET: required attribute missing"},
		{"#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"a\"", "#EXT-X-MEDIA: attribute NAME: required attribute missing"},
		{"#EXT-X-STREAM-INF:CODECS=\"avc1\"", "#EXT-X-STREAM-INF: attribute BANDWIDTH: required attribute missing"},
		{"#EXT-X-I-FRAME-STREAM-INF:BANDWIDTH=1", "#EXT-X-I-FRAME-STREAM-INF: attribute URI: required attribute missing"},
		{"#EXT-X-SESSION-DATA:VALUE=\"v\"", "#EXT-X-SESSION-DATA: attribute DATA-ID: required attribute missing"},
		{"#EXT-X-SESSION-KEY:METHOD=NONE", "#EXT-X-SESSION-KEY: attribute METHOD: must not be NONE"},
		{"#EXT-X-CONTENT-STEERING:PATHWAY-ID=\"a\"", "#EXT-X-CONTENT-STEERING: attribute SERVER-URI: required attribute missing"},
		{"#EXT-X-START:PRECISE=YES", "#EXT-X-START: attribute TIME-OFFSET: required attribute missing"},
		{"#EXT-X-DEFINE:NAME=\"a\"", "#EXT-X-DEFINE: attribute VALUE: required attribute missing"},
		{"#EXT-X-DEFINE:VALUE=\"v\"", "#EXT-X-DEFINE: expected exactly one of NAME, IMPORT or QUERYPARAM"},
		{"#EXT-X-DEFINE:NAME=\"a\",VALUE=\"v\",IMPORT=\"b\"", "#EXT-X-DEFINE: expected exactly one of NAME, IMPORT or QUERYPARAM"},
		{"#EXT-X-DATERANGE:ID=\"r1\"", "#EXT-X-DATERANGE: attribute START-DATE: required attribute missing"},
		{"#EXT-X-DATERANGE:ID=\"r1\",START-DATE=\"yesterday\"", "#EXT-X-DATERANGE: attribute START-DATE: malformed date-time"},
		{"#EXT-X-SKIP:RECENTLY-REMOVED-DATERANGES=\"a\"", "#EXT-X-SKIP: attribute SKIPPED-SEGMENTS: required attribute missing"},
		{"#EXT-X-PRELOAD-HINT:URI=\"p\"", "#EXT-X-PRELOAD-HINT: attribute TYPE: required attribute missing"},
		{"#EXT-X-RENDITION-REPORT:LAST-MSN=3", "#EXT-X-RENDITION-REPORT: attribute URI: required attribute missing"},
		{"#EXT-X-PROGRAM-DATE-TIME:not-a-date", "#EXT-X-PROGRAM-DATE-TIME: malformed date-time"},
		{"#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"a\",NAME=bare", "#EXT-X-MEDIA: attribute NAME: expected a quoted string"},
		{"#EXT-X-STREAM-INF:BANDWIDTH=\"1280000\"", "#EXT-X-STREAM-INF: attribute BANDWIDTH: expected a decimal integer"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := tryParseLine(tt.line)
			if err == nil {
				t.Fatalf("parse %q succeeded, want error %q", tt.line, tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseErrorTypes(t *testing.T) {
	_, err := tryParseLine("#EXT-X-VERSION:abc")
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v, want a *ValueError", err)
	}
	if verr.Tag != "EXT-X-VERSION" {
		t.Errorf("ValueError.Tag = %q, want %q", verr.Tag, "EXT-X-VERSION")
	}

	_, err = tryParseLine("#EXT-X-KEY:METHOD=AES-128")
	var aerr *AttributeError
	if !errors.As(err, &aerr) {
		t.Fatalf("error %v, want an *AttributeError", err)
	}
	if aerr.Tag != "EXT-X-KEY" || aerr.Attr != "URI" {
		t.Errorf("AttributeError = %q/%q, want EXT-X-KEY/URI", aerr.Tag, aerr.Attr)
	}
}
