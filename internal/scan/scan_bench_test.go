package scan

import (
	"strconv"
	"testing"
	"unicode/utf8"
)

var benchLines = [][]byte{
	[]byte(`BANDWIDTH=1280000,AVERAGE-BANDWIDTH=1000000,RESOLUTION=1280x720,FRAME-RATE=29.970,CODECS="avc1.640029,mp4a.40.2",AUDIO="aud1",CLOSED-CAPTIONS=NONE`),
	[]byte(`METHOD=SAMPLE-AES,URI="skd://some-key-id",IV=0x9c7db8778570d05c3177c349fd9236aa,KEYFORMAT="com.apple.streamingkeydelivery",KEYFORMATVERSIONS="1"`),
	[]byte(`6.00600,Segment title with some text`),
	[]byte(`271828`),
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	var total int64
	for i := 0; i < b.N; i++ {
		line := benchLines[i%len(benchLines)]
		v, _, err := Parse(line)
		if err != nil {
			b.Fatal(err)
		}
		total += int64(v.Kind())
	}
	sinkKind = total
}

func BenchmarkParseAttrLine(b *testing.B) {
	line := benchLines[0]
	b.SetBytes(int64(len(line)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Parse(line); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseNaive measures the same classification done with a per-byte
// loop instead of IndexByte probes, to keep the fast path honest.
func BenchmarkParseNaive(b *testing.B) {
	line := benchLines[0]
	b.SetBytes(int64(len(line)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := naiveParse(line); err != nil {
			b.Fatal(err)
		}
	}
}

var sinkKind int64

// naiveParse is the reference classifier: one state machine walking a byte at
// a time. Kept test-only, as the baseline the IndexByte version must beat.
func naiveParse(data []byte) (Value, []byte, error) {
	window := data
	var rest []byte
	for i, c := range data {
		if c == '\n' {
			window = data[:i]
			rest = data[i+1:]
			break
		}
	}
	if n := len(window); n > 0 && window[n-1] == '\r' && rest != nil {
		window = window[:n-1]
	}

	eq, comma := -1, -1
	for i, c := range window {
		if c == '=' && eq < 0 {
			eq = i
		}
		if c == ',' && comma < 0 {
			comma = i
		}
		if eq >= 0 && comma >= 0 {
			break
		}
	}

	switch {
	case eq >= 0 && (comma < 0 || eq < comma):
		attrs := make(Attrs, 0, 4)
		p := 0
		for {
			ne := -1
			for i := p; i < len(window); i++ {
				if window[i] == '=' {
					ne = i
					break
				}
			}
			if ne < 0 {
				return Value{}, data, errAt(ReasonUnexpectedEndOfLine, len(window))
			}
			if ne == p {
				return Value{}, data, errAt(ReasonEmptyAttributeName, p)
			}
			name := window[p:ne]
			p = ne + 1

			v, n, more, err := naiveAttrValue(window[p:], p)
			if err != nil {
				return Value{}, data, err
			}
			attrs = append(attrs, Attr{Name: name, Value: v})
			p += n
			if !more {
				return Value{kind: KindAttrList, attrs: attrs}, rest, nil
			}
		}

	case comma >= 0:
		f, err := strconv.ParseFloat(string(window[:comma]), 64)
		if err != nil {
			return Value{}, data, errAt(ReasonInvalidFloat, 0)
		}
		return Value{kind: KindFloat, f: f, tail: window[comma+1:], hasTail: true}, rest, nil

	default:
		return Value{kind: KindUnparsed, raw: window}, rest, nil
	}
}

func naiveAttrValue(w []byte, base int) (AttrValue, int, bool, error) {
	if len(w) == 0 {
		return AttrValue{}, 0, false, errAt(ReasonEmptyAttributeValue, base)
	}
	if w[0] == '"' {
		j := -1
		for i := 1; i < len(w); i++ {
			if w[i] == '"' {
				j = i
				break
			}
		}
		if j < 0 {
			return AttrValue{}, 0, false, errAt(ReasonUnterminatedQuote, base)
		}
		content := w[1:j]
		if !utf8.Valid(content) {
			return AttrValue{}, 0, false, errAt(ReasonInvalidUTF8, base+1)
		}
		k := j + 1
		switch {
		case k == len(w):
			return AttrValue{kind: AttrQuoted, s: content}, k, false, nil
		case w[k] == ',':
			return AttrValue{kind: AttrQuoted, s: content}, k + 1, true, nil
		default:
			return AttrValue{}, 0, false, errAt(ReasonUnexpectedAfterQuote, base+k)
		}
	}

	end := len(w)
	hasDot := false
	for i, c := range w {
		if c == ',' {
			end = i
			break
		}
		if c == '.' {
			hasDot = true
		}
	}
	tok := w[:end]
	if len(tok) == 0 {
		return AttrValue{}, 0, false, errAt(ReasonEmptyAttributeValue, base)
	}
	n, more := end, false
	if end < len(w) {
		n++
		more = true
	}
	if hasDot {
		f, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return AttrValue{}, 0, false, errAt(ReasonInvalidFloat, base)
		}
		return AttrValue{kind: AttrFloat, f: f}, n, more, nil
	}
	if u, ok := parseUint(tok); ok {
		return AttrValue{kind: AttrInteger, u: u}, n, more, nil
	}
	if f, err := strconv.ParseFloat(string(tok), 64); err == nil {
		return AttrValue{kind: AttrFloat, f: f}, n, more, nil
	}
	return AttrValue{kind: AttrUnquoted, s: tok}, n, more, nil
}

func TestNaiveParseMatches(t *testing.T) {
	inputs := append([][]byte{}, benchLines...)
	inputs = append(inputs,
		[]byte("6.006,Title\nrest"),
		[]byte("1024@512"),
		[]byte(""),
		[]byte(`A="x,y",B=2`),
	)
	for _, in := range inputs {
		got, gotRest, gotErr := Parse(in)
		want, wantRest, wantErr := naiveParse(in)
		if (gotErr == nil) != (wantErr == nil) {
			t.Errorf("Parse(%q) err = %v, naive err = %v", in, gotErr, wantErr)
			continue
		}
		if got.Kind() != want.Kind() {
			t.Errorf("Parse(%q) kind = %v, naive kind = %v", in, got.Kind(), want.Kind())
		}
		if string(gotRest) != string(wantRest) {
			t.Errorf("Parse(%q) rest = %q, naive rest = %q", in, gotRest, wantRest)
		}
	}
}
