package tag

import (
	"testing"
	"time"
)

func TestStart(t *testing.T) {
	s := parseLine(t, "#EXT-X-START:TIME-OFFSET=-28.5,PRECISE=YES").(*Start)
	if s.TimeOffset() != -28.5 {
		t.Errorf("TimeOffset() = %v, want -28.5", s.TimeOffset())
	}
	if p, ok := s.Precise(); !ok || !p {
		t.Errorf("Precise() = %v, %v, want true, true", p, ok)
	}

	s.SetTimeOffset(10)
	want := "#EXT-X-START:TIME-OFFSET=10,PRECISE=YES"
	if got := string(s.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	s.UnsetPrecise()
	want = "#EXT-X-START:TIME-OFFSET=10"
	if got := string(s.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestDefineForms(t *testing.T) {
	d := parseLine(t, `#EXT-X-DEFINE:NAME="region",VALUE="us-east"`).(*Define)
	if n, ok := d.VarName(); !ok || n != "region" {
		t.Errorf("VarName() = %q, %v", n, ok)
	}
	if v, ok := d.Value(); !ok || v != "us-east" {
		t.Errorf("Value() = %q, %v", v, ok)
	}
	if _, ok := d.Import(); ok {
		t.Error("Import() present on a NAME form")
	}

	imp := parseLine(t, `#EXT-X-DEFINE:IMPORT="region"`).(*Define)
	if n, ok := imp.Import(); !ok || n != "region" {
		t.Errorf("Import() = %q, %v", n, ok)
	}

	qp := parseLine(t, `#EXT-X-DEFINE:QUERYPARAM="token"`).(*Define)
	if n, ok := qp.QueryParam(); !ok || n != "token" {
		t.Errorf("QueryParam() = %q, %v", n, ok)
	}
}

func TestDefineMutateAndNew(t *testing.T) {
	d := parseLine(t, `#EXT-X-DEFINE:NAME="region",VALUE="us-east"`).(*Define)
	d.SetValue("eu-west")
	want := `#EXT-X-DEFINE:NAME="region",VALUE="eu-west"`
	if got := string(d.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	if got := string(NewDefine("a", "b").Line()); got != `#EXT-X-DEFINE:NAME="a",VALUE="b"` {
		t.Errorf("NewDefine Line() = %q", got)
	}
	if got := string(NewDefineImport("a").Line()); got != `#EXT-X-DEFINE:IMPORT="a"` {
		t.Errorf("NewDefineImport Line() = %q", got)
	}
	if got := string(NewDefineQueryParam("t").Line()); got != `#EXT-X-DEFINE:QUERYPARAM="t"` {
		t.Errorf("NewDefineQueryParam Line() = %q", got)
	}
}

func TestDaterangeParse(t *testing.T) {
	const line = `#EXT-X-DATERANGE:ID="splice-6FFFFFF0",START-DATE="2014-03-05T11:15:00Z",PLANNED-DURATION=59.993,SCTE35-OUT=0xFC002F0000000000FF0`
	d := parseLine(t, line).(*Daterange)

	if d.ID() != "splice-6FFFFFF0" {
		t.Errorf("ID() = %q", d.ID())
	}
	if want := time.Date(2014, 3, 5, 11, 15, 0, 0, time.UTC); !d.StartDate().Equal(want) {
		t.Errorf("StartDate() = %v, want %v", d.StartDate(), want)
	}
	if f, ok := d.PlannedDuration(); !ok || f != 59.993 {
		t.Errorf("PlannedDuration() = %v, %v", f, ok)
	}
	if s, ok := d.Scte35Out(); !ok || s != "0xFC002F0000000000FF0" {
		t.Errorf("Scte35Out() = %q, %v", s, ok)
	}
	if got := string(d.Line()); got != line {
		t.Errorf("untouched Line() = %q", got)
	}
}

func TestDaterangeClientAttributes(t *testing.T) {
	const line = `#EXT-X-DATERANGE:ID="ad1",START-DATE="2024-06-01T00:00:00Z",X-COM-EXAMPLE-AD-ID="XYZ123",X-COM-EXAMPLE-BEACON=1`
	d := parseLine(t, line).(*Daterange)

	cas := d.ClientAttributes()
	if len(cas) != 2 {
		t.Fatalf("ClientAttributes() has %d entries, want 2", len(cas))
	}
	if string(cas[0].Name) != "X-COM-EXAMPLE-AD-ID" {
		t.Errorf("first client attribute = %q", cas[0].Name)
	}
	if got := string(d.Line()); got != line {
		t.Fatalf("untouched Line() = %q", got)
	}

	// Client attributes survive the canonical re-render.
	d.SetDuration(30)
	want := `#EXT-X-DATERANGE:ID="ad1",START-DATE="2024-06-01T00:00:00Z",DURATION=30,X-COM-EXAMPLE-AD-ID="XYZ123",X-COM-EXAMPLE-BEACON=1`
	if got := string(d.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	d.SetClientAttribute("X-COM-EXAMPLE-BEACON", IntegerValue(2))
	want = `#EXT-X-DATERANGE:ID="ad1",START-DATE="2024-06-01T00:00:00Z",DURATION=30,X-COM-EXAMPLE-AD-ID="XYZ123",X-COM-EXAMPLE-BEACON=2`
	if got := string(d.Line()); got != want {
		t.Errorf("after SetClientAttribute, Line() = %q, want %q", got, want)
	}

	d.UnsetClientAttribute("X-COM-EXAMPLE-AD-ID")
	want = `#EXT-X-DATERANGE:ID="ad1",START-DATE="2024-06-01T00:00:00Z",DURATION=30,X-COM-EXAMPLE-BEACON=2`
	if got := string(d.Line()); got != want {
		t.Errorf("after UnsetClientAttribute, Line() = %q, want %q", got, want)
	}

	d.SetClientAttribute("X-NEW", QuotedValue([]byte("v")))
	want = `#EXT-X-DATERANGE:ID="ad1",START-DATE="2024-06-01T00:00:00Z",DURATION=30,X-COM-EXAMPLE-BEACON=2,X-NEW="v"`
	if got := string(d.Line()); got != want {
		t.Errorf("after adding a client attribute, Line() = %q, want %q", got, want)
	}
}

func TestDaterangeCueAndEnd(t *testing.T) {
	const line = `#EXT-X-DATERANGE:ID="r",START-DATE="2024-06-01T00:00:00Z",CUE="PRE,ONCE",END-ON-NEXT=YES,CLASS="com.example.break"`
	d := parseLine(t, line).(*Daterange)

	cue, ok := d.CueList()
	if !ok {
		t.Fatal("CueList() absent")
	}
	items := cue.Items()
	if len(items) != 2 || !items[0].Is(CuePre) || !items[1].Is(CueOnce) {
		t.Errorf("CueList items = %v", items)
	}
	if eon, ok := d.EndOnNext(); !ok || !eon {
		t.Errorf("EndOnNext() = %v, %v", eon, ok)
	}
	if c, ok := d.Class(); !ok || c != "com.example.break" {
		t.Errorf("Class() = %q, %v", c, ok)
	}

	d.SetEndDate(time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC))
	want := `#EXT-X-DATERANGE:ID="r",CLASS="com.example.break",START-DATE="2024-06-01T00:00:00Z",CUE="PRE,ONCE",END-DATE="2024-06-01T00:01:00Z",END-ON-NEXT=YES`
	if got := string(d.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestSkip(t *testing.T) {
	s := parseLine(t, "#EXT-X-SKIP:SKIPPED-SEGMENTS=10").(*Skip)
	if s.SkippedSegments() != 10 {
		t.Errorf("SkippedSegments() = %d", s.SkippedSegments())
	}

	s.SetSkippedSegments(12)
	s.SetRecentlyRemovedDateranges("r1\tr2")
	want := "#EXT-X-SKIP:SKIPPED-SEGMENTS=12,RECENTLY-REMOVED-DATERANGES=\"r1\tr2\""
	if got := string(s.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestPreloadHint(t *testing.T) {
	const line = `#EXT-X-PRELOAD-HINT:TYPE=PART,URI="filePart273.4.mp4",BYTERANGE-START=20000,BYTERANGE-LENGTH=4000`
	ph := parseLine(t, line).(*PreloadHint)
	if !ph.Type().Is(PreloadHintPart) {
		t.Errorf("Type() = %q", ph.Type().String())
	}
	if ph.URI() != "filePart273.4.mp4" {
		t.Errorf("URI() = %q", ph.URI())
	}
	if st, ok := ph.ByterangeStart(); !ok || st != 20000 {
		t.Errorf("ByterangeStart() = %d, %v", st, ok)
	}
	if ln, ok := ph.ByterangeLength(); !ok || ln != 4000 {
		t.Errorf("ByterangeLength() = %d, %v", ln, ok)
	}

	ph.UnsetByterangeLength()
	want := `#EXT-X-PRELOAD-HINT:TYPE=PART,URI="filePart273.4.mp4",BYTERANGE-START=20000`
	if got := string(ph.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRenditionReport(t *testing.T) {
	const line = `#EXT-X-RENDITION-REPORT:URI="../1M/waitForMSN.php",LAST-MSN=273,LAST-PART=3`
	rr := parseLine(t, line).(*RenditionReport)
	if rr.URI() != "../1M/waitForMSN.php" {
		t.Errorf("URI() = %q", rr.URI())
	}
	if msn, ok := rr.LastMSN(); !ok || msn != 273 {
		t.Errorf("LastMSN() = %d, %v", msn, ok)
	}
	if p, ok := rr.LastPart(); !ok || p != 3 {
		t.Errorf("LastPart() = %d, %v", p, ok)
	}

	rr.SetLastMSN(274)
	rr.UnsetLastPart()
	want := `#EXT-X-RENDITION-REPORT:URI="../1M/waitForMSN.php",LAST-MSN=274`
	if got := string(rr.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestIndependentSegmentsMarker(t *testing.T) {
	if got := string(NewIndependentSegments().Line()); got != "#EXT-X-INDEPENDENT-SEGMENTS" {
		t.Errorf("Line() = %q", got)
	}
	if got := string(NewEndlist().Line()); got != "#EXT-X-ENDLIST" {
		t.Errorf("Endlist Line() = %q", got)
	}
	if got := string(NewIFramesOnly().Line()); got != "#EXT-X-I-FRAMES-ONLY" {
		t.Errorf("IFramesOnly Line() = %q", got)
	}
}
