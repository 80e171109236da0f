package m3u8_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/m3u8"
	"github.com/simonhull/m3u8/tag"
)

func TestWriteFile_RoundTrip(t *testing.T) {
	data := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:6\n" +
		"#EXTINF:6.006,\n" +
		"seg0.mp4\n" +
		"#EXT-X-ENDLIST\n"

	lines, err := m3u8.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.m3u8")
	if err := m3u8.WriteFile(path, lines, m3u8.WithValidation()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != data {
		t.Errorf("written playlist = %q, want %q", written, data)
	}
}

func TestWriteFile_MutatedTag(t *testing.T) {
	lines, err := m3u8.Parse([]byte("#EXTM3U\n#EXT-X-TARGETDURATION:6\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	lines[1].Tag().(*tag.Targetduration).SetDuration(8)

	path := filepath.Join(t.TempDir(), "out.m3u8")
	if err := m3u8.WriteFile(path, lines, m3u8.WithValidation()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "#EXTM3U\n#EXT-X-TARGETDURATION:8\n"
	if string(written) != want {
		t.Errorf("written playlist = %q, want %q", written, want)
	}
}

func TestWriteFile_Backup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.m3u8")

	original := "#EXTM3U\n#EXT-X-VERSION:6\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := m3u8.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	lines[1].Tag().(*tag.Version).SetVersion(7)

	if err := m3u8.WriteFile(path, lines, m3u8.WithBackup(".bak")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(backup) != original {
		t.Errorf("backup = %q, want original %q", backup, original)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "#EXTM3U\n#EXT-X-VERSION:7\n"
	if string(written) != want {
		t.Errorf("written playlist = %q, want %q", written, want)
	}
}

func TestWriteFile_NoBackupWithoutOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.m3u8")

	lines := []m3u8.Line{m3u8.TagLine(tag.NewM3u())}
	if err := m3u8.WriteFile(path, lines, m3u8.WithBackup(".bak")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Errorf("expected no backup for a fresh file, stat err = %v", err)
	}
}

func TestWriteFile_PreserveModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.m3u8")

	if err := os.WriteFile(path, []byte("#EXTM3U\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := []m3u8.Line{
		m3u8.TagLine(tag.NewM3u()),
		m3u8.TagLine(tag.NewEndlist()),
	}
	if err := m3u8.WriteFile(path, lines, m3u8.WithPreserveModTime()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("mod time changed: %v -> %v", before.ModTime(), after.ModTime())
	}
}

func TestWriteFile_BadDirectory(t *testing.T) {
	err := m3u8.WriteFile("/nonexistent/dir/out.m3u8", []m3u8.Line{m3u8.TagLine(tag.NewM3u())})
	if err == nil {
		t.Error("expected error for unwritable directory")
	}
}
