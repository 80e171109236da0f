package m3u8_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/m3u8"
)

func createTestPlaylistFile(t *testing.T, dir string, name string) string {
	t.Helper()

	data := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:6\n" +
		"#EXTINF:6.006,\n" +
		"seg0.mp4\n" +
		"#EXT-X-ENDLIST\n"

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestParseFiles_Cancellation verifies that cancelled operations stop early.
func TestParseFiles_Cancellation(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = createTestPlaylistFile(t, dir, "p"+string(rune('0'+i))+".m3u8")
	}

	// Create a context that's already cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	playlists, err := m3u8.ParseFiles(ctx, paths...)

	// Should return error
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}

	// Should not return any playlists
	if playlists != nil {
		t.Error("expected nil playlists on error")
	}
}

// TestParseFiles_PartialFailure verifies all-or-nothing results.
func TestParseFiles_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	validPath := createTestPlaylistFile(t, dir, "ok.m3u8")

	paths := []string{
		validPath,
		filepath.Join(dir, "missing.m3u8"),
		validPath,
	}

	playlists, err := m3u8.ParseFiles(context.Background(), paths...)

	// Should return error
	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}

	// Should not return any playlists (all or nothing)
	if playlists != nil {
		t.Error("expected nil playlists on partial failure")
	}
}

func TestParseFiles_Order(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 8)
	for i := range paths {
		name := "p" + string(rune('0'+i)) + ".m3u8"
		data := "#EXTM3U\n#EXT-X-MEDIA-SEQUENCE:" + string(rune('0'+i)) + "\n"
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		paths[i] = path
	}

	playlists, err := m3u8.ParseFiles(context.Background(), paths...)
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}
	if len(playlists) != len(paths) {
		t.Fatalf("got %d playlists, want %d", len(playlists), len(paths))
	}

	for i, lines := range playlists {
		want := "#EXT-X-MEDIA-SEQUENCE:" + string(rune('0'+i))
		if len(lines) != 2 {
			t.Fatalf("playlist %d has %d lines, want 2", i, len(lines))
		}
		if got := string(lines[1].Bytes()); got != want {
			t.Errorf("playlist %d line 2 = %q, want %q", i, got, want)
		}
	}
}

func TestParseFiles_NoPaths(t *testing.T) {
	playlists, err := m3u8.ParseFiles(context.Background())
	if err != nil {
		t.Fatalf("ParseFiles with no paths failed: %v", err)
	}
	if playlists != nil {
		t.Errorf("expected nil result, got %v", playlists)
	}
}
