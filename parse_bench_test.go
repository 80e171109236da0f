package m3u8_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/m3u8"
)

// buildMediaPlaylist synthesizes a media playlist with n segments.
func buildMediaPlaylist(n int) []byte {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	b.WriteString("#EXT-X-VERSION:7\n")
	b.WriteString("#EXT-X-TARGETDURATION:6\n")
	b.WriteString("#EXT-X-MEDIA-SEQUENCE:0\n")
	b.WriteString("#EXT-X-MAP:URI=\"init.mp4\"\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "#EXTINF:6.006,\nsegment%d.mp4\n", i)
	}
	b.WriteString("#EXT-X-ENDLIST\n")
	return []byte(b.String())
}

// BenchmarkParse measures playlist parsing across sizes.
func BenchmarkParse(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d_segments", n), func(b *testing.B) {
			data := buildMediaPlaylist(n)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := m3u8.Parse(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRoundTrip measures a full parse-and-serialize cycle.
func BenchmarkRoundTrip(b *testing.B) {
	data := buildMediaPlaylist(100)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		lines, err := m3u8.Parse(data)
		if err != nil {
			b.Fatal(err)
		}
		if out := m3u8.Render(lines); len(out) != len(data) {
			b.Fatalf("round trip changed size: %d -> %d", len(data), len(out))
		}
	}
}

// BenchmarkRender measures serialization of an already parsed playlist.
func BenchmarkRender(b *testing.B) {
	lines, err := m3u8.Parse(buildMediaPlaylist(100))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = m3u8.Render(lines)
	}
}

// BenchmarkParseFiles measures concurrent playlist parsing.
func BenchmarkParseFiles(b *testing.B) {
	dir := b.TempDir()
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("bench%d.m3u8", i))
		if err := os.WriteFile(paths[i], buildMediaPlaylist(100), 0o644); err != nil {
			b.Fatal(err)
		}
	}

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := m3u8.ParseFiles(ctx, paths...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDetectFormat measures playlist kind detection.
func BenchmarkDetectFormat(b *testing.B) {
	lines, err := m3u8.Parse(buildMediaPlaylist(100))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if got := m3u8.DetectFormat(lines); got != m3u8.FormatMedia {
			b.Fatalf("DetectFormat = %v", got)
		}
	}
}
