package m3u8

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parse parses a complete playlist held in memory.
//
// The returned lines borrow data: they reference sub-slices of it and
// stay valid while the buffer is alive and unmodified. Parsing stops at
// the first malformed tag line with a ParseError naming the line number.
//
// Options can be provided to customize parsing behavior:
//
//	lines, err := m3u8.Parse(data,
//	    m3u8.WithStrictLines(),
//	    m3u8.WithCustomTags(parseSCTE35),
//	)
//
// Example:
//
//	lines, err := m3u8.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, l := range lines {
//		if l.Kind() == m3u8.LineURI {
//			fmt.Println(l.URI())
//		}
//	}
func Parse(data []byte, opts ...Option) ([]Line, error) {
	return NewReader(data, opts...).ReadAll()
}

// ParseString parses a playlist held in a string.
//
// The string is copied, so the returned lines do not alias caller memory.
func ParseString(s string, opts ...Option) ([]Line, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses one playlist file.
//
// The file is read fully into memory; the returned lines borrow that
// buffer.
func ParseFile(path string, opts ...Option) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return Parse(data, opts...)
}

// ParseFiles parses multiple playlist files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines,
// with default parse options. Results are returned in the same order as
// the input paths. If any file fails, the remaining work is cancelled and
// the first error is returned, wrapped with its path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	playlists, err := m3u8.ParseFiles(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, lines := range playlists {
//		fmt.Printf("%s: %d lines\n", paths[i], len(lines))
//	}
func ParseFiles(ctx context.Context, paths ...string) ([][]Line, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([][]Line, len(paths))

	for i, path := range paths {
		i, path := i, path // Capture loop variables
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			lines, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = lines
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
