package m3u8

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes a playlist to path.
//
// This is an atomic operation: writes to a temporary file first, then
// renames to the output path. If any step fails, the original file
// remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := m3u8.WriteFile("media.m3u8", lines,
//	    m3u8.WithBackup(".bak"),
//	    m3u8.WithValidation(),
//	)
func WriteFile(path string, lines []Line, opts ...SaveOption) error {
	// Apply options
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(path); err == nil {
			origInfo = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	outputDir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(outputDir, ".m3u8-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	out := Render(lines)
	if _, err := tempFile.Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" {
		backupPath := path + options.backupSuffix
		// Check if output file exists before trying to back it up
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	// Mark success so defer doesn't clean up
	success = true

	// Handle preserveModTime option
	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(path, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	// Handle validate option (re-read and round-trip check)
	if options.validate {
		if err := validateWrittenFile(path, out); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-reads the playlist and checks that it parses and
// round-trips back to the bytes just written.
func validateWrittenFile(path string, want []byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	if !bytes.Equal(data, want) {
		return fmt.Errorf("written file differs from rendering")
	}

	lines, err := Parse(data)
	if err != nil {
		return fmt.Errorf("re-parse: %w", err)
	}
	if got := Render(lines); !bytes.Equal(got, want) {
		return fmt.Errorf("re-parsed playlist does not round-trip")
	}

	return nil
}
