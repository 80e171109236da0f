package m3u8

// SaveOption configures behavior when writing playlist files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := m3u8.WriteFile("media.m3u8", lines,
//	    m3u8.WithBackup(".bak"),
//	    m3u8.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for writing files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "media.m3u8.bak"
// before replacing "media.m3u8".
//
// If the backup file already exists, it will be overwritten.
//
// Example:
//
//	err := m3u8.WriteFile("media.m3u8", lines, m3u8.WithBackup(".bak"))
//	// Original file preserved as media.m3u8.bak
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the playlist is re-read, re-parsed and re-rendered to
// ensure the written data reads back identically. This adds overhead but
// provides confidence that the save operation succeeded.
//
// Example:
//
//	err := m3u8.WriteFile("media.m3u8", lines, m3u8.WithValidation())
//	// File is re-read after save to verify
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the current
// time. This option preserves the original modification time, such as
// when normalizing a playlist without changing the "modified" date.
//
// Example:
//
//	err := m3u8.WriteFile("media.m3u8", lines, m3u8.WithPreserveModTime())
//	// File modification time unchanged
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
