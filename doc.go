// Package m3u8 reads, edits and writes HLS playlists without disturbing
// the bytes it does not understand.
//
// m3u8 is built around one contract: a playlist parsed and written back
// unchanged is byte-for-byte identical to its input, and a playlist with
// one tag edited changes on exactly that line. Everything else follows
// from making that contract cheap.
//
// # Quick Start
//
// Reading a playlist:
//
//	lines, err := m3u8.ParseFile("media.m3u8")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, l := range lines {
//		if l.Kind() == m3u8.LineURI {
//			fmt.Println(l.URI())
//		}
//	}
//
// Editing one tag and writing the playlist back:
//
//	for _, l := range lines {
//		if t, ok := l.Tag().(*tag.Targetduration); ok {
//			t.SetDuration(6)
//		}
//	}
//	err = m3u8.WriteFile("media.m3u8", lines, m3u8.WithBackup(".bak"))
//
// # Philosophy
//
// m3u8 embodies three core principles:
//
// 1. Byte fidelity: untouched lines round-trip exactly, unknown tags and
// attributes included. Editing tools must not churn diffs they did not
// mean to make.
//
// 2. Pay for what you read: tag values are classified in a single pass,
// and attribute conversion happens on first access, once. Serialization
// never needs a conversion the caller didn't already pay for.
//
// 3. Forward compatibility: names and enumerated values from future
// protocol revisions flow through parse, access and re-render without
// data loss, and without errors.
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[Reader/Writer]   - line driver: split, classify, re-emit
//	  ├─ [Line]       - blank | comment | URI | tag, terminator retained
//	  ├─ [tag]        - one typed record per tag name, lazy attributes
//	  └─ [scan]       - single-pass value classifier and tokenizer
//
// The tag package owns the record types; internal/scan owns the byte-level
// grammar; internal/lazy owns the tri-state attribute cells the records
// are built from.
//
// # Advanced Usage
//
// Parse many playlists concurrently:
//
//	ctx := context.Background()
//	playlists, err := m3u8.ParseFiles(ctx, paths...)
//
// Extend the parser with private tags:
//
//	lines, err := m3u8.Parse(data, m3u8.WithCustomTags(mySCTE35Parser))
//
// A custom parser sees every tag name before the built-in table and can
// claim any of them; names nobody claims parse as *tag.Unknown rather
// than failing.
//
// # Error Handling
//
// m3u8 distinguishes between malformed syntax and unknown content:
//
//   - Syntax errors (an unterminated quote, a bad float) abort the line
//     with a ParseError naming the line number.
//   - Unknown tag names, unknown attributes and unknown enumerated values
//     are data, not errors. They parse, survive edits on other lines and
//     write back verbatim.
//
// Match error types with errors.As:
//
//	var perr *m3u8.ParseError
//	if errors.As(err, &perr) {
//		log.Printf("bad playlist line %d: %v", perr.Line, perr.Err)
//	}
//
// # Performance
//
// m3u8 is designed for speed:
//
//   - Zero-copy: parsed lines, tag values and attribute strings borrow
//     the input buffer
//   - Lazy: attribute values convert on first read, memoized per field
//   - Cached: serialization reuses retained or previously rendered bytes
//   - Concurrent: ParseFiles() parses playlists in parallel
//
// Typical performance on modern hardware:
//   - Full media playlist parse: tens of microseconds
//   - Untouched round trip: one buffer copy
//   - Memory: a few hundred bytes per tag record beyond the input buffer
package m3u8
