package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/simonhull/m3u8"
	"github.com/simonhull/m3u8/tag"
)

var (
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	strict   = flag.Bool("strict", false, "require playlists to begin with #EXTM3U")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: m3u8-inspect [flags] <command> <file...>

Commands:
  dump       print every line with its kind and parsed tag name
  lint       parse playlists and report malformed lines
  roundtrip  verify parse-and-serialize reproduces each file exactly

Files ending in .gz are read through gzip.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, paths := args[0], args[1:]

	log := newLogger(*logLevel)

	var ok bool
	switch cmd {
	case "dump":
		ok = runDump(log, paths)
	case "lint":
		ok = runLint(log, paths)
	case "roundtrip":
		ok = runRoundtrip(log, paths)
	default:
		fmt.Fprintf(os.Stderr, "m3u8-inspect: unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(lvl)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// readPlaylist loads one playlist, transparently decompressing .gz files.
func readPlaylist(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func parseOpts() []m3u8.Option {
	if *strict {
		return []m3u8.Option{m3u8.WithStrictLines()}
	}
	return nil
}

func runDump(log zerolog.Logger, paths []string) bool {
	ok := true
	for _, path := range paths {
		data, err := readPlaylist(path)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("read failed")
			ok = false
			continue
		}
		lines, err := m3u8.Parse(data, parseOpts()...)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("parse failed")
			ok = false
			continue
		}

		fmt.Printf("%s: %s playlist, %d lines\n", path, m3u8.DetectFormat(lines), len(lines))
		for i, l := range lines {
			switch l.Kind() {
			case m3u8.LineTag:
				fmt.Printf("%5d  tag      %-28s %s\n", i+1, l.Tag().Name(), l.Bytes())
			case m3u8.LineURI:
				fmt.Printf("%5d  uri      %s\n", i+1, l.URI())
			case m3u8.LineComment:
				fmt.Printf("%5d  comment  %s\n", i+1, l.Raw())
			default:
				fmt.Printf("%5d  blank\n", i+1)
			}
		}
	}
	return ok
}

func runLint(log zerolog.Logger, paths []string) bool {
	ok := true
	for _, path := range paths {
		data, err := readPlaylist(path)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("read failed")
			ok = false
			continue
		}

		total, bad, unknown := 0, 0, 0
		r := m3u8.NewReader(data, parseOpts()...)
		for {
			line, err := r.Next()
			if err == io.EOF {
				break
			}
			total++
			if err != nil {
				bad++
				ok = false
				log.Error().Str("path", path).Err(err).Msg("malformed line")
				continue
			}
			if _, isUnknown := line.Tag().(*tag.Unknown); isUnknown {
				unknown++
				log.Debug().Str("path", path).Str("name", line.Tag().Name()).Msg("unrecognized tag name")
			}
		}

		log.Info().
			Str("path", path).
			Int("lines", total).
			Int("malformed", bad).
			Int("unknown_tags", unknown).
			Msg("lint complete")
	}
	return ok
}

func runRoundtrip(log zerolog.Logger, paths []string) bool {
	ok := true
	for _, path := range paths {
		data, err := readPlaylist(path)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("read failed")
			ok = false
			continue
		}
		lines, err := m3u8.Parse(data, parseOpts()...)
		if err != nil {
			log.Error().Str("path", path).Err(err).Msg("parse failed")
			ok = false
			continue
		}

		out := m3u8.Render(lines)
		if !bytes.Equal(out, data) {
			ok = false
			log.Error().
				Str("path", path).
				Int("input_bytes", len(data)).
				Int("output_bytes", len(out)).
				Msg("round trip differs")
			continue
		}
		log.Info().Str("path", path).Int("bytes", len(data)).Msg("round trip identical")
	}
	return ok
}
