package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names fall
// back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds the host logger. Console format writes human-readable lines;
// json writes one object per line. With several writers every line goes to
// all of them.
func New(level, format string, outs ...io.Writer) zerolog.Logger {
	writers := make([]io.Writer, 0, len(outs))
	for _, out := range outs {
		if out == nil {
			continue
		}
		if format == "json" {
			writers = append(writers, out)
			continue
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(out),
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}
