// Package logger wires zerolog up once at process start. Every component
// receives a child logger derived from the one Init returns, so fields set
// here (timestamp, caller) show up on every line the service emits.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger.
type Options struct {
	// Level names the minimum level to emit: trace, debug, info, warn or
	// error. Anything else falls back to info.
	Level string
	// Pretty switches to the human console writer. Leave false in
	// production so the output stays machine-parseable JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	once     sync.Once
	instance zerolog.Logger
)

// Init builds the process logger. Repeated calls return the logger from the
// first call unchanged.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		instance = zerolog.New(out).Level(level).With().Timestamp().Caller().Logger()
	})
	return instance
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
