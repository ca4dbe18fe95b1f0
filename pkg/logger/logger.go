// Package logger holds the dashboard's process-wide zerolog logger.
//
// main calls Init once; packages that own a concern take a tagged child from
// Component and keep it as a field rather than calling Get on every line.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	// Level accepts any zerolog level name plus "warning". Empty or unknown
	// means info.
	Level string
	// Pretty writes console lines for local development instead of JSON.
	Pretty bool
	// Service is stamped on every line.
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var root atomic.Pointer[zerolog.Logger]

// Init installs the process logger. Later calls return the logger from the
// first one unchanged.
func Init(opts Options) zerolog.Logger {
	if l := root.Load(); l != nil {
		return *l
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl := parseLevel(opts.Level)
	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()

	if !root.CompareAndSwap(nil, &l) {
		return *root.Load()
	}
	return l
}

// Get returns the process logger and panics before Init.
func Get() zerolog.Logger {
	l := root.Load()
	if l == nil {
		panic("logger: Get() called before Init()")
	}
	return *l
}

// Component returns a child logger tagged with name, e.g. "session" or
// "remote".
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset drops the process logger. Tests only.
func Reset() {
	root.Store(nil)
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
