// Package logging builds the hclog loggers used by the shade CLI.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	// Name is the logger name, shown as a prefix.
	Name string
	// Level is an hclog level name (trace, debug, info, warn, error, off).
	Level string
	// Verbose forces debug output; Quiet forces error-only output. Verbose wins.
	Verbose bool
	Quiet   bool
	// Output defaults to stderr.
	Output io.Writer
	// JSON switches to hclog's JSON format.
	JSON bool
}

// New returns a logger for opts.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	name := opts.Name
	if name == "" {
		name = "shade"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Output:     out,
		Level:      resolveLevel(opts),
		JSONFormat: opts.JSON,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

func resolveLevel(opts Options) hclog.Level {
	switch {
	case opts.Verbose:
		return hclog.Debug
	case opts.Quiet:
		return hclog.Error
	}
	if lvl := hclog.LevelFromString(opts.Level); lvl != hclog.NoLevel {
		return lvl
	}
	return hclog.Info
}
