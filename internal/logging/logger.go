// Package logging provides structured logging for the lvsearch runner and
// CLI using bolt. The search algorithms themselves never log; callers
// observe them through hooks and the returned metrics.
package logging

import (
	"io"
	"os"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/mattn/go-isatty"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format: json, console, or auto. Auto picks
	// console when Output is a terminal and json otherwise.
	Format string

	// Output is the output destination. Defaults to os.Stderr so that
	// reports on stdout stay clean.
	Output io.Writer
}

// DefaultConfig returns an auto-format logger at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "auto",
		Output: os.Stderr,
	}
}

// parseLevel converts a string level to bolt.Level; unknown strings map to info.
func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// ValidLevel reports whether s names a level understood by New.
func ValidLevel(s string) bool {
	switch s {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// New builds a logger from cfg.
func New(cfg Config) *bolt.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	format := cfg.Format
	if format == "auto" {
		format = "json"
		if isTerminal(out) {
			format = "console"
		}
	}

	var handler bolt.Handler
	if format == "json" {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
	}

	return bolt.New(handler).SetLevel(parseLevel(cfg.Level))
}

// ValidFormat reports whether s names a format understood by New.
func ValidFormat(s string) bool {
	switch s {
	case "json", "console", "auto":
		return true
	default:
		return false
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discard returns a logger that drops everything.
func Discard() *bolt.Logger {
	return New(Config{Level: "error", Format: "json", Output: io.Discard})
}
