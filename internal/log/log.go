// Package log provides context-aware logging for flow.
//
// Diagnostics are written to the logger's writer (stderr in the CLI).
// Primary data output goes through the output package instead.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	clog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger provides plain output, leveled diagnostics and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	diag    *clog.Logger
}

// New creates a new logger.
// verbose enables debug diagnostics and command logging, quiet drops everything.
func New(out io.Writer, verbose, quiet bool) *Logger {
	if quiet {
		out = io.Discard
	}

	diag := clog.NewWithOptions(out, clog.Options{Prefix: "flow", Level: clog.WarnLevel})
	if verbose {
		diag.SetLevel(clog.DebugLevel)
	}

	return &Logger{out: out, verbose: verbose, quiet: quiet, diag: diag}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	fmt.Fprintln(l.out, args...)
}

// Command logs an external command execution.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if l.Verbose() {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.diag.Debug(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.diag.Info(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.diag.Warn(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.diag.Error(msg, keyvals...) }

// Verbose returns true if verbose mode is enabled and not silenced by quiet.
func (l *Logger) Verbose() bool {
	return l.verbose && !l.quiet
}

// Quiet returns true if all output is suppressed.
func (l *Logger) Quiet() bool {
	return l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
