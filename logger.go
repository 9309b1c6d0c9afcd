package vpath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with path construction.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for vpath and its sub-packages.
// By default, vpath produces no log output. Pass nil to restore the
// silent default.
//
// Only [slog.LevelDebug] is used: copy-on-write detaches and shape calls
// skipped because of degenerate input.
//
// Example:
//
//	vpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by vpath.
// Sub-packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether debug records would be emitted.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

// logSkipped records a shape call that produced no geometry.
func logSkipped(op string, attrs ...any) {
	if !debugEnabled() {
		return
	}
	Logger().Debug("vpath: degenerate input, nothing added", append([]any{"op", op}, attrs...)...)
}
