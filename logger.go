package vkcontext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelTrace is the level used for verbose-severity diagnostic events,
// below slog.LevelDebug so they can be filtered independently.
const LevelTrace = slog.LevelDebug - 4

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine,
// including the driver-owned thread that delivers diagnostic events.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for vkcontext. By default the package
// produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by vkcontext:
//   - [LevelTrace]: verbose-severity diagnostic events
//   - [slog.LevelDebug]: info-severity diagnostic events
//   - [slog.LevelInfo]: lifecycle events (loader version, portability mode)
//   - [slog.LevelWarn]: warning-severity diagnostic events
//   - [slog.LevelError]: fatal diagnostic events, logged just before abort
//
// Example:
//
//	vkcontext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: vkcontext.LevelTrace,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by vkcontext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
