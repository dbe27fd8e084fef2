package fold

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Loader goroutines log while the
// render loop may be calling SetLogger, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fold and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by fold:
//   - [slog.LevelDebug]: load requests, cache hits, decode sizes
//   - [slog.LevelInfo]: glance image became available
//   - [slog.LevelWarn]: glance load failed (the effect stays disabled)
//
// Example:
//
//	fold.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The loader package calls this so
// that one SetLogger call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
