package textlayout

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler silently drops all log records. Enabled returns false
// so disabled logging costs no formatting work.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

// loggerPtr stores the active logger, replaced atomically by SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(discardHandler{}))
}

// SetLogger configures the logger used by this package. The root
// package propagates its logger here; set it directly only when using
// textlayout on its own. Pass nil to silence logging.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// slogger returns the current logger.
func slogger() *slog.Logger {
	return loggerPtr.Load()
}
