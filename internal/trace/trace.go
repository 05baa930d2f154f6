package trace

import (
	"context"
	"log/slog"
)

// Enabled reports whether logging at the given level is enabled.
// Returns false if logger is nil.
func Enabled(logger *slog.Logger, level slog.Level) bool {
	if logger == nil {
		return false
	}
	return logger.Enabled(context.Background(), level)
}

// Debug logs a message at Debug level if the logger is non-nil and enabled.
//
// Use for simple, pre-computed attributes only. The variadic attrs are
// evaluated at the call site even when logging is disabled; for computed
// attributes use [DebugLazy].
func Debug(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if !Enabled(logger, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// DebugLazy logs at Debug level with lazily-computed attributes.
//
// The fn is not called if logging is disabled, guaranteeing no allocation
// from attribute construction on the fast path.
func DebugLazy(logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if !Enabled(logger, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, fn()...)
}

// Warn logs a message at Warn level if the logger is non-nil and enabled.
func Warn(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if !Enabled(logger, slog.LevelWarn) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}
