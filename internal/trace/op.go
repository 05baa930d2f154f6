package trace

import (
	"context"
	"log/slog"
	"time"
)

// Op represents a running operation with automatic start/end logging.
//
// Create via [Begin]. It is safe to call End on a nil *Op, so callers can
// unconditionally defer the end log.
type Op struct {
	logger    *slog.Logger
	name      string
	startTime time.Time
	ended     bool
}

// Begin starts a new operation span and logs it at Debug level.
//
// When logging is disabled (nil logger or level above Debug), Begin
// returns nil so that the span costs nothing. Operation names follow
// jsontree.<package>.<operation>.
func Begin(logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if !Enabled(logger, slog.LevelDebug) {
		return nil
	}

	logAttrs := make([]slog.Attr, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("op", name))
	logAttrs = append(logAttrs, attrs...)
	logger.LogAttrs(context.Background(), slog.LevelDebug, "operation started", logAttrs...)

	return &Op{logger: logger, name: name, startTime: time.Now()}
}

// End logs the operation completion with its duration and, when err is
// non-nil, the error. The first call logs; subsequent calls are ignored,
// so End may be called explicitly and again via defer.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil || o.ended {
		return
	}
	o.ended = true

	elapsed := time.Since(o.startTime)
	logAttrs := make([]slog.Attr, 0, len(attrs)+3)
	logAttrs = append(logAttrs,
		slog.String("op", o.name),
		slog.Duration("duration", elapsed),
	)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)

	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "operation ended", logAttrs...)
}
