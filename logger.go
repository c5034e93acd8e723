package labelcell

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with labelcell-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLabels adds the label count field to the logger.
func (l *Logger) WithLabels(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("labels", n),
	}
}

// WithCodec adds a codec name field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogLabelCountMismatch logs a text cell whose count token differs from the
// cell's label count. The mismatch is tolerated unless strict decoding is on.
func (l *Logger) LogLabelCountMismatch(ctx context.Context, expected, actual int, strict bool) {
	if strict {
		l.WarnContext(ctx, "label count mismatch rejected",
			"expected", expected,
			"actual", actual,
		)
		return
	}
	l.DebugContext(ctx, "label count mismatch ignored",
		"expected", expected,
		"actual", actual,
	)
}

// LogSnapshotWrite logs a completed or failed snapshot write.
func (l *Logger) LogSnapshotWrite(ctx context.Context, cells int, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot write failed",
			"cells", cells,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot written",
			"cells", cells,
			"bytes", bytes,
		)
	}
}

// LogSnapshotRead logs a completed or failed snapshot read.
func (l *Logger) LogSnapshotRead(ctx context.Context, cells int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot read failed",
			"cells", cells,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot read",
			"cells", cells,
		)
	}
}
