package reliefgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with reliefgo-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEstimator adds an estimator name field to the logger.
func (l *Logger) WithEstimator(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("estimator", name),
	}
}

// WithInstances adds an instance count field to the logger.
func (l *Logger) WithInstances(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("instances", n),
	}
}

// WithFeatures adds a feature count field to the logger.
func (l *Logger) WithFeatures(m int) *Logger {
	return &Logger{
		Logger: l.Logger.With("features", m),
	}
}

// WithIteration adds an iteration field to the logger.
func (l *Logger) WithIteration(iteration int) *Logger {
	return &Logger{
		Logger: l.Logger.With("iteration", iteration),
	}
}

// LogEstimate logs a completed weight estimation.
func (l *Logger) LogEstimate(ctx context.Context, name string, instances, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "estimate failed",
			"estimator", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "estimate completed",
			"estimator", name,
			"instances", instances,
			"features", features,
		)
	}
}
