package reliefgo

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures facade behavior around a wrapped engine.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// estimations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &reliefgo.BasicMetricsCollector{}
//	est, _ := reliefgo.New(engine, reliefgo.WithMetricsCollector(metrics))
//	// ... use est ...
//	stats := metrics.GetStats()
//	fmt.Printf("Estimates: %d, Avg latency: %dns\n", stats.EstimateCount, stats.EstimateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for estimations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := reliefgo.NewJSONLogger(slog.LevelInfo)
//	est, _ := reliefgo.New(engine, reliefgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
