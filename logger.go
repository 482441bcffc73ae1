package izsieve

import (
	"context"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with sieve/range-driver-specific context.
// It is the only piece of process-wide state the core needs; callers pass
// it explicitly rather than reaching for a package-level global.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithRun adds a run_id field, correlating all log lines for one
// SiZ_stream/SiZ_count invocation.
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", runID)}
}

// WithSegment adds a y-segment field.
func (l *Logger) WithSegment(y uint64) *Logger {
	return &Logger{Logger: l.Logger.With("y", y)}
}

// WithVX adds a vx (wheel width) field.
func (l *Logger) WithVX(vx int) *Logger {
	return &Logger{Logger: l.Logger.With("vx", vx)}
}

// LogSegmentMarked logs completion of deterministic marking for one segment.
func (l *Logger) LogSegmentMarked(ctx context.Context, y uint64, bitOps uint64) {
	l.DebugContext(ctx, "segment marked", "y", y, "bit_ops", bitOps)
}

// LogProbabilisticCleanup logs a Miller-Rabin cleanup pass over a
// large-limit segment.
func (l *Logger) LogProbabilisticCleanup(ctx context.Context, y uint64, rounds, tested, cleared int) {
	l.DebugContext(ctx, "probabilistic cleanup",
		"y", y, "mr_rounds", rounds, "tested", tested, "cleared", cleared)
}

// LogChildSpawn logs the creation of a worker process for count/stream
// fan-out.
func (l *Logger) LogChildSpawn(ctx context.Context, core, segments int) {
	l.InfoContext(ctx, "worker spawned", "core", core, "segments", segments)
}

// LogChildExit logs a worker process result, including a humanized
// throughput figure for operator-facing logs.
func (l *Logger) LogChildExit(ctx context.Context, core int, count uint64, elapsedSegmentsPerSec float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "worker failed", "core", core, "error", err)
		return
	}
	l.InfoContext(ctx, "worker completed",
		"core", core,
		"count", count,
		"throughput", humanize.SIWithDigits(elapsedSegmentsPerSec, 2, "seg/s"),
	)
}

// LogBoundaryCorrection logs an endpoint reconciliation decrement applied
// after aggregating segment counts.
func (l *Logger) LogBoundaryCorrection(ctx context.Context, reason string) {
	l.DebugContext(ctx, "boundary correction applied", "reason", reason)
}

// LogChecksumMismatch logs a failed integrity check on deserialization.
func (l *Logger) LogChecksumMismatch(ctx context.Context, source string, err error) {
	l.ErrorContext(ctx, "checksum mismatch", "source", source, "error", err)
}
