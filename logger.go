package texloc

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/texloc/model"
)

// Logger wraps slog.Logger with texloc-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRunID tags every record with the run id.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// LogHeaders logs the header load.
func (l *Logger) LogHeaders(ctx context.Context, count, textures int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "loading cell headers failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "cell headers loaded",
		"headers", count,
		"textures", textures,
		"duration", duration,
	)
}

// LogCandidates logs the outcome of candidate selection.
func (l *Logger) LogCandidates(ctx context.Context, targets []string, candidates int) {
	l.InfoContext(ctx, "cells containing targets",
		"targets", targets,
		"candidates", candidates,
	)
}

// LogJobFailed logs a skipped job.
func (l *Logger) LogJobFailed(ctx context.Context, job model.Job, err error) {
	l.WarnContext(ctx, "cell scan failed, skipping",
		"cell_x", job.Cell.X,
		"cell_y", job.Cell.Y,
		"error", err,
	)
}

// LogScanProgress logs scan progress at debug level, once per tenth of the
// jobs and once at the end.
func (l *Logger) LogScanProgress(ctx context.Context, done, total int) {
	step := max(1, total/10)
	if done%step != 0 && done != total {
		return
	}
	l.DebugContext(ctx, "scan progress",
		"done", done,
		"total", total,
	)
}

// LogScanComplete logs the end of the parallel scan.
func (l *Logger) LogScanComplete(ctx context.Context, jobs, rawMarks, failed int, duration time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "scan completed with failures",
			"jobs", jobs,
			"failed", failed,
			"raw_marks", rawMarks,
			"duration", duration,
		)
	} else {
		l.InfoContext(ctx, "scan completed",
			"jobs", jobs,
			"raw_marks", rawMarks,
			"duration", duration,
		)
	}
}

// LogMarker logs how one marker group was reduced.
func (l *Logger) LogMarker(ctx context.Context, name string, kept, found int) {
	l.InfoContext(ctx, "marker filtered",
		"marker", name,
		"kept", kept,
		"found", found,
	)
}

// LogRun logs the result of a whole run.
func (l *Logger) LogRun(ctx context.Context, r *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"markers", len(r.Markers),
		"kept", r.Kept,
		"visibility_limited", r.VisibilityLimited,
		"duration", r.Duration,
	)
}
