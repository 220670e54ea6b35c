package texloc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordHeaders is called after the cell headers have been loaded.
	RecordHeaders(count int, duration time.Duration, err error)

	// RecordScan is called after each cell scan. err is nil for
	// successful scans and for absent cells.
	RecordScan(marks int, duration time.Duration, err error)

	// RecordRun is called after each run.
	RecordRun(candidates, kept, failed int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordHeaders(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	HeaderLoads    atomic.Int64
	HeadersLoaded  atomic.Int64
	ScanCount      atomic.Int64
	ScanErrors     atomic.Int64
	ScanMarks      atomic.Int64
	ScanTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunFailedJobs  atomic.Int64
	RunKept        atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordHeaders implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHeaders(count int, _ time.Duration, err error) {
	b.HeaderLoads.Add(1)
	if err == nil {
		b.HeadersLoaded.Add(int64(count))
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(marks int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	b.ScanMarks.Add(int64(marks))
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_, kept, failed int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.RunKept.Add(int64(kept))
	b.RunFailedJobs.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		HeadersLoaded: b.HeadersLoaded.Load(),
		ScanCount:     b.ScanCount.Load(),
		ScanErrors:    b.ScanErrors.Load(),
		ScanMarks:     b.ScanMarks.Load(),
		ScanAvgNanos:  avg(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunFailedJobs: b.RunFailedJobs.Load(),
		RunKept:       b.RunKept.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	HeadersLoaded int64
	ScanCount     int64
	ScanErrors    int64
	ScanMarks     int64
	ScanAvgNanos  int64
	RunCount      int64
	RunErrors     int64
	RunFailedJobs int64
	RunKept       int64
	RunAvgNanos   int64
}
