package texloc

import (
	"fmt"

	"github.com/hupe1980/texloc/internal/resource"
	"github.com/hupe1980/texloc/worldmap"
)

const (
	// DefaultParallelism is the number of cells scanned concurrently.
	DefaultParallelism = 16
	// DefaultVisibilityThreshold is the total marker count at which every
	// marker group gets a reduced visible zoom level.
	DefaultVisibilityThreshold = 128
)

type options struct {
	parallelism         int
	visibilityThreshold int
	cacheBytes          int64
	headerParallelism   int
	metricsCollector    MetricsCollector
	logger              *Logger
	resourceController  *resource.Controller
	headers             *worldmap.HeaderSet
}

func defaultOptions() options {
	return options{
		parallelism:         DefaultParallelism,
		visibilityThreshold: DefaultVisibilityThreshold,
		headerParallelism:   worldmap.DefaultHeaderParallelism,
		metricsCollector:    NoopMetricsCollector{},
		logger:              NoopLogger(),
	}
}

// Validate reports invalid option combinations.
func (o *options) Validate() error {
	if o.parallelism <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, o.parallelism)
	}
	if o.visibilityThreshold < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, o.visibilityThreshold)
	}
	return nil
}

// Option configures a Locator.
type Option func(*options)

// WithParallelism sets how many cells are scanned at the same time.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithVisibilityThreshold sets the total number of kept coordinates at
// which every marker group is limited to the reduced zoom level.
// Zero disables the limit.
func WithVisibilityThreshold(n int) Option {
	return func(o *options) {
		o.visibilityThreshold = n
	}
}

// WithCache puts an LRU block cache of the given size in front of the
// store. Useful for remote stores when a Locator runs more than once.
func WithCache(bytes int64) Option {
	return func(o *options) {
		o.cacheBytes = bytes
	}
}

// WithHeaderParallelism sets how many header blobs are read concurrently.
func WithHeaderParallelism(n int) Option {
	return func(o *options) {
		o.headerParallelism = n
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &texloc.BasicMetricsCollector{}
//	loc, _ := texloc.New(store, texloc.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example:
//
//	loc, _ := texloc.New(store, texloc.WithLogger(texloc.NewJSONLogger(slog.LevelDebug)))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithResourceController limits concurrent blob reads, read bandwidth and
// block cache memory.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resourceController = rc
	}
}

// WithHeaders supplies an already loaded header set instead of reading
// headers from the store.
func WithHeaders(hs *worldmap.HeaderSet) Option {
	return func(o *options) {
		o.headers = hs
	}
}
