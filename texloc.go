package texloc

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/internal/cache"
	"github.com/hupe1980/texloc/internal/executor"
	"github.com/hupe1980/texloc/marker"
	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/scanner"
	"github.com/hupe1980/texloc/selector"
	"github.com/hupe1980/texloc/texindex"
	"github.com/hupe1980/texloc/worldmap"
)

// Locator runs texture searches against one map.
//
// Headers are loaded on the first run and reused afterwards. A Locator is
// safe for concurrent use.
type Locator struct {
	opts   options
	loader *worldmap.Loader

	mu      sync.Mutex
	headers *worldmap.HeaderSet
}

// New returns a Locator reading map data from store.
func New(store blobstore.BlobStore, optFns ...Option) (*Locator, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.cacheBytes > 0 {
		store = blobstore.NewCachingStore(store, cache.NewLRUBlockCache(opts.cacheBytes, opts.resourceController), 0)
	}

	return &Locator{
		opts: opts,
		loader: worldmap.NewLoader(store,
			worldmap.WithResourceController(opts.resourceController),
			worldmap.WithHeaderParallelism(opts.headerParallelism),
		),
		headers: opts.headers,
	}, nil
}

// Headers returns the map's cell headers, loading them on first use.
func (l *Locator) Headers(ctx context.Context) (*worldmap.HeaderSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.headers != nil {
		return l.headers, nil
	}

	start := time.Now()
	hs, err := l.loader.LoadAllHeaders(ctx)
	elapsed := time.Since(start)
	l.opts.metricsCollector.RecordHeaders(hsLen(hs), elapsed, err)
	if err != nil {
		l.opts.logger.LogHeaders(ctx, 0, 0, elapsed, err)
		return nil, err
	}
	l.opts.logger.LogHeaders(ctx, hs.Len(), hs.Dict().Len(), elapsed, nil)

	l.headers = hs
	return hs, nil
}

func hsLen(hs *worldmap.HeaderSet) int {
	if hs == nil {
		return 0
	}
	return hs.Len()
}

// Locate searches the map for the textures of ix and returns the reduced,
// annotated marker set.
//
// Missing cells contribute nothing. Cells that fail to load or scan are
// skipped and listed in the report. The run fails only if the headers
// cannot be loaded, ix has no targets, or ctx is done.
func (l *Locator) Locate(ctx context.Context, ix *texindex.Index) (model.MarkerSet, *Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	log := l.opts.logger.WithRunID(report.RunID)

	set, err := l.locate(ctx, ix, report, log)
	report.Duration = time.Since(start)

	l.opts.metricsCollector.RecordRun(report.Candidates, report.Kept, len(report.FailedJobs), report.Duration, err)
	log.LogRun(ctx, report, err)
	if err != nil {
		return nil, report, err
	}
	return set, report, nil
}

func (l *Locator) locate(ctx context.Context, ix *texindex.Index, report *Report, log *Logger) (model.MarkerSet, error) {
	if ix == nil || ix.Len() == 0 {
		return nil, ErrNoTargets
	}
	report.Targets = ix.Textures()

	headers, err := l.Headers(ctx)
	if err != nil {
		return nil, err
	}
	report.Headers = headers.Len()

	jobs := selector.SelectTextures(headers, report.Targets)
	report.Candidates = len(jobs)
	log.LogCandidates(ctx, report.Targets, len(jobs))

	sc := scanner.New(l.loader, ix)
	scan := func(ctx context.Context, job model.Job) ([]model.RawMark, error) {
		t := time.Now()
		marks, err := sc.Scan(ctx, job)
		l.opts.metricsCollector.RecordScan(len(marks), time.Since(t), err)
		return marks, err
	}

	scanStart := time.Now()
	res, err := executor.Run(ctx, jobs, scan, l.opts.parallelism,
		executor.WithJobErrorHandler(func(e *executor.JobError) {
			log.LogJobFailed(ctx, e.Job, e.Err)
		}),
		executor.WithProgress(func(done, total int) {
			log.LogScanProgress(ctx, done, total)
		}),
	)
	if err != nil {
		return nil, err
	}
	for _, f := range res.Failed {
		report.FailedJobs = append(report.FailedJobs, JobFailure{Cell: f.Job.Cell, Err: f.Err})
	}

	raw := res.Flatten()
	report.RawMarks = len(raw)
	log.LogScanComplete(ctx, len(jobs), len(raw), len(res.Failed), time.Since(scanStart))

	reduced, stats := marker.Reduce(marker.Aggregate(raw))
	for _, s := range stats {
		log.LogMarker(ctx, s.Name, s.Kept, s.Found)
		report.Kept += s.Kept
	}
	report.Markers = stats

	set, limited := marker.Annotate(reduced, l.opts.visibilityThreshold)
	report.VisibilityLimited = limited
	return set, nil
}
