package executor

import (
	"context"
	"errors"
	"runtime/debug"
	"sync/atomic"

	"github.com/hupe1980/texloc/model"
	"golang.org/x/sync/errgroup"
)

// WorkerFunc scans one job.
type WorkerFunc func(ctx context.Context, job model.Job) ([]model.RawMark, error)

// Result holds the outcome of a batch.
type Result struct {
	// Marks has one entry per job in submission order. Failed jobs have a
	// nil entry.
	Marks [][]model.RawMark
	// Failed lists the failed jobs in submission order.
	Failed []*JobError
}

// Flatten concatenates all per-job mark lists.
func (r *Result) Flatten() []model.RawMark {
	n := 0
	for _, m := range r.Marks {
		n += len(m)
	}
	out := make([]model.RawMark, 0, n)
	for _, m := range r.Marks {
		out = append(out, m...)
	}
	return out
}

// Option configures Run.
type Option func(*options)

type options struct {
	onJobError func(*JobError)
	onProgress func(done, total int)
}

// WithJobErrorHandler is called for every failed job, from the worker goroutine.
func WithJobErrorHandler(fn func(*JobError)) Option {
	return func(o *options) {
		o.onJobError = fn
	}
}

// WithProgress is called after every finished job, from the worker goroutine.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.onProgress = fn
	}
}

// Run executes fn for every job with at most parallelism jobs in flight.
//
// It returns an error only if ctx is done before all jobs have finished.
func Run(ctx context.Context, jobs []model.Job, fn WorkerFunc, parallelism int, optFns ...Option) (*Result, error) {
	if parallelism <= 0 {
		parallelism = 1
	}
	opts := options{}
	for _, o := range optFns {
		o(&opts)
	}

	res := &Result{Marks: make([][]model.RawMark, len(jobs))}
	failed := make([]*JobError, len(jobs))
	var done atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(parallelism)

	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			marks, err := runJob(ctx, job, fn)
			if err != nil {
				if ctx.Err() != nil && isContextErr(err) {
					return err
				}
				jerr := &JobError{Job: job, Err: err}
				failed[i] = jerr
				if opts.onJobError != nil {
					opts.onJobError(jerr)
				}
			} else {
				res.Marks[i] = marks
			}

			if opts.onProgress != nil {
				opts.onProgress(int(done.Add(1)), len(jobs))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range failed {
		if f != nil {
			res.Failed = append(res.Failed, f)
		}
	}
	return res, nil
}

func runJob(ctx context.Context, job model.Job, fn WorkerFunc) (marks []model.RawMark, err error) {
	defer func() {
		if r := recover(); r != nil {
			marks = nil
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(ctx, job)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
