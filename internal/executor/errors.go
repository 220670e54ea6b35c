package executor

import (
	"fmt"

	"github.com/hupe1980/texloc/model"
)

// JobError records the failure of a single job.
type JobError struct {
	Job model.Job
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: %v", e.Job, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panicking worker.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker panic: %v", e.Value)
}
