// Package executor fans independent cell jobs out over a bounded worker pool.
//
// Run waits for every job before returning (full fan-out, fan-in). A job
// that fails, including one whose worker panics, is reported as a JobError
// and contributes no marks; the remaining jobs are unaffected. Only
// cancellation of the run's context aborts the batch.
package executor
