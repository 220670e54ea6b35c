package texloc

import (
	"time"

	"github.com/hupe1980/texloc/marker"
	"github.com/hupe1980/texloc/model"
)

// JobFailure is a cell that could not be scanned.
type JobFailure struct {
	Cell model.CellCoord
	Err  error
}

// Report summarizes one run.
type Report struct {
	RunID string

	// Targets are the textures searched for.
	Targets []string
	// Headers is the number of cell headers consulted.
	Headers int
	// Candidates is the number of cells scanned.
	Candidates int
	// RawMarks is the number of marks before reduction.
	RawMarks int
	// Kept is the number of coordinates written.
	Kept int
	// Markers lists per-marker counts, sorted by name.
	Markers []marker.GroupStats
	// FailedJobs lists the skipped cells in (x, y) order.
	FailedJobs []JobFailure
	// VisibilityLimited reports whether the visibility threshold was reached.
	VisibilityLimited bool

	Duration time.Duration
}
