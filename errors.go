package texloc

import "errors"

var (
	// ErrNoTargets is returned when a run has no target textures.
	ErrNoTargets = errors.New("texloc: no target textures")

	// ErrInvalidParallelism is returned for a worker count below one.
	ErrInvalidParallelism = errors.New("texloc: parallelism must be positive")

	// ErrInvalidThreshold is returned for a negative visibility threshold.
	ErrInvalidThreshold = errors.New("texloc: visibility threshold must not be negative")
)
