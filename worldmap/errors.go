package worldmap

import "errors"

var (
	// ErrCellAbsent is returned by LoadCell when the cell blob does not exist.
	// The returned error also satisfies errors.Is(err, blobstore.ErrNotFound).
	ErrCellAbsent = errors.New("worldmap: cell absent")

	// ErrCorrupt is returned when a header or cell blob fails validation:
	// bad magic, unsupported version, checksum mismatch or truncated payload.
	ErrCorrupt = errors.New("worldmap: corrupt blob")
)
