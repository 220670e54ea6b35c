package worldmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/internal/resource"
	"github.com/hupe1980/texloc/model"
	"golang.org/x/sync/errgroup"
)

// DefaultHeaderParallelism bounds concurrent header reads.
const DefaultHeaderParallelism = 32

// Loader reads headers and cells of one map from a blob store.
// A Loader is safe for concurrent use.
type Loader struct {
	store             blobstore.BlobStore
	rc                *resource.Controller
	headerParallelism int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithResourceController limits concurrent reads and read bandwidth.
func WithResourceController(rc *resource.Controller) LoaderOption {
	return func(l *Loader) {
		l.rc = rc
	}
}

// WithHeaderParallelism sets how many headers are read concurrently.
func WithHeaderParallelism(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.headerParallelism = n
		}
	}
}

// NewLoader returns a Loader for the map stored in store.
func NewLoader(store blobstore.BlobStore, optFns ...LoaderOption) *Loader {
	l := &Loader{
		store:             store,
		headerParallelism: DefaultHeaderParallelism,
	}
	for _, fn := range optFns {
		fn(l)
	}
	return l
}

// LoadAllHeaders reads every header blob of the map.
//
// Blobs whose name is not a header name are ignored, as are headers that
// vanish between listing and reading. A corrupt header fails the load:
// without it the cell could never be selected.
func (l *Loader) LoadAllHeaders(ctx context.Context) (*HeaderSet, error) {
	names, err := l.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("worldmap: list headers: %w", err)
	}

	type entry struct {
		cell     model.CellCoord
		name     string
		textures []string
		present  bool
	}
	var entries []*entry
	for _, name := range names {
		if c, ok := ParseHeaderName(name); ok {
			entries = append(entries, &entry{cell: c, name: name})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.headerParallelism)
	for _, e := range entries {
		g.Go(func() error {
			err := l.read(gctx, e.name, func(data []byte) error {
				textures, err := DecodeHeader(data)
				if err != nil {
					return err
				}
				e.textures = textures
				return nil
			})
			switch {
			case err == nil:
				e.present = true
				return nil
			case errors.Is(err, blobstore.ErrNotFound):
				return nil
			default:
				return fmt.Errorf("worldmap: header %s: %w", e.name, err)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	textures := make(map[model.CellCoord][]string, len(entries))
	for _, e := range entries {
		if e.present {
			textures[e.cell] = e.textures
		}
	}
	return NewHeaderSet(textures), nil
}

// LoadCell reads and decodes the cell blob of c.
//
// A missing blob yields an error matching both ErrCellAbsent and
// blobstore.ErrNotFound; a malformed one yields ErrCorrupt.
func (l *Loader) LoadCell(ctx context.Context, c model.CellCoord) (*Cell, error) {
	name := CellName(c)
	var cell *Cell
	err := l.read(ctx, name, func(data []byte) error {
		var err error
		cell, err = DecodeCell(data)
		return err
	})
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s: %w", ErrCellAbsent, name, err)
		}
		return nil, fmt.Errorf("worldmap: cell %s: %w", name, err)
	}
	return cell, nil
}

// read hands the full content of blob name to decode. data is only valid
// during the call.
func (l *Loader) read(ctx context.Context, name string, decode func(data []byte) error) error {
	if err := l.rc.AcquireRead(ctx); err != nil {
		return err
	}
	defer l.rc.ReleaseRead()

	b, err := l.store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := l.rc.AcquireIO(ctx, int(b.Size())); err != nil {
		return err
	}
	data, err := blobstore.ReadAll(ctx, b)
	if err != nil {
		return err
	}
	return decode(data)
}
