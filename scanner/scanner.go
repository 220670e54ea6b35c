// Package scanner turns one candidate cell into raw marks.
package scanner

import (
	"context"
	"errors"

	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/texindex"
	"github.com/hupe1980/texloc/worldmap"
)

// CellLoader loads the square grid of a cell.
// *worldmap.Loader implements it.
type CellLoader interface {
	LoadCell(ctx context.Context, c model.CellCoord) (*worldmap.Cell, error)
}

// Scanner finds target textures in cells. It holds no mutable state and
// can be shared by any number of workers.
type Scanner struct {
	loader CellLoader
	index  *texindex.Index
}

// New returns a Scanner that resolves matches through index.
func New(loader CellLoader, index *texindex.Index) *Scanner {
	return &Scanner{loader: loader, index: index}
}

// Scan loads the cell of job and returns one mark per (square, matching
// texture, marker name). A cell that does not exist yields no marks and no
// error; any other load failure is returned.
//
// Squares are visited by local x, then y, then layer.
func (s *Scanner) Scan(ctx context.Context, job model.Job) ([]model.RawMark, error) {
	cell, err := s.loader.LoadCell(ctx, job.Cell)
	if err != nil {
		if errors.Is(err, worldmap.ErrCellAbsent) {
			return nil, nil
		}
		return nil, err
	}
	return s.ScanCell(ctx, job.Cell, cell)
}

// ScanCell scans an already loaded cell located at c.
func (s *Scanner) ScanCell(ctx context.Context, c model.CellCoord, cell *worldmap.Cell) ([]model.RawMark, error) {
	palette := cell.Palette()
	resolved := make([][]string, len(palette))
	matched := false
	for i, tex := range palette {
		resolved[i] = s.index.Markers(tex)
		matched = matched || len(resolved[i]) > 0
	}
	if !matched {
		return nil, nil
	}

	size := cell.Size()
	baseX, baseY := c.X*size, c.Y*size

	var marks []model.RawMark
	for x := 0; x < size; x++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for y := 0; y < size; y++ {
			for layer := cell.MinLayer(); layer < cell.MaxLayer(); layer++ {
				for _, p := range cell.SquareIndices(x, y, layer) {
					for _, name := range resolved[p] {
						marks = append(marks, model.RawMark{
							Kind:       model.KindPoint,
							MarkerName: name,
							WorldX:     baseX + x,
							WorldY:     baseY + y,
							Layer:      layer,
						})
					}
				}
			}
		}
	}
	return marks, nil
}
