package worldmap

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/texloc/model"
)

// CellHeader summarizes which textures occur anywhere in one cell.
type CellHeader struct {
	Cell     model.CellCoord
	Textures *roaring.Bitmap
}

// IsEmpty reports whether the header lists no textures.
func (h *CellHeader) IsEmpty() bool {
	return h == nil || h.Textures == nil || h.Textures.IsEmpty()
}

// HeaderSet is the immutable set of all cell headers of a map.
type HeaderSet struct {
	dict    *TextureDict
	headers map[model.CellCoord]*CellHeader
	cells   []model.CellCoord
}

// NewHeaderSet builds a HeaderSet from per-cell texture name lists.
// Names are interned in (x, y) cell order so ids are reproducible.
func NewHeaderSet(textures map[model.CellCoord][]string) *HeaderSet {
	s := &HeaderSet{
		dict:    newTextureDict(),
		headers: make(map[model.CellCoord]*CellHeader, len(textures)),
		cells:   make([]model.CellCoord, 0, len(textures)),
	}
	for c := range textures {
		s.cells = append(s.cells, c)
	}
	slices.SortFunc(s.cells, model.CellCoord.Compare)

	for _, c := range s.cells {
		bm := roaring.New()
		for _, name := range textures[c] {
			bm.Add(s.dict.intern(name))
		}
		bm.RunOptimize()
		s.headers[c] = &CellHeader{Cell: c, Textures: bm}
	}
	return s
}

// Len returns the number of headers.
func (s *HeaderSet) Len() int {
	return len(s.cells)
}

// Get returns the header of cell c.
func (s *HeaderSet) Get(c model.CellCoord) (*CellHeader, bool) {
	h, ok := s.headers[c]
	return h, ok
}

// Cells returns all cells that have a header, sorted by (x, y).
func (s *HeaderSet) Cells() []model.CellCoord {
	return slices.Clone(s.cells)
}

// Dict returns the texture dictionary the headers are expressed in.
func (s *HeaderSet) Dict() *TextureDict {
	return s.dict
}

// TargetBitmap translates target texture names into header ids.
func (s *HeaderSet) TargetBitmap(names []string) *roaring.Bitmap {
	return s.dict.Bitmap(names)
}

// Names returns the texture names listed in the header of cell c.
func (s *HeaderSet) Names(c model.CellCoord) []string {
	h, ok := s.headers[c]
	if !ok {
		return nil
	}
	out := make([]string, 0, h.Textures.GetCardinality())
	it := h.Textures.Iterator()
	for it.HasNext() {
		name, _ := s.dict.Name(it.Next())
		out = append(out, name)
	}
	return out
}
