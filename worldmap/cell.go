package worldmap

import (
	"fmt"
	"slices"

	"github.com/hupe1980/texloc/internal/conv"
)

// Cell is the decoded square grid of one map cell.
//
// Squares are addressed by local x and y in [0, Size()) and by layer in
// [MinLayer(), MaxLayer()). Each square holds zero or more indices into the
// cell's texture palette. A Cell is immutable and safe for concurrent reads.
type Cell struct {
	size     int
	minLayer int
	maxLayer int
	palette  []string

	// offsets[i]..offsets[i+1] delimits square i in indices.
	offsets []uint32
	indices []uint32
}

// Size returns the edge length of the cell in squares.
func (c *Cell) Size() int { return c.size }

// MinLayer returns the lowest layer stored in the cell.
func (c *Cell) MinLayer() int { return c.minLayer }

// MaxLayer returns the exclusive upper layer bound.
func (c *Cell) MaxLayer() int { return c.maxLayer }

// Palette returns the texture names referenced by square indices.
// The slice must not be modified.
func (c *Cell) Palette() []string { return c.palette }

func (c *Cell) squareCount() int {
	return (c.maxLayer - c.minLayer) * c.size * c.size
}

func (c *Cell) squareIndex(x, y, layer int) (int, bool) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size || layer < c.minLayer || layer >= c.maxLayer {
		return 0, false
	}
	return ((layer-c.minLayer)*c.size+x)*c.size + y, true
}

// SquareIndices returns the palette indices of the square at (x, y, layer),
// or nil when the square is empty or out of bounds.
// The slice aliases the cell and must not be modified.
func (c *Cell) SquareIndices(x, y, layer int) []uint32 {
	i, ok := c.squareIndex(x, y, layer)
	if !ok {
		return nil
	}
	lo, hi := c.offsets[i], c.offsets[i+1]
	if lo == hi {
		return nil
	}
	return c.indices[lo:hi:hi]
}

// Square returns the texture names at (x, y, layer).
func (c *Cell) Square(x, y, layer int) []string {
	idx := c.SquareIndices(x, y, layer)
	if len(idx) == 0 {
		return nil
	}
	out := make([]string, len(idx))
	for i, p := range idx {
		out[i] = c.palette[p]
	}
	return out
}

// Textures returns the distinct texture names used by any square, sorted.
// This is the content a header for the cell should list.
func (c *Cell) Textures() []string {
	seen := make([]bool, len(c.palette))
	for _, p := range c.indices {
		seen[p] = true
	}
	var out []string
	for i, ok := range seen {
		if ok {
			out = append(out, c.palette[i])
		}
	}
	slices.Sort(out)
	return out
}

// CellBuilder assembles a Cell square by square.
type CellBuilder struct {
	size     int
	minLayer int
	maxLayer int

	palette    []string
	paletteIdx map[string]uint32
	squares    map[int][]uint32
	err        error
}

// NewCellBuilder returns a builder for a cell of the given edge length
// and half-open layer range.
func NewCellBuilder(size, minLayer, maxLayer int) *CellBuilder {
	b := &CellBuilder{
		size:       size,
		minLayer:   minLayer,
		maxLayer:   maxLayer,
		paletteIdx: make(map[string]uint32),
		squares:    make(map[int][]uint32),
	}
	if size <= 0 {
		b.err = fmt.Errorf("worldmap: invalid cell size %d", size)
	} else if maxLayer < minLayer {
		b.err = fmt.Errorf("worldmap: invalid layer range [%d,%d)", minLayer, maxLayer)
	}
	return b
}

// Add places textures on the square at (x, y, layer). Adding a texture
// that is already on the square has no effect.
func (b *CellBuilder) Add(x, y, layer int, textures ...string) *CellBuilder {
	if b.err != nil {
		return b
	}
	probe := Cell{size: b.size, minLayer: b.minLayer, maxLayer: b.maxLayer}
	i, ok := probe.squareIndex(x, y, layer)
	if !ok {
		b.err = fmt.Errorf("worldmap: square (%d,%d,%d) out of bounds", x, y, layer)
		return b
	}
	for _, t := range textures {
		p, ok := b.paletteIdx[t]
		if !ok {
			p = uint32(len(b.palette))
			b.paletteIdx[t] = p
			b.palette = append(b.palette, t)
		}
		if !slices.Contains(b.squares[i], p) {
			b.squares[i] = append(b.squares[i], p)
		}
	}
	return b
}

// Build returns the assembled cell.
func (b *CellBuilder) Build() (*Cell, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := &Cell{
		size:     b.size,
		minLayer: b.minLayer,
		maxLayer: b.maxLayer,
		palette:  slices.Clone(b.palette),
	}
	n := c.squareCount()
	c.offsets = make([]uint32, n+1)
	for i := 0; i < n; i++ {
		c.indices = append(c.indices, b.squares[i]...)
		off, err := conv.IntToUint32(len(c.indices))
		if err != nil {
			return nil, fmt.Errorf("worldmap: cell too large: %w", err)
		}
		c.offsets[i+1] = off
	}
	return c, nil
}
