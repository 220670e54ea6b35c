package testutil

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/texindex"
	"github.com/hupe1980/texloc/worldmap"
)

// Placement is one texture on one world square.
type Placement struct {
	WorldX  int
	WorldY  int
	Layer   int
	Texture string
}

type layerRange struct{ min, max int }

// MapBuilder assembles a synthetic map and writes it to a blob store.
type MapBuilder struct {
	cellSize    int
	layers      layerRange
	cellLayers  map[model.CellCoord]layerRange
	compression worldmap.Compression

	placements  []Placement
	headerOnly  map[model.CellCoord][]string
	cellsNoHead map[model.CellCoord]bool
}

// NewMapBuilder returns a builder for cells of edge length cellSize with a
// single layer 0.
func NewMapBuilder(cellSize int) *MapBuilder {
	return &MapBuilder{
		cellSize:    cellSize,
		layers:      layerRange{0, 1},
		cellLayers:  make(map[model.CellCoord]layerRange),
		compression: worldmap.CompressionLZ4,
		headerOnly:  make(map[model.CellCoord][]string),
		cellsNoHead: make(map[model.CellCoord]bool),
	}
}

// WithLayers sets the default half-open layer range of every cell.
func (b *MapBuilder) WithLayers(minLayer, maxLayer int) *MapBuilder {
	b.layers = layerRange{minLayer, maxLayer}
	return b
}

// WithCellLayers overrides the layer range of one cell.
func (b *MapBuilder) WithCellLayers(c model.CellCoord, minLayer, maxLayer int) *MapBuilder {
	b.cellLayers[c] = layerRange{minLayer, maxLayer}
	return b
}

// WithCompression sets how cell blobs are compressed.
func (b *MapBuilder) WithCompression(c worldmap.Compression) *MapBuilder {
	b.compression = c
	return b
}

// Place puts textures on the world square (x, y, layer).
func (b *MapBuilder) Place(x, y, layer int, textures ...string) *MapBuilder {
	for _, t := range textures {
		b.placements = append(b.placements, Placement{WorldX: x, WorldY: y, Layer: layer, Texture: t})
	}
	return b
}

// HeaderOnly writes a header for c without any cell data.
func (b *MapBuilder) HeaderOnly(c model.CellCoord, textures ...string) *MapBuilder {
	b.headerOnly[c] = append(b.headerOnly[c], textures...)
	return b
}

// WithoutHeader writes the cell data of c but no header.
func (b *MapBuilder) WithoutHeader(c model.CellCoord) *MapBuilder {
	b.cellsNoHead[c] = true
	return b
}

// Placements returns every placed texture.
func (b *MapBuilder) Placements() []Placement {
	return slices.Clone(b.placements)
}

// CellOf returns the cell containing world square (x, y).
func (b *MapBuilder) CellOf(x, y int) model.CellCoord {
	return model.CellCoord{X: floorDiv(x, b.cellSize), Y: floorDiv(y, b.cellSize)}
}

// Cells builds the cells that have at least one placement.
func (b *MapBuilder) Cells() (map[model.CellCoord]*worldmap.Cell, error) {
	builders := make(map[model.CellCoord]*worldmap.CellBuilder)
	for _, p := range b.placements {
		c := b.CellOf(p.WorldX, p.WorldY)
		cb, ok := builders[c]
		if !ok {
			lr, ok := b.cellLayers[c]
			if !ok {
				lr = b.layers
			}
			cb = worldmap.NewCellBuilder(b.cellSize, lr.min, lr.max)
			builders[c] = cb
		}
		cb.Add(p.WorldX-c.X*b.cellSize, p.WorldY-c.Y*b.cellSize, p.Layer, p.Texture)
	}

	cells := make(map[model.CellCoord]*worldmap.Cell, len(builders))
	for c, cb := range builders {
		cell, err := cb.Build()
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", c, err)
		}
		cells[c] = cell
	}
	return cells, nil
}

// Write stores headers and cells in store.
func (b *MapBuilder) Write(ctx context.Context, store blobstore.BlobStore) error {
	cells, err := b.Cells()
	if err != nil {
		return err
	}
	for _, c := range slices.SortedFunc(maps.Keys(cells), model.CellCoord.Compare) {
		if b.cellsNoHead[c] {
			data, err := worldmap.EncodeCell(cells[c], b.compression)
			if err != nil {
				return err
			}
			if err := store.Put(ctx, worldmap.CellName(c), data); err != nil {
				return err
			}
			continue
		}
		if err := worldmap.WriteCell(ctx, store, c, cells[c], b.compression); err != nil {
			return err
		}
	}
	for c, textures := range b.headerOnly {
		if err := worldmap.WriteHeader(ctx, store, c, textures); err != nil {
			return err
		}
	}
	return nil
}

// MemoryStore writes the map into a fresh in-memory store.
func (b *MapBuilder) MemoryStore(tb testing.TB) *blobstore.MemoryStore {
	tb.Helper()
	store := blobstore.NewMemoryStore()
	if err := b.Write(context.Background(), store); err != nil {
		tb.Fatalf("write map: %v", err)
	}
	return store
}

// LocalStore writes the map into a temporary directory.
func (b *MapBuilder) LocalStore(tb testing.TB) *blobstore.LocalStore {
	tb.Helper()
	store := blobstore.NewLocalStore(tb.TempDir())
	if err := b.Write(context.Background(), store); err != nil {
		tb.Fatalf("write map: %v", err)
	}
	return store
}

// RandomMapConfig controls RandomMap.
type RandomMapConfig struct {
	CellsX, CellsY int
	CellSize       int
	MinLayer       int
	MaxLayer       int
	// Textures is the vocabulary size. Texture i is named "tex_<i>" and
	// drawn with Zipf skew, so low ids are common.
	Textures int
	// Density is the probability that a square holds any texture.
	Density float64
}

// RandomMap places random textures on a CellsX x CellsY block of cells
// starting at cell (0, 0).
func RandomMap(rng *RNG, cfg RandomMapConfig) *MapBuilder {
	if cfg.MaxLayer <= cfg.MinLayer {
		cfg.MaxLayer = cfg.MinLayer + 1
	}
	if cfg.Textures <= 0 {
		cfg.Textures = 16
	}
	b := NewMapBuilder(cfg.CellSize).WithLayers(cfg.MinLayer, cfg.MaxLayer)
	w, h := cfg.CellsX*cfg.CellSize, cfg.CellsY*cfg.CellSize
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for l := cfg.MinLayer; l < cfg.MaxLayer; l++ {
				if rng.Float64() >= cfg.Density {
					continue
				}
				b.Place(x, y, l, TextureName(rng.Zipf(cfg.Textures, 1.2)))
			}
		}
	}
	return b
}

// TextureName returns the name RandomMap uses for texture i.
func TextureName(i int) string {
	return "tex_" + strconv.Itoa(i)
}

// ExpectedMarks returns the raw marks an exhaustive scan must produce:
// one per (placement, marker name). Repeated placements of the same
// texture on the same square count once.
func ExpectedMarks(placements []Placement, ix *texindex.Index) []model.RawMark {
	seen := make(map[Placement]bool, len(placements))
	var out []model.RawMark
	for _, p := range placements {
		if seen[p] {
			continue
		}
		seen[p] = true
		for _, name := range ix.Markers(p.Texture) {
			out = append(out, model.RawMark{
				Kind:       model.KindPoint,
				MarkerName: name,
				WorldX:     p.WorldX,
				WorldY:     p.WorldY,
				Layer:      p.Layer,
			})
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
