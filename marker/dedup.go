package marker

import (
	"cmp"
	"slices"

	"github.com/hupe1980/texloc/model"
)

// Adjacent reports whether a and b are 4-connected neighbours on the same
// layer, or vertically stacked one layer apart.
func Adjacent(a, b model.Coordinate) bool {
	dx, dy, dl := absDiff(a.X, b.X), absDiff(a.Y, b.Y), absDiff(a.Layer, b.Layer)
	if dl == 0 {
		return dx+dy == 1
	}
	return dl == 1 && dx == 0 && dy == 0
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// neighbours returns every coordinate adjacent to c.
func neighbours(c model.Coordinate) [6]model.Coordinate {
	return [6]model.Coordinate{
		{X: c.X - 1, Y: c.Y, Layer: c.Layer},
		{X: c.X + 1, Y: c.Y, Layer: c.Layer},
		{X: c.X, Y: c.Y - 1, Layer: c.Layer},
		{X: c.X, Y: c.Y + 1, Layer: c.Layer},
		{X: c.X, Y: c.Y, Layer: c.Layer - 1},
		{X: c.X, Y: c.Y, Layer: c.Layer + 1},
	}
}

// Dedup sorts coords by (layer, x, y) and greedily drops every coordinate
// adjacent to one already kept. The input is not modified.
//
// Identical coordinates are not adjacent to each other, so repeats of a
// kept coordinate are kept as well.
func Dedup(coords []model.Coordinate) []model.Coordinate {
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, model.Coordinate.Compare)

	kept := make([]model.Coordinate, 0, len(sorted))
	seen := make(map[model.Coordinate]struct{}, len(sorted))
	for _, c := range sorted {
		if hasKeptNeighbour(seen, c) {
			continue
		}
		kept = append(kept, c)
		seen[c] = struct{}{}
	}
	return kept
}

func hasKeptNeighbour(seen map[model.Coordinate]struct{}, c model.Coordinate) bool {
	for _, n := range neighbours(c) {
		if _, ok := seen[n]; ok {
			return true
		}
	}
	return false
}

// GroupStats reports how much one marker group shrank.
type GroupStats struct {
	Name  string
	Found int
	Kept  int
}

// Reduce deduplicates every group of set. Groups left without coordinates
// are dropped. Stats are sorted by marker name.
func Reduce(set model.MarkerSet) (model.MarkerSet, []GroupStats) {
	out := make(model.MarkerSet, len(set))
	stats := make([]GroupStats, 0, len(set))
	for name, g := range set {
		kept := Dedup(g.Coordinates)
		if len(kept) == 0 {
			continue
		}
		out[name] = &model.MarkerGroup{Kind: g.Kind, Coordinates: kept}
		stats = append(stats, GroupStats{Name: name, Found: len(g.Coordinates), Kept: len(kept)})
	}
	slices.SortFunc(stats, func(a, b GroupStats) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out, stats
}
