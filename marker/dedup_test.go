package marker

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hupe1980/texloc/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func co(x, y, layer int) model.Coordinate {
	return model.Coordinate{X: x, Y: y, Layer: layer}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Coordinate
		want bool
	}{
		{"x neighbour", co(5, 5, 0), co(6, 5, 0), true},
		{"y neighbour", co(5, 5, 0), co(5, 4, 0), true},
		{"diagonal", co(5, 5, 0), co(6, 6, 0), false},
		{"two apart", co(0, 0, 0), co(0, 2, 0), false},
		{"stacked", co(3, 3, 0), co(3, 3, 1), true},
		{"stacked two apart", co(3, 3, 0), co(3, 3, 2), false},
		{"neighbour on next layer", co(3, 3, 0), co(4, 3, 1), false},
		{"identical", co(1, 1, 1), co(1, 1, 1), false},
		{"negative", co(-1, 0, -1), co(0, 0, -1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Adjacent(tt.a, tt.b))
			assert.Equal(t, tt.want, Adjacent(tt.b, tt.a))
		})
	}
}

func TestDedup_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   []model.Coordinate
		want []model.Coordinate
	}{
		{"two apart survive", []model.Coordinate{co(0, 2, 0), co(0, 0, 0)}, []model.Coordinate{co(0, 0, 0), co(0, 2, 0)}},
		{"y neighbour dropped", []model.Coordinate{co(5, 6, 0), co(5, 5, 0)}, []model.Coordinate{co(5, 5, 0)}},
		{"upper layer dropped", []model.Coordinate{co(3, 3, 1), co(3, 3, 0)}, []model.Coordinate{co(3, 3, 0)}},
		{"line keeps every other", []model.Coordinate{co(0, 0, 0), co(0, 1, 0), co(0, 2, 0), co(0, 3, 0), co(0, 4, 0)},
			[]model.Coordinate{co(0, 0, 0), co(0, 2, 0), co(0, 4, 0)}},
		{"layer sorts first", []model.Coordinate{co(0, 0, 1), co(9, 9, 0)}, []model.Coordinate{co(9, 9, 0), co(0, 0, 1)}},
		{"diagonals kept", []model.Coordinate{co(0, 0, 0), co(1, 1, 0), co(2, 2, 0)},
			[]model.Coordinate{co(0, 0, 0), co(1, 1, 0), co(2, 2, 0)}},
		{"duplicates kept", []model.Coordinate{co(1, 1, 0), co(1, 1, 0)}, []model.Coordinate{co(1, 1, 0), co(1, 1, 0)}},
		{"empty", nil, []model.Coordinate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedup(tt.in))
		})
	}
}

// dedupQuadratic is the direct pairwise formulation of Dedup.
func dedupQuadratic(sorted []model.Coordinate) []model.Coordinate {
	kept := []model.Coordinate{}
	for _, c := range sorted {
		adjacent := false
		for _, k := range kept {
			if Adjacent(c, k) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			kept = append(kept, c)
		}
	}
	return kept
}

func randomCoords(rng *rand.Rand, n int) []model.Coordinate {
	out := make([]model.Coordinate, n)
	for i := range out {
		out[i] = co(rng.IntN(12), rng.IntN(12), rng.IntN(3))
	}
	return out
}

func TestDedup_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		in := randomCoords(rng, 1+rng.IntN(150))
		kept := Dedup(in)

		sorted := slices.Clone(in)
		slices.SortFunc(sorted, model.Coordinate.Compare)
		require.Equal(t, dedupQuadratic(sorted), kept, "matches pairwise definition")

		for i := range kept {
			for j := i + 1; j < len(kept); j++ {
				require.False(t, Adjacent(kept[i], kept[j]), "%v adjacent to %v", kept[i], kept[j])
			}
		}

		require.Equal(t, kept, Dedup(kept), "idempotent")

		shuffled := append([]model.Coordinate(nil), in...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		require.Equal(t, kept, Dedup(shuffled), "order independent")
	}
}

func TestDedup_DoesNotModifyInput(t *testing.T) {
	in := []model.Coordinate{co(0, 1, 0), co(0, 0, 0)}
	_ = Dedup(in)
	assert.Equal(t, []model.Coordinate{co(0, 1, 0), co(0, 0, 0)}, in)
}

func TestReduce(t *testing.T) {
	set := model.MarkerSet{
		"b": {Kind: model.KindPoint, Coordinates: []model.Coordinate{co(5, 6, 0), co(5, 5, 0)}},
		"a": {Kind: model.KindPoint, Coordinates: []model.Coordinate{co(0, 0, 0), co(0, 2, 0)}},
		"z": {Kind: model.KindPoint},
	}

	out, stats := Reduce(set)
	require.Len(t, out, 2)
	assert.Equal(t, []model.Coordinate{co(5, 5, 0)}, out["b"].Coordinates)
	assert.Equal(t, []model.Coordinate{co(0, 0, 0), co(0, 2, 0)}, out["a"].Coordinates)
	assert.NotContains(t, out, "z")
	assert.Equal(t, []GroupStats{
		{Name: "a", Found: 2, Kept: 2},
		{Name: "b", Found: 2, Kept: 1},
	}, stats)

	// Input groups are untouched.
	assert.Len(t, set["b"].Coordinates, 2)
}
