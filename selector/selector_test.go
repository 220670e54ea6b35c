package selector

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/worldmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTextures(t *testing.T) {
	hs := worldmap.NewHeaderSet(map[model.CellCoord][]string{
		{X: 1, Y: 0}: {"wall", "tex_a"},
		{X: 0, Y: 0}: {"tex_a"},
		{X: 0, Y: 1}: {"floor"},
		{X: 2, Y: 2}: nil,
	})

	jobs := SelectTextures(hs, []string{"tex_a", "unknown"})
	assert.Equal(t, []model.Job{
		{Cell: model.CellCoord{X: 0, Y: 0}},
		{Cell: model.CellCoord{X: 1, Y: 0}},
	}, jobs)

	assert.Empty(t, SelectTextures(hs, []string{"unknown"}))
	assert.Empty(t, SelectTextures(hs, nil))
	assert.Empty(t, SelectTextures(nil, []string{"tex_a"}))
}

// Selection must agree with a direct set intersection on random maps.
func TestSelect_MatchesIntersection(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	vocab := make([]string, 40)
	for i := range vocab {
		vocab[i] = "tex_" + strconv.Itoa(i)
	}

	for round := 0; round < 20; round++ {
		raw := make(map[model.CellCoord][]string)
		for x := 0; x < 8; x++ {
			for y := 0; y < 8; y++ {
				n := rng.IntN(5)
				for i := 0; i < n; i++ {
					c := model.CellCoord{X: x, Y: y}
					raw[c] = append(raw[c], vocab[rng.IntN(len(vocab))])
				}
			}
		}
		targets := []string{vocab[rng.IntN(len(vocab))], vocab[rng.IntN(len(vocab))]}

		hs := worldmap.NewHeaderSet(raw)
		got := SelectTextures(hs, targets)

		var want []model.Job
		for _, c := range hs.Cells() {
			if slices.ContainsFunc(raw[c], func(s string) bool { return slices.Contains(targets, s) }) {
				want = append(want, model.Job{Cell: c})
			}
		}
		require.Equal(t, want, got, "round %d", round)
	}
}
