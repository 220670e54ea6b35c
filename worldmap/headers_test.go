package worldmap

import (
	"testing"

	"github.com/hupe1980/texloc/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderSet(t *testing.T) {
	s := NewHeaderSet(map[model.CellCoord][]string{
		{X: 1, Y: 0}: {"wall", "floor"},
		{X: 0, Y: 0}: {"floor", "grass"},
		{X: 0, Y: 1}: nil,
	})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []model.CellCoord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, s.Cells())

	// Ids follow (x, y) cell order, then header order.
	id, ok := s.Dict().ID("floor")
	require.True(t, ok)
	assert.Equal(t, uint32(0), id)
	id, ok = s.Dict().ID("wall")
	require.True(t, ok)
	assert.Equal(t, uint32(2), id)
	assert.Equal(t, 3, s.Dict().Len())

	h, ok := s.Get(model.CellCoord{X: 0, Y: 1})
	require.True(t, ok)
	assert.True(t, h.IsEmpty())

	_, ok = s.Get(model.CellCoord{X: 5, Y: 5})
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"wall", "floor"}, s.Names(model.CellCoord{X: 1, Y: 0}))
	assert.Nil(t, s.Names(model.CellCoord{X: 9, Y: 9}))
}

func TestHeaderSet_TargetBitmap(t *testing.T) {
	s := NewHeaderSet(map[model.CellCoord][]string{
		{X: 0, Y: 0}: {"a", "b"},
	})

	bm := s.TargetBitmap([]string{"b", "unknown"})
	assert.Equal(t, uint64(1), bm.GetCardinality())

	id, _ := s.Dict().ID("b")
	assert.True(t, bm.Contains(id))

	assert.True(t, s.TargetBitmap([]string{"nope"}).IsEmpty())
}

func TestTextureDict_Name(t *testing.T) {
	s := NewHeaderSet(map[model.CellCoord][]string{{}: {"x"}})
	name, ok := s.Dict().Name(0)
	assert.True(t, ok)
	assert.Equal(t, "x", name)

	_, ok = s.Dict().Name(1)
	assert.False(t, ok)
}
