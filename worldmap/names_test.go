package worldmap

import (
	"testing"

	"github.com/hupe1980/texloc/model"
	"github.com/stretchr/testify/assert"
)

func TestBlobNames(t *testing.T) {
	c := model.CellCoord{X: -3, Y: 12}
	assert.Equal(t, "-3_12.lotheader", HeaderName(c))
	assert.Equal(t, "world_-3_12.lotpack", CellName(c))

	got, ok := ParseHeaderName(HeaderName(c))
	assert.True(t, ok)
	assert.Equal(t, c, got)

	got, ok = ParseCellName(CellName(c))
	assert.True(t, ok)
	assert.Equal(t, c, got)
}

func TestParseNames_Rejects(t *testing.T) {
	tests := []string{
		"",
		"map.bin",
		"1_2.lotpack",
		"world_1_2.lotheader",
		"a_2.lotheader",
		"1.lotheader",
		"sub/1_2.lotheader",
		"1_2_3.lotheader",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := ParseHeaderName(name)
			assert.False(t, ok)
		})
	}

	_, ok := ParseCellName("map_1_2.lotpack")
	assert.False(t, ok)
}
