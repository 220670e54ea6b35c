package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/texloc/model"
)

func sampleSet() model.MarkerSet {
	zoom := 2
	return model.MarkerSet{
		"bench": {Kind: model.KindPoint, Coordinates: []model.Coordinate{{X: 1, Y: 2}, {X: -4, Y: 7, Layer: 1}}},
		"anvil": {Kind: model.KindPoint, Coordinates: []model.Coordinate{{X: 0, Y: 0}}, VisibilityZoom: &zoom},
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	std, gj := JSON{}, GoJSON{}
	set := sampleSet()

	a, err := std.MarshalIndent(set, "", "  ")
	require.NoError(t, err)
	b, err := gj.MarshalIndent(set, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	a, err = std.Marshal(set)
	require.NoError(t, err)
	b, err = gj.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestCrossDecode(t *testing.T) {
	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		data, err := enc.Marshal(sampleSet())
		require.NoError(t, err)
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			var got model.MarkerSet
			require.NoError(t, dec.Unmarshal(data, &got), "%s -> %s", enc.Name(), dec.Name())
			assert.Equal(t, sampleSet(), got)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		var set model.MarkerSet
		assert.Error(t, c.Unmarshal([]byte(`{"a":`), &set), c.Name())
		assert.Error(t, c.Unmarshal([]byte(`[1]`), &set), c.Name())
	}
}
