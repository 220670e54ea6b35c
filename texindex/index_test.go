package texindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	ix := Identity([]string{"tex_b", "tex_a", "tex_a"})

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, []string{"tex_a", "tex_b"}, ix.Textures())
	assert.Equal(t, []string{"tex_a"}, ix.Markers("tex_a"))
	assert.True(t, ix.Contains("tex_b"))
	assert.False(t, ix.Contains("tex_c"))
	assert.Nil(t, ix.Markers("tex_c"))
}

func TestFromDefinitions_ManyToMany(t *testing.T) {
	ix := FromDefinitions(Definitions{
		"bench": {Textures: []string{"seat_0", "seat_1"}},
		"seat":  {Textures: []string{"seat_0", "seat_0"}},
		"empty": {},
	})

	assert.Equal(t, []string{"seat_0", "seat_1"}, ix.Textures())
	assert.Equal(t, []string{"bench", "seat"}, ix.Markers("seat_0"))
	assert.Equal(t, []string{"bench"}, ix.Markers("seat_1"))
	assert.Equal(t, []string{"bench", "seat"}, ix.MarkerNames())
}

func TestNew_DropsTexturesWithoutMarkers(t *testing.T) {
	ix := New(map[string][]string{
		"a": {"m"},
		"b": nil,
	})
	assert.Equal(t, 1, ix.Len())
	assert.False(t, ix.Contains("b"))
}
