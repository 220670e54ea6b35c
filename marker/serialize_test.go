package marker

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotatedSet() model.MarkerSet {
	set, _ := Annotate(model.MarkerSet{
		"tex_a": {Kind: model.KindPoint, Coordinates: []model.Coordinate{co(0, 0, 0), co(0, 2, 0)}},
		"bench": {Kind: model.KindPoint, Coordinates: []model.Coordinate{co(-4, 7, 1)}},
	}, 3)
	return set
}

func TestEncode_Format(t *testing.T) {
	set := model.MarkerSet{
		"tex_a": {Kind: model.KindPoint, Coordinates: []model.Coordinate{co(0, 2, 0)}},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, set))

	want := `{
  "tex_a": {
    "type": "point",
    "coordinates": [
      {
        "x": 0,
        "y": 2,
        "layer": 0
      }
    ]
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestEncode_VisibilityField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, annotatedSet()))
	assert.Equal(t, 2, strings.Count(buf.String(), `"visible_zoom_level": 2`))

	buf.Reset()
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "{}\n", buf.String())
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, name := range []string{"output.json", "output.json.gz", "OUT.JSON.ZST"} {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(annotatedSet(), name)
			require.NoError(t, err)

			got, err := Unmarshal(data, name)
			require.NoError(t, err)
			assert.Equal(t, annotatedSet(), got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{``, `null`, `[]`, `{"a": null}`, `{"a": {"coordinates": 1}}`} {
		_, err := Decode(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestPut_Store(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, Put(ctx, store, "markers/output.json.gz", annotatedSet()))

	b, err := store.Open(ctx, "markers/output.json.gz")
	require.NoError(t, err)
	defer b.Close()
	data, err := blobstore.ReadAll(ctx, b)
	require.NoError(t, err)

	got, err := Unmarshal(data, "output.json.gz")
	require.NoError(t, err)
	assert.Equal(t, annotatedSet(), got)
}

func TestWriteFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p := filepath.Join(dir, "output.json")

	require.NoError(t, WriteFile(ctx, p, annotatedSet()))
	got, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, annotatedSet(), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFile_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := WriteFile(context.Background(), filepath.Join(blocker, "output.json"), annotatedSet())
	require.ErrorIs(t, err, ErrWriteOutput)
}
