package worldmap

import "github.com/RoaringBitmap/roaring/v2"

// TextureDict interns texture names to dense uint32 ids.
//
// A TextureDict is filled while a HeaderSet is built and is read-only
// afterwards, so it is safe for concurrent lookups.
type TextureDict struct {
	ids   map[string]uint32
	names []string
}

func newTextureDict() *TextureDict {
	return &TextureDict{ids: make(map[string]uint32)}
}

func (d *TextureDict) intern(name string) uint32 {
	if id, ok := d.ids[name]; ok {
		return id
	}
	id := uint32(len(d.names))
	d.ids[name] = id
	d.names = append(d.names, name)
	return id
}

// ID returns the id of name, if any header listed it.
func (d *TextureDict) ID(name string) (uint32, bool) {
	id, ok := d.ids[name]
	return id, ok
}

// Name returns the texture name for id.
func (d *TextureDict) Name(id uint32) (string, bool) {
	if int(id) >= len(d.names) {
		return "", false
	}
	return d.names[id], true
}

// Len returns the number of interned names.
func (d *TextureDict) Len() int {
	return len(d.names)
}

// Bitmap returns the ids of the given names. Unknown names are skipped:
// no header lists them, so no cell can contain them.
func (d *TextureDict) Bitmap(names []string) *roaring.Bitmap {
	bm := roaring.New()
	for _, n := range names {
		if id, ok := d.ids[n]; ok {
			bm.Add(id)
		}
	}
	return bm
}
