package texindex

import "slices"

// Index resolves texture names to marker names.
// Every texture in the index maps to at least one marker.
type Index struct {
	markers  map[string][]string
	textures []string
}

// New builds an index from a texture -> marker names mapping.
// Textures with no marker names are dropped and duplicate names are
// collapsed. Marker names of each texture are kept sorted.
func New(mapping map[string][]string) *Index {
	ix := &Index{markers: make(map[string][]string, len(mapping))}
	for tex, names := range mapping {
		set := slices.Clone(names)
		slices.Sort(set)
		set = slices.Compact(set)
		if len(set) == 0 {
			continue
		}
		ix.markers[tex] = set
		ix.textures = append(ix.textures, tex)
	}
	slices.Sort(ix.textures)
	return ix
}

// Identity builds an index in which each texture is its own marker.
func Identity(textures []string) *Index {
	mapping := make(map[string][]string, len(textures))
	for _, t := range textures {
		mapping[t] = []string{t}
	}
	return New(mapping)
}

// FromDefinitions builds an index from marker definitions.
func FromDefinitions(defs Definitions) *Index {
	mapping := make(map[string][]string)
	for marker, def := range defs {
		for _, tex := range def.Textures {
			mapping[tex] = append(mapping[tex], marker)
		}
	}
	return New(mapping)
}

// Markers returns the marker names produced by texture, or nil.
// The slice must not be modified.
func (ix *Index) Markers(texture string) []string {
	return ix.markers[texture]
}

// Contains reports whether texture produces any marker.
func (ix *Index) Contains(texture string) bool {
	_, ok := ix.markers[texture]
	return ok
}

// Textures returns all target textures, sorted.
func (ix *Index) Textures() []string {
	return slices.Clone(ix.textures)
}

// MarkerNames returns every marker name the index can produce, sorted.
func (ix *Index) MarkerNames() []string {
	var out []string
	for _, names := range ix.markers {
		out = append(out, names...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the number of target textures.
func (ix *Index) Len() int {
	return len(ix.textures)
}
