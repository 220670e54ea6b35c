package texindex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/texloc/codec"
)

// ErrMalformedDefinitions is returned when a marker-definition file is not
// a JSON object of marker name -> {"textures": [...]}.
var ErrMalformedDefinitions = errors.New("texindex: malformed marker definitions")

// maxDefinitionsSize caps the size of a definition file.
const maxDefinitionsSize = 16 * 1024 * 1024

// Definition describes the textures that produce one marker.
type Definition struct {
	Textures []string `json:"textures"`
}

// Definitions maps marker names to their definitions.
type Definitions map[string]Definition

// TextureCount returns the number of distinct textures referenced.
func (d Definitions) TextureCount() int {
	seen := make(map[string]struct{})
	for _, def := range d {
		for _, t := range def.Textures {
			seen[t] = struct{}{}
		}
	}
	return len(seen)
}

// ParseDefinitions decodes marker definitions from r.
func ParseDefinitions(r io.Reader) (Definitions, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDefinitionsSize+1))
	if err != nil {
		return nil, fmt.Errorf("texindex: read definitions: %w", err)
	}
	if len(data) > maxDefinitionsSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrMalformedDefinitions, maxDefinitionsSize)
	}

	var defs Definitions
	if err := codec.Default.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinitions, err)
	}
	if defs == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedDefinitions)
	}
	return defs, nil
}

// LoadDefinitions reads marker definitions from the file at path.
func LoadDefinitions(path string) (Definitions, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texindex: open definitions: %w", err)
	}
	defer f.Close()

	defs, err := ParseDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
