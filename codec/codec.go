// Package codec centralizes the JSON encoding of marker files, marker
// definitions and run configuration.
//
// Every implementation must produce output that the others decode, so a
// marker file written with one codec reads back with any other.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codecs.
func Names() []string {
	return []string{"go-json", "json"}
}
