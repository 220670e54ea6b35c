package marker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/codec"
	"github.com/hupe1980/texloc/model"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrWriteOutput is returned when the marker file cannot be written.
// No partial file is left behind.
var ErrWriteOutput = errors.New("marker: write output")

// Encode writes set as indented JSON. Marker names are emitted sorted.
func Encode(w io.Writer, set model.MarkerSet) error {
	if set == nil {
		set = model.MarkerSet{}
	}
	data, err := codec.Default.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Decode reads a marker file written by Encode.
func Decode(r io.Reader) (model.MarkerSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("marker: decode: %w", err)
	}
	var set model.MarkerSet
	if err := codec.Default.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("marker: decode: %w", err)
	}
	if set == nil {
		return nil, errors.New("marker: decode: expected a JSON object")
	}
	for name, g := range set {
		if g == nil {
			return nil, fmt.Errorf("marker: decode: marker %q is null", name)
		}
	}
	return set, nil
}

// Marshal encodes set, compressed according to the extension of name:
// ".gz" for gzip, ".zst" for zstd, anything else as plain JSON.
func Marshal(set model.MarkerSet, name string) ([]byte, error) {
	var buf bytes.Buffer
	switch ext(name) {
	case ".gz":
		zw := gzip.NewWriter(&buf)
		if err := Encode(zw, set); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	case ".zst":
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if err := Encode(zw, set); err != nil {
			_ = zw.Close()
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	default:
		if err := Encode(&buf, set); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data produced by Marshal for the same name.
func Unmarshal(data []byte, name string) (model.MarkerSet, error) {
	var r io.Reader = bytes.NewReader(data)
	switch ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("marker: decode: %w", err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("marker: decode: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return Decode(r)
}

// Put writes set to store under name. Stores write atomically.
func Put(ctx context.Context, store blobstore.BlobStore, name string, set model.MarkerSet) error {
	data, err := Marshal(set, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, name, err)
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, name, err)
	}
	return nil
}

// WriteFile writes set to the local file at p through a temporary file
// that is renamed into place.
func WriteFile(ctx context.Context, p string, set model.MarkerSet) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, p, err)
	}
	return Put(ctx, blobstore.NewLocalStore(filepath.Dir(abs)), filepath.Base(abs), set)
}

// ReadFile reads a marker file from the local file system.
func ReadFile(p string) (model.MarkerSet, error) {
	data, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		return nil, err
	}
	return Unmarshal(data, p)
}

func ext(name string) string {
	return strings.ToLower(path.Ext(filepath.ToSlash(name)))
}
