package worldmap

import (
	"context"

	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/model"
)

// WriteHeader stores the header of cell c listing textures.
func WriteHeader(ctx context.Context, store blobstore.BlobStore, c model.CellCoord, textures []string) error {
	return store.Put(ctx, HeaderName(c), EncodeHeader(textures))
}

// WriteCell stores cell at c together with a matching header.
func WriteCell(ctx context.Context, store blobstore.BlobStore, c model.CellCoord, cell *Cell, comp Compression) error {
	data, err := EncodeCell(cell, comp)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, CellName(c), data); err != nil {
		return err
	}
	return WriteHeader(ctx, store, c, cell.Textures())
}
