// Package worldmap reads and writes the two per-cell blobs a map is made of.
//
// A map cell is stored as a header blob, listing every texture that occurs
// anywhere in the cell, and a cell blob holding the full square grid:
//
//	<x>_<y>.lotheader        header
//	world_<x>_<y>.lotpack    cell
//
// Headers are small and are all loaded up front into an immutable HeaderSet.
// Texture names are interned into a TextureDict so that every header is a
// roaring bitmap of texture ids, and candidate selection is a bitmap
// intersection.
//
// Cells are loaded one at a time by the scanner. A cell blob that does not
// exist yields ErrCellAbsent; one that fails validation yields ErrCorrupt.
//
// # Binary Formats
//
// Header: "TXHD" magic, u16 version, u32 CRC32C of the body, then the body
// (uvarint count, count x (uvarint length, name bytes)).
//
// Cell: "TXCL" magic, u16 version, u8 compression, u32 uncompressed length,
// u32 CRC32C of the uncompressed body, then the (possibly compressed) body.
// The body carries the cell size, the half-open layer range, a texture
// palette and, for every square in (layer, x, y) order, a list of palette
// indices.
//
// All integers in the fixed headers are little-endian.
package worldmap
