// Package hash provides the checksum used by the texloc map formats.
//
// Header and cell blobs carry a CRC32-Castagnoli (CRC32C) of their body so a
// truncated or bit-flipped file is reported as corrupt instead of being
// scanned as garbage.
//
//	sum := hash.CRC32C(body)
//	if !hash.Verify(body, stored) { ... }
package hash
