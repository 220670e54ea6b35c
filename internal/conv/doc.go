// Package conv provides checked integer conversions for the map blob
// codecs, where lengths and offsets are stored as fixed-width integers.
package conv
