// Package model defines the value types that flow through the texloc pipeline.
//
// # Identity Types
//
//   - CellCoord: integer (x, y) address of a map cell
//   - Job: one cell to scan
//
// # Data Types
//
//   - RawMark: one detection of a target texture at a world square
//   - Coordinate: a world square plus layer, with the marker name hoisted out
//   - MarkerGroup: the deduplicated output unit for one marker name
//   - MarkerSet: marker name -> MarkerGroup
//
// All types are plain values. Each pipeline stage builds a fresh collection
// and never retains references into the previous stage's data.
package model
