package model

import (
	"cmp"
	"fmt"
)

// KindPoint is the only mark kind produced by the cell scanner.
const KindPoint = "point"

// CellCoord identifies a map cell.
type CellCoord struct {
	X int
	Y int
}

// String returns a string representation of the CellCoord.
func (c CellCoord) String() string {
	return fmt.Sprintf("Cell(%d,%d)", c.X, c.Y)
}

// Compare orders cells by x, then y.
func (c CellCoord) Compare(o CellCoord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Job is a single cell to scan. Jobs are independent of each other.
type Job struct {
	Cell CellCoord
}

// String returns a string representation of the Job.
func (j Job) String() string {
	return fmt.Sprintf("Job(%d,%d)", j.Cell.X, j.Cell.Y)
}

// RawMark is one detection of a target texture, in world coordinates.
type RawMark struct {
	Kind       string `json:"type"`
	MarkerName string `json:"name"`
	WorldX     int    `json:"x"`
	WorldY     int    `json:"y"`
	Layer      int    `json:"layer"`
}

// Coordinate returns the mark's position without its marker name and kind.
func (m RawMark) Coordinate() Coordinate {
	return Coordinate{X: m.WorldX, Y: m.WorldY, Layer: m.Layer}
}

// Coordinate is a world square at a given layer.
type Coordinate struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Layer int `json:"layer"`
}

// Compare orders coordinates by (layer, x, y).
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.Layer, o.Layer); r != 0 {
		return r
	}
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// String returns a string representation of the Coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Layer)
}

// MarkerGroup is the output unit for one marker name.
// VisibilityZoom is nil unless the global density threshold was reached.
type MarkerGroup struct {
	Kind           string       `json:"type"`
	Coordinates    []Coordinate `json:"coordinates"`
	VisibilityZoom *int         `json:"visible_zoom_level,omitempty"`
}

// MarkerSet maps marker names to their groups.
type MarkerSet map[string]*MarkerGroup

// TotalCoordinates returns the number of coordinates across all groups.
func (s MarkerSet) TotalCoordinates() int {
	n := 0
	for _, g := range s {
		n += len(g.Coordinates)
	}
	return n
}
