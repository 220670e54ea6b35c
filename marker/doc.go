// Package marker reduces raw marks to the marker file consumed by the map viewer.
//
// The stages run in order and each returns a fresh value:
//
//	Aggregate  raw marks -> one group per marker name
//	Reduce     greedy removal of adjacent coordinates within each group
//	Annotate   global density threshold -> visible_zoom_level
//	Encode     JSON marker file
//
// # Adjacency
//
// Two coordinates are adjacent when they are 4-connected neighbours on the
// same layer, or share x and y and are one layer apart. Reduce sorts each
// group by (layer, x, y) and keeps a coordinate only if it is not adjacent
// to any coordinate kept before it. The result depends only on the multiset
// of input coordinates, never on the order marks arrived in.
package marker
