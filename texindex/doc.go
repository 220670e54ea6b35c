// Package texindex maps texture names to the marker names they produce.
//
// The mapping is many-to-many: one texture can feed several markers and one
// marker can be fed by several textures. An Index is built once, either from
// a marker-definition file or as the identity over a list of texture names,
// and is immutable afterwards.
//
// A marker-definition file is a JSON object keyed by marker name:
//
//	{
//	  "bench": {"textures": ["furniture_seating_01_0", "furniture_seating_01_1"]},
//	  "seat":  {"textures": ["furniture_seating_01_0"]}
//	}
package texindex
