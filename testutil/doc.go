// Package testutil provides testing utilities for texloc.
//
// This package is intended for use in tests and benchmarks only.
// It builds synthetic maps and computes the marks a scan of them must
// produce.
//
// # Synthetic Maps
//
//	store := blobstore.NewMemoryStore()
//	err := testutil.NewMapBuilder(2).
//	    Place(0, 0, 0, "tex_a").
//	    Place(0, 2, 0, "tex_a").
//	    Write(ctx, store)
//
// # Random Maps
//
//	rng := testutil.NewRNG(seed)
//	b := testutil.RandomMap(rng, testutil.RandomMapConfig{CellsX: 4, CellsY: 4, CellSize: 8})
//
// # Ground Truth
//
//	want := testutil.ExpectedMarks(b.Placements(), ix)
package testutil
