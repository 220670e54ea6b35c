// Package texloc locates textures on a tiled game map and turns the hits
// into a compact marker file for a map viewer.
//
// # Quick Start
//
//	ctx := context.Background()
//	loc, _ := texloc.New(blobstore.NewLocalStore("./map"))
//	markers, report, _ := loc.Locate(ctx, texindex.Identity([]string{"fixtures_sinks_01_0"}))
//	_ = marker.WriteFile(ctx, "./output.json", markers)
//
// Map data can also be read from object storage:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("maps/default/"))
//	loc, _ := texloc.New(store, texloc.WithCache(256<<20))
//
// # Pipeline
//
// A run goes through these stages, each producing a fresh value:
//
//	headers    all cell headers, loaded once per Locator
//	select     cells whose header lists a target texture
//	scan       every candidate cell, in parallel
//	aggregate  raw marks grouped by marker name
//	reduce     adjacent coordinates removed per marker
//	annotate   visible_zoom_level once the result is dense enough
//
// A cell whose data is missing contributes nothing. A cell that cannot be
// decoded is skipped, logged and listed in Report.FailedJobs. Cancelling the
// context aborts the run.
//
// # Marker Definitions
//
// Textures map to marker names through a texindex.Index. Without a
// definition file every texture is its own marker; with one, a texture may
// feed several markers and a marker may be fed by several textures.
package texloc
