// Package selector picks the cells worth scanning.
//
// Selection only consults cell headers and never opens cell data: a cell
// is a candidate iff its header shares at least one texture with the target
// set. Headers are complete, so no cell holding a target is ever missed; a
// candidate may still yield no marks.
package selector

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/worldmap"
)

// Select returns a job for every cell whose header intersects targets.
// Jobs are ordered by (x, y). Cells with an empty header are never selected.
func Select(headers *worldmap.HeaderSet, targets *roaring.Bitmap) []model.Job {
	if headers == nil || targets == nil || targets.IsEmpty() {
		return nil
	}

	var jobs []model.Job
	for _, c := range headers.Cells() {
		h, _ := headers.Get(c)
		if h.IsEmpty() {
			continue
		}
		if h.Textures.Intersects(targets) {
			jobs = append(jobs, model.Job{Cell: c})
		}
	}
	return jobs
}

// SelectTextures is Select with targets given by name.
func SelectTextures(headers *worldmap.HeaderSet, textures []string) []model.Job {
	if headers == nil {
		return nil
	}
	return Select(headers, headers.TargetBitmap(textures))
}
