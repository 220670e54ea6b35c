package marker

import "github.com/hupe1980/texloc/model"

// VisibleZoomLevel is set on every group once the result is dense enough.
const VisibleZoomLevel = 2

// Annotate sets VisibleZoomLevel on every group when threshold > 0 and the
// total number of coordinates reaches it. The returned set shares
// coordinate slices with set but not groups. The bool reports whether the
// threshold was reached.
func Annotate(set model.MarkerSet, threshold int) (model.MarkerSet, bool) {
	reached := threshold > 0 && set.TotalCoordinates() >= threshold

	out := make(model.MarkerSet, len(set))
	for name, g := range set {
		cp := &model.MarkerGroup{Kind: g.Kind, Coordinates: g.Coordinates}
		if reached {
			zoom := VisibleZoomLevel
			cp.VisibilityZoom = &zoom
		}
		out[name] = cp
	}
	return out, reached
}
