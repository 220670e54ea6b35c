package marker

import "github.com/hupe1980/texloc/model"

// Aggregate groups marks by marker name. The kind of a group is the kind
// of the first mark seen for it.
func Aggregate(marks []model.RawMark) model.MarkerSet {
	set := make(model.MarkerSet)
	for _, m := range marks {
		g, ok := set[m.MarkerName]
		if !ok {
			g = &model.MarkerGroup{Kind: m.Kind}
			set[m.MarkerName] = g
		}
		g.Coordinates = append(g.Coordinates, m.Coordinate())
	}
	return set
}
