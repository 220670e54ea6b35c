package worldmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/texloc/model"
)

const (
	headerSuffix = ".lotheader"
	cellPrefix   = "world_"
	cellSuffix   = ".lotpack"
)

// HeaderName returns the blob name of the header for cell c.
func HeaderName(c model.CellCoord) string {
	return fmt.Sprintf("%d_%d%s", c.X, c.Y, headerSuffix)
}

// CellName returns the blob name of the cell data for cell c.
func CellName(c model.CellCoord) string {
	return fmt.Sprintf("%s%d_%d%s", cellPrefix, c.X, c.Y, cellSuffix)
}

// ParseHeaderName extracts the cell coordinate from a header blob name.
// Names in sub-directories are not headers.
func ParseHeaderName(name string) (model.CellCoord, bool) {
	base, ok := strings.CutSuffix(name, headerSuffix)
	if !ok {
		return model.CellCoord{}, false
	}
	return parseXY(base)
}

// ParseCellName extracts the cell coordinate from a cell blob name.
func ParseCellName(name string) (model.CellCoord, bool) {
	base, ok := strings.CutSuffix(name, cellSuffix)
	if !ok {
		return model.CellCoord{}, false
	}
	base, ok = strings.CutPrefix(base, cellPrefix)
	if !ok {
		return model.CellCoord{}, false
	}
	return parseXY(base)
}

func parseXY(s string) (model.CellCoord, bool) {
	if strings.ContainsAny(s, "/\\") {
		return model.CellCoord{}, false
	}
	xs, ys, ok := strings.Cut(s, "_")
	if !ok {
		return model.CellCoord{}, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return model.CellCoord{}, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return model.CellCoord{}, false
	}
	return model.CellCoord{X: x, Y: y}, true
}
