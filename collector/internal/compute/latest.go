package compute

import (
	"strconv"

	"github.com/rootless/compass/pkg/table"
)

// Latest reduces it to one value per country: the value of the greatest year
// label that holds data. Countries without any value are absent.
func Latest(it *table.IndicatorTable) table.LatestValues {
	out := make(table.LatestValues, len(it.Years))
	for code, years := range it.Years {
		best := ""
		found := false
		for year := range years {
			if !found || yearAfter(year, best) {
				best, found = year, true
			}
		}
		if found {
			out[code] = years[best]
		}
	}
	return out
}

// yearAfter reports whether label a sorts after label b. Integer labels
// compare numerically and beat non-integer labels; two non-integer labels
// compare lexically.
func yearAfter(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai > bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a > b
	}
}
