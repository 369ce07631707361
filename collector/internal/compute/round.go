package compute

import (
	"math"

	"github.com/rootless/compass/pkg/table"
)

// Round returns a copy of t with every raw value rounded to decimals places,
// half away from zero. A negative decimals returns an unmodified copy.
func Round(t *table.Table, decimals int) *table.Table {
	out := t.Clone()
	if decimals < 0 {
		return out
	}
	p := math.Pow(10, float64(decimals))
	for _, row := range out.Rows {
		for ind, v := range row.Values {
			row.Values[ind] = math.Round(v*p) / p
		}
	}
	return out
}
