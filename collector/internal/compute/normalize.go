package compute

import "github.com/rootless/compass/pkg/table"

// Normalize returns a copy of t with every row's Norm filled from its raw
// values. Each indicator is min-max scaled over the rows present and
// indicators in lowerIsBetter are inverted (1 - x). A constant column scales
// to 0 before inversion, so an inverted constant column is all 1.
// Existing normalized values are discarded, so the result depends only on
// the raw columns. A row with a missing raw value gets no normalized value.
func Normalize(t *table.Table, lowerIsBetter map[string]bool) *table.Table {
	out := t.Clone()
	for i := range out.Rows {
		out.Rows[i].Norm = make(map[string]float64, len(out.Indicators))
	}

	for _, ind := range out.Indicators {
		vals, present := out.Column(ind)
		lo, hi, ok := bounds(vals, present)
		if !ok {
			continue
		}
		for i, v := range vals {
			if !present[i] {
				continue
			}
			x := 0.0
			if hi > lo {
				x = clamp01((v - lo) / (hi - lo))
			}
			if lowerIsBetter[ind] {
				x = 1 - x
			}
			out.Rows[i].Norm[ind] = x
		}
	}
	return out
}

// bounds returns the min and max of the present values.
func bounds(vals []float64, present []bool) (lo, hi float64, ok bool) {
	for i, v := range vals {
		if !present[i] {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
