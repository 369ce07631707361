package compute

import "github.com/rootless/compass/pkg/table"

// ImputeStats describes what Impute did to a table.
type ImputeStats struct {
	// Dropped lists the codes of rows removed because every indicator was missing.
	Dropped []string

	// Retained is the number of rows left after dropping.
	Retained int

	// Columns has one entry per indicator, in table order.
	Columns []ColumnStats
}

// ColumnStats describes the imputation of a single indicator column.
type ColumnStats struct {
	Indicator string

	// Present is the number of retained rows that had a real value.
	Present int

	// Filled is the number of missing values replaced with Mean.
	Filled int

	// Mean is the column mean over present values; valid only if Defined.
	Mean    float64
	Defined bool
}

// Coverage returns the share of retained rows that had a real value.
func (c ColumnStats) Coverage(retained int) float64 {
	if retained == 0 {
		return 0
	}
	return float64(c.Present) / float64(retained)
}

// Undefined returns the indicators whose mean could not be computed.
func (s ImputeStats) Undefined() []string {
	var out []string
	for _, c := range s.Columns {
		if !c.Defined {
			out = append(out, c.Indicator)
		}
	}
	return out
}

// Impute drops rows where every indicator is missing, then fills each
// remaining missing value with its column mean over the retained rows.
// A column without any value among retained rows stays missing and is
// reported with Defined == false.
func Impute(in *table.Table) (*table.Table, ImputeStats) {
	out := &table.Table{Indicators: append([]string(nil), in.Indicators...)}
	var stats ImputeStats

	for _, row := range in.Clone().Rows {
		if !anyPresent(row, in.Indicators) {
			stats.Dropped = append(stats.Dropped, row.Code)
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	stats.Retained = len(out.Rows)

	for _, ind := range out.Indicators {
		col := ColumnStats{Indicator: ind}
		sum := 0.0
		for _, row := range out.Rows {
			if v, ok := row.Values[ind]; ok {
				sum += v
				col.Present++
			}
		}
		if col.Present > 0 {
			col.Mean = sum / float64(col.Present)
			col.Defined = true
			for i := range out.Rows {
				if _, ok := out.Rows[i].Values[ind]; !ok {
					out.Rows[i].Values[ind] = col.Mean
					col.Filled++
				}
			}
		}
		stats.Columns = append(stats.Columns, col)
	}
	return out, stats
}

func anyPresent(row table.Row, indicators []string) bool {
	for _, ind := range indicators {
		if _, ok := row.Values[ind]; ok {
			return true
		}
	}
	return false
}
