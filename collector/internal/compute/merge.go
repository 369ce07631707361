package compute

import "github.com/rootless/compass/pkg/table"

// Series is one indicator's latest values, ready to be merged.
type Series struct {
	Indicator string
	Values    table.LatestValues
}

// Merge left-joins every series onto base. The result has one row per
// resolved country in base order and one column per series in series order.
// Unresolved records are skipped and a repeated code keeps its first row.
// A country absent from a series keeps a missing value for that indicator.
func Merge(base []table.CountryRecord, series []Series) *table.Table {
	t := &table.Table{Indicators: make([]string, 0, len(series))}
	for _, s := range series {
		t.Indicators = append(t.Indicators, s.Indicator)
	}

	seen := make(map[string]bool, len(base))
	for _, rec := range base {
		if !rec.Resolved() || seen[rec.ISOCode] {
			continue
		}
		seen[rec.ISOCode] = true

		row := table.Row{
			Name:   rec.Name,
			Code:   rec.ISOCode,
			Region: rec.Region,
			Values: make(map[string]float64, len(series)),
		}
		for _, s := range series {
			if v, ok := s.Values[rec.ISOCode]; ok {
				row.Values[s.Indicator] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
