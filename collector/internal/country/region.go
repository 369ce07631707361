package country

import "github.com/rootless/compass/pkg/table"

var regions = func() map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.alpha3] = e.region
	}
	return m
}()

// Region returns the region of an alpha-3 code, or Other for unknown codes.
func Region(code string) string {
	if r, ok := regions[code]; ok {
		return r
	}
	return Other
}

// TagRegions returns a copy of t with every row's Region set from its code.
func TagRegions(t *table.Table) *table.Table {
	out := t.Clone()
	for i := range out.Rows {
		out.Rows[i].Region = Region(out.Rows[i].Code)
	}
	return out
}
