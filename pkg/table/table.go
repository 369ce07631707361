package table

import "strings"

// Column names of the identity part of every table file.
const (
	ColName   = "Country Name"
	ColCode   = "Country ISO-3 Code"
	ColRegion = "Region"
)

// NormSuffix is appended to an indicator label to name its normalized column.
const NormSuffix = "_Norm"

// NormColumn returns the normalized column name for indicator.
func NormColumn(indicator string) string {
	return indicator + NormSuffix
}

// IsNormColumn reports whether col names a normalized column and returns the
// indicator label it belongs to.
func IsNormColumn(col string) (string, bool) {
	if !strings.HasSuffix(col, NormSuffix) || len(col) == len(NormSuffix) {
		return "", false
	}
	return strings.TrimSuffix(col, NormSuffix), true
}

// RosterEntry is one row of a provider's country listing, in provider order.
// Aggregates ("World", income groups, ...) are still present at this stage.
type RosterEntry struct {
	Name string
	Code string
}

// Key identifies the entry's values in IndicatorTable.Years: the provider
// code, or the name when the code is blank.
func (e RosterEntry) Key() string {
	if e.Code != "" {
		return e.Code
	}
	return e.Name
}

// IndicatorTable is the raw per-country-per-year data of one indicator.
type IndicatorTable struct {
	// Indicator is the human-readable label the values are merged under.
	Indicator string

	// Roster lists every country row the provider returned, in order.
	Roster []RosterEntry

	// Years maps a roster key (see RosterEntry.Key) → year label → value.
	// Missing cells are absent.
	Years map[string]map[string]float64
}

// NewIndicatorTable returns an empty table for the given label.
func NewIndicatorTable(indicator string) *IndicatorTable {
	return &IndicatorTable{
		Indicator: indicator,
		Years:     make(map[string]map[string]float64),
	}
}

// Set records value for (code, year), creating the country entry if needed.
func (t *IndicatorTable) Set(code, year string, value float64) {
	row, ok := t.Years[code]
	if !ok {
		row = make(map[string]float64)
		t.Years[code] = row
	}
	row[year] = value
}

// LatestValues maps a country code to a single value. Absent = missing.
type LatestValues map[string]float64

// CountryRecord is one entry of the canonical country list. An empty ISOCode
// means the country could not be resolved.
type CountryRecord struct {
	Name    string
	ISOCode string
	Region  string
}

// Resolved reports whether the record carries a canonical code.
func (c CountryRecord) Resolved() bool { return c.ISOCode != "" }

// Row is one country in a merged or normalized table.
type Row struct {
	Name   string
	Code   string
	Region string

	// Values holds raw indicator values keyed by indicator label.
	Values map[string]float64

	// Norm holds normalized values keyed by indicator label (not by column
	// name). Nil until the table has been normalized.
	Norm map[string]float64
}

// Value returns the raw value of indicator and whether it is present.
func (r Row) Value(indicator string) (float64, bool) {
	v, ok := r.Values[indicator]
	return v, ok
}

// Normalized returns the normalized value of indicator and whether it is present.
func (r Row) Normalized(indicator string) (float64, bool) {
	v, ok := r.Norm[indicator]
	return v, ok
}

// clone returns a deep copy of r.
func (r Row) clone() Row {
	out := r
	out.Values = cloneMap(r.Values)
	if r.Norm != nil {
		out.Norm = cloneMap(r.Norm)
	}
	return out
}

// Table is a wide per-country table with one column per indicator.
type Table struct {
	// Indicators is the ordered list of indicator labels (raw columns).
	Indicators []string
	Rows       []Row
}

// Clone returns a deep copy of t. Stages that transform a table work on a
// clone so their input stays untouched.
func (t *Table) Clone() *Table {
	out := &Table{
		Indicators: append([]string(nil), t.Indicators...),
		Rows:       make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = r.clone()
	}
	return out
}

// Normalized reports whether any row carries normalized values.
func (t *Table) Normalized() bool {
	for _, r := range t.Rows {
		if len(r.Norm) > 0 {
			return true
		}
	}
	return false
}

// Find returns the row whose code matches code, or whose name matches it
// case-insensitively.
func (t *Table) Find(key string) (Row, bool) {
	for _, r := range t.Rows {
		if strings.EqualFold(r.Code, key) || strings.EqualFold(r.Name, key) {
			return r, true
		}
	}
	return Row{}, false
}

// Column returns the raw values of indicator in row order, and a parallel
// slice telling which entries are present.
func (t *Table) Column(indicator string) ([]float64, []bool) {
	vals := make([]float64, len(t.Rows))
	ok := make([]bool, len(t.Rows))
	for i, r := range t.Rows {
		vals[i], ok[i] = r.Values[indicator]
	}
	return vals, ok
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Scored returns the indicators for which at least one row has a normalized
// value, in table order.
func (t *Table) Scored() []string {
	var out []string
	for _, ind := range t.Indicators {
		for _, r := range t.Rows {
			if _, ok := r.Norm[ind]; ok {
				out = append(out, ind)
				break
			}
		}
	}
	return out
}
