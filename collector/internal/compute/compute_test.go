package compute

import (
	"math"
	"testing"

	"github.com/rootless/compass/pkg/table"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// column builds a single-indicator table from values; math.NaN() marks a
// missing cell in the fixture only.
func column(indicator string, values ...float64) *table.Table {
	t := &table.Table{Indicators: []string{indicator}}
	for i, v := range values {
		row := table.Row{
			Code:   string(rune('A'+i)) + "AA",
			Values: map[string]float64{},
		}
		if !math.IsNaN(v) {
			row.Values[indicator] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// --- Latest ---

func TestLatest(t *testing.T) {
	it := table.NewIndicatorTable("Beds")
	it.Set("FRA", "2019", 5.9)
	it.Set("FRA", "2021", 5.7)
	it.Set("FRA", "2020", 5.8)
	// Non-contiguous years: 2009 beats 1998 and "9" is not compared as text.
	it.Set("CHE", "1998", 6.1)
	it.Set("CHE", "2009", 5.0)
	it.Set("CHE", "9", 1.0)
	// A non-numeric label never beats a numeric one.
	it.Set("NOR", "2015", 3.5)
	it.Set("NOR", "latest", 99)
	// Two non-numeric labels compare lexically.
	it.Set("XYZ", "b", 2)
	it.Set("XYZ", "a", 1)
	it.Years["EMP"] = map[string]float64{}

	got := Latest(it)

	want := map[string]float64{"FRA": 5.7, "CHE": 5.0, "NOR": 3.5, "XYZ": 2}
	for code, w := range want {
		if v, ok := got[code]; !ok || v != w {
			t.Errorf("Latest[%s] = %v (present=%v), want %v", code, v, ok, w)
		}
	}
	if _, ok := got["EMP"]; ok {
		t.Error("country without data must be missing, not zero")
	}
}

// --- Merge ---

func TestMerge_LeftJoin(t *testing.T) {
	base := []table.CountryRecord{
		{Name: "France", ISOCode: "FRA"},
		{Name: "Atlantis"}, // unresolved
		{Name: "Germany", ISOCode: "DEU"},
		{Name: "France (dup)", ISOCode: "FRA"},
	}
	got := Merge(base, []Series{
		{Indicator: "Beds", Values: table.LatestValues{"FRA": 5.7, "DEU": 7.8, "ATL": 1}},
		{Indicator: "PM25", Values: table.LatestValues{"DEU": 11.1}},
	})

	if len(got.Indicators) != 2 || got.Indicators[0] != "Beds" || got.Indicators[1] != "PM25" {
		t.Fatalf("Indicators = %v", got.Indicators)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (unresolved and duplicate excluded)", len(got.Rows))
	}
	fra := got.Rows[0]
	if fra.Code != "FRA" || fra.Name != "France" {
		t.Errorf("first row = %+v, want France/FRA", fra)
	}
	if _, ok := fra.Value("PM25"); ok {
		t.Error("FRA PM25 should stay missing after left join")
	}
	if v, _ := got.Rows[1].Value("PM25"); v != 11.1 {
		t.Errorf("DEU PM25 = %v, want 11.1", v)
	}
	if _, ok := got.Find("ATL"); ok {
		t.Error("code not in base must not appear in merged table")
	}
}

// --- Impute ---

func TestImpute_DropAndFill(t *testing.T) {
	in := &table.Table{
		Indicators: []string{"A", "B"},
		Rows: []table.Row{
			{Code: "ONE", Values: map[string]float64{"A": 5}},
			{Code: "TWO", Values: map[string]float64{"A": 1, "B": 5}},
			{Code: "TRE", Values: map[string]float64{"A": 3, "B": 10}},
			{Code: "NIL", Values: map[string]float64{}},
		},
	}

	out, stats := Impute(in)

	if len(out.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(out.Rows))
	}
	if len(stats.Dropped) != 1 || stats.Dropped[0] != "NIL" {
		t.Errorf("Dropped = %v, want [NIL]", stats.Dropped)
	}
	// [5, missing] with column mean 7.5 becomes [5, 7.5].
	one := out.Rows[0]
	if v, _ := one.Value("A"); v != 5 {
		t.Errorf("ONE.A = %v, want 5", v)
	}
	if v, ok := one.Value("B"); !ok || !almostEqual(v, 7.5, 1e-9) {
		t.Errorf("ONE.B = %v (present=%v), want 7.5", v, ok)
	}
	b := stats.Columns[1]
	if b.Filled != 1 || b.Present != 2 || !b.Defined {
		t.Errorf("B stats = %+v", b)
	}
	if !almostEqual(b.Coverage(stats.Retained), 2.0/3, 1e-9) {
		t.Errorf("B coverage = %v", b.Coverage(stats.Retained))
	}
	if _, ok := in.Rows[0].Values["B"]; ok {
		t.Error("Impute mutated its input")
	}
}

func TestImpute_NoMissingAfterwards(t *testing.T) {
	in := &table.Table{Indicators: []string{"A", "B", "C"}}
	for i := 0; i < 20; i++ {
		row := table.Row{Code: string(rune('A'+i)) + "XX", Values: map[string]float64{}}
		// Sparse pattern that leaves every row with at least one value
		// except every seventh one.
		if i%2 == 0 {
			row.Values["A"] = float64(i)
		}
		if i%3 == 0 {
			row.Values["B"] = float64(i * 2)
		}
		if i%5 == 0 || i%7 == 1 {
			row.Values["C"] = float64(i) / 3
		}
		in.Rows = append(in.Rows, row)
	}

	out, stats := Impute(in)
	if len(stats.Undefined()) != 0 {
		t.Fatalf("unexpected undefined columns %v", stats.Undefined())
	}
	for _, row := range out.Rows {
		for _, ind := range out.Indicators {
			if _, ok := row.Value(ind); !ok {
				t.Errorf("row %s still missing %s", row.Code, ind)
			}
		}
	}
	if stats.Retained+len(stats.Dropped) != len(in.Rows) {
		t.Errorf("retained %d + dropped %d != %d", stats.Retained, len(stats.Dropped), len(in.Rows))
	}
}

func TestImpute_UndefinedColumn(t *testing.T) {
	in := &table.Table{
		Indicators: []string{"A", "Empty"},
		Rows: []table.Row{
			{Code: "ONE", Values: map[string]float64{"A": 1}},
			{Code: "TWO", Values: map[string]float64{"A": 2}},
		},
	}
	out, stats := Impute(in)
	if got := stats.Undefined(); len(got) != 1 || got[0] != "Empty" {
		t.Fatalf("Undefined = %v, want [Empty]", got)
	}
	for _, row := range out.Rows {
		v, ok := row.Value("Empty")
		if ok {
			t.Errorf("row %s Empty = %v, want missing", row.Code, v)
		}
	}
}

// --- Round ---

func TestRound(t *testing.T) {
	in := column("A", 1.005001, -2.675001, 3.14159)
	got := Round(in, 2)
	want := []float64{1.01, -2.68, 3.14}
	for i, w := range want {
		if v, _ := got.Rows[i].Value("A"); !almostEqual(v, w, 1e-9) {
			t.Errorf("row %d = %v, want %v", i, v, w)
		}
	}
	if v, _ := in.Rows[2].Value("A"); v != 3.14159 {
		t.Error("Round mutated its input")
	}
	if v, _ := Round(in, -1).Rows[2].Value("A"); v != 3.14159 {
		t.Errorf("negative decimals should disable rounding, got %v", v)
	}
}

// --- Normalize ---

func TestNormalize_Scaling(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		invert bool
		want   []float64
	}{
		{name: "higher is better", values: []float64{10, 20, 30}, want: []float64{0, 0.5, 1}},
		{name: "constant column", values: []float64{5, 5, 5}, want: []float64{0, 0, 0}},
		{name: "constant inverted column", values: []float64{5, 5}, invert: true, want: []float64{1, 1}},
		{name: "lower is better", values: []float64{1, 2, 3}, invert: true, want: []float64{1, 0.5, 0}},
		{name: "negative values", values: []float64{-4, 0, 4}, want: []float64{0, 0.5, 1}},
		{name: "single row", values: []float64{42}, want: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(column("X", tt.values...), map[string]bool{"X": tt.invert})
			for i, w := range tt.want {
				v, ok := out.Rows[i].Normalized("X")
				if !ok || !almostEqual(v, w, 1e-9) {
					t.Errorf("row %d norm = %v (present=%v), want %v", i, v, ok, w)
				}
			}
		})
	}
}

func TestNormalize_RangeAndRawUntouched(t *testing.T) {
	in := column("X", 3.2, -1.5, 17, 0.001, 9.9, 17)
	out := Normalize(in, map[string]bool{"X": true})
	for i, row := range out.Rows {
		v, _ := row.Normalized("X")
		if v < 0 || v > 1 {
			t.Errorf("row %d norm %v outside [0,1]", i, v)
		}
		raw, _ := row.Value("X")
		orig, _ := in.Rows[i].Value("X")
		if raw != orig {
			t.Errorf("row %d raw overwritten: %v != %v", i, raw, orig)
		}
	}
	if in.Normalized() {
		t.Error("Normalize mutated its input")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := &table.Table{
		Indicators: []string{"A", "B"},
		Rows: []table.Row{
			{Code: "ONE", Values: map[string]float64{"A": 1, "B": 9}},
			{Code: "TWO", Values: map[string]float64{"A": 4, "B": 3}},
			{Code: "TRE", Values: map[string]float64{"A": 2, "B": 6}},
		},
	}
	invert := map[string]bool{"B": true}
	once := Normalize(in, invert)
	twice := Normalize(once, invert)
	for i := range once.Rows {
		for _, ind := range in.Indicators {
			a, _ := once.Rows[i].Normalized(ind)
			b, _ := twice.Rows[i].Normalized(ind)
			if a != b {
				t.Errorf("row %d %s: %v then %v", i, ind, a, b)
			}
		}
	}
}

func TestNormalize_MissingRawStaysMissing(t *testing.T) {
	out := Normalize(column("X", 1, math.NaN(), 3), nil)
	if _, ok := out.Rows[1].Normalized("X"); ok {
		t.Error("row with missing raw value should get no normalized value")
	}
	if v, _ := out.Rows[2].Normalized("X"); v != 1 {
		t.Errorf("max row = %v, want 1", v)
	}
}
