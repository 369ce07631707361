package table

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Indicators: []string{"Hospital Beds", "Air Pollution"},
		Rows: []Row{
			{
				Name: "France", Code: "FRA", Region: "Europe",
				Values: map[string]float64{"Hospital Beds": 5.7, "Air Pollution": 11.4},
				Norm:   map[string]float64{"Hospital Beds": 1, "Air Pollution": 0.25},
			},
			{
				Name: "Korea, Rep.", Code: "KOR", Region: "Asia",
				Values: map[string]float64{"Hospital Beds": 12.4},
				Norm:   map[string]float64{"Hospital Beds": 0},
			},
		},
	}
}

func TestWriteCSV_ColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable(), WriteOptions{Norm: true}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := "Country Name,Country ISO-3 Code,Region,Hospital Beds,Air Pollution,Hospital Beds_Norm,Air Pollution_Norm"
	if lines[0] != want {
		t.Errorf("header:\n got %q\nwant %q", lines[0], want)
	}
	if lines[2] != `"Korea, Rep.",KOR,Asia,12.4,,0,` {
		t.Errorf("row with missing values: got %q", lines[2])
	}
}

func TestWriteCSV_WithoutNorm(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable(), WriteOptions{}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if strings.Contains(buf.String(), NormSuffix) {
		t.Errorf("merged file should not contain normalized columns:\n%s", buf.String())
	}
}

func TestReadCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable(), WriteOptions{Delimiter: ';', Norm: true}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	got, err := ReadCSV(&buf, ';')
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(got.Rows))
	}
	if len(got.Indicators) != 2 || got.Indicators[0] != "Hospital Beds" {
		t.Errorf("indicators: got %v", got.Indicators)
	}
	kor := got.Rows[1]
	if kor.Name != "Korea, Rep." || kor.Region != "Asia" {
		t.Errorf("identity: got %+v", kor)
	}
	if _, ok := kor.Value("Air Pollution"); ok {
		t.Error("empty cell should read back as missing")
	}
	if v, ok := got.Rows[0].Normalized("Air Pollution"); !ok || v != 0.25 {
		t.Errorf("Air Pollution_Norm: got %v (present=%v), want 0.25", v, ok)
	}
}

func TestReadCSV_BOMAndNoRegion(t *testing.T) {
	in := "\ufeffCountry Name,Country ISO-3 Code,Traffic Deaths\nChile,CHL,12.5\n"
	got, err := ReadCSV(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got.Rows[0].Name != "Chile" {
		t.Errorf("name after BOM: got %q", got.Rows[0].Name)
	}
	if got.Rows[0].Region != "" {
		t.Errorf("region: got %q, want empty", got.Rows[0].Region)
	}
	if got.Normalized() {
		t.Error("table without _Norm columns reported as normalized")
	}
}

func TestReadCSV_Errors(t *testing.T) {
	t.Run("no code column", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("Country Name,X\nA,1\n"), 0)
		if !errors.Is(err, ErrNoIdentity) {
			t.Errorf("err = %v, want ErrNoIdentity", err)
		}
	})
	t.Run("non-numeric cell", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("Country ISO-3 Code,X\nFRA,abc\n"), 0)
		if err == nil || !strings.Contains(err.Error(), `line 2 column "X"`) {
			t.Errorf("err = %v, want line/column context", err)
		}
	})
	t.Run("infinite cell", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("Country ISO-3 Code,X\nFRA,+Inf\n"), 0)
		if err == nil || !strings.Contains(err.Error(), "not a finite number") {
			t.Errorf("err = %v, want finite-number error", err)
		}
	})
}

func TestReadCSV_NACellsAreMissing(t *testing.T) {
	in := "Country Name,Country ISO-3 Code,Beds,Beds_Norm\nA,AAA,NaN,N/A\nB,BBB,#N/A,nan\nC,CCC,2.5,0.5\n"
	got, err := ReadCSV(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	for _, row := range got.Rows[:2] {
		if _, ok := row.Value("Beds"); ok {
			t.Errorf("%s: NA raw cell read as present", row.Code)
		}
		if _, ok := row.Normalized("Beds"); ok {
			t.Errorf("%s: NA norm cell read as present", row.Code)
		}
	}
	if v, ok := got.Rows[2].Value("Beds"); !ok || v != 2.5 {
		t.Errorf("CCC Beds = %v, %v", v, ok)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		ok      bool
		wantErr bool
	}{
		{"1.5", 1.5, true, false},
		{" -3 ", -3, true, false},
		{"", 0, false, false},
		{"NaN", 0, false, false},
		{"NA", 0, false, false},
		{"null", 0, false, false},
		{"None", 0, false, false},
		{"Inf", 0, false, true},
		{"-Infinity", 0, false, true},
		{"NAN", 0, false, true},
		{"abc", 0, false, true},
	}
	for _, tt := range tests {
		got, ok, err := ParseValue(tt.in)
		if (err != nil) != tt.wantErr || ok != tt.ok || got != tt.want {
			t.Errorf("ParseValue(%q) = %v, %v, %v", tt.in, got, ok, err)
		}
	}
}

func TestIsNormColumn(t *testing.T) {
	tests := []struct {
		col    string
		want   string
		wantOK bool
	}{
		{"Hospital Beds_Norm", "Hospital Beds", true},
		{"Hospital Beds", "", false},
		{"_Norm", "", false},
	}
	for _, tc := range tests {
		got, ok := IsNormColumn(tc.col)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("IsNormColumn(%q) = (%q, %v), want (%q, %v)", tc.col, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	src := sampleTable()
	cp := src.Clone()
	cp.Rows[0].Values["Hospital Beds"] = 99
	cp.Rows[0].Norm["Hospital Beds"] = 0.5
	if src.Rows[0].Values["Hospital Beds"] != 5.7 || src.Rows[0].Norm["Hospital Beds"] != 1 {
		t.Error("Clone shares maps with the source table")
	}
}

func TestFind(t *testing.T) {
	tbl := sampleTable()
	if r, ok := tbl.Find("fra"); !ok || r.Name != "France" {
		t.Errorf("Find by code: got %+v, %v", r, ok)
	}
	if r, ok := tbl.Find("korea, rep."); !ok || r.Code != "KOR" {
		t.Errorf("Find by name: got %+v, %v", r, ok)
	}
	if _, ok := tbl.Find("ATA"); ok {
		t.Error("Find unknown: expected false")
	}
}

func TestWriteFile_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data.csv")
	in := &Table{
		Indicators: []string{"Beds"},
		Rows:       []Row{{Name: "France", Code: "FRA", Region: "Europe", Values: map[string]float64{"Beds": 5.7}}},
	}
	if err := WriteFile(path, in, WriteOptions{}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path, ',')
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if r, ok := got.Find("FRA"); !ok || r.Values["Beds"] != 5.7 {
		t.Errorf("read back %+v", got.Rows)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.csv"), ','); err == nil {
		t.Error("expected error for missing file")
	}
}
