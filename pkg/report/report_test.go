package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleRun() *Run {
	return &Run{
		ID:        "3f0c2a4e-9a51-4c1e-8f57-1e2b6f1d0a11",
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 250_000_000, time.UTC),
		Duration:  1500 * time.Millisecond,
		Countries: map[string]int{
			StageRoster: 266, StageAggregate: 19, StageUnresolved: 4,
			StageMerged: 217, StageDropped: 2, StageRetained: 215,
		},
		Indicators: []IndicatorStats{
			{Name: "Hospital Beds", Coverage: 0.9, Imputed: 21, Mean: 2.85, MeanDefined: true},
			{Name: "Air Pollution", Coverage: 0, Imputed: 0},
		},
	}
}

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRun()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`# TYPE compass_run_info gauge`,
		`compass_run_info{run_id="3f0c2a4e-9a51-4c1e-8f57-1e2b6f1d0a11"} 1`,
		`compass_countries{stage="retained"} 215`,
		`compass_indicator_coverage_ratio{indicator="Hospital Beds"} 0.9`,
		`compass_indicator_mean{indicator="Hospital Beds"} 2.85`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, `compass_indicator_mean{indicator="Air Pollution"}`) {
		t.Error("undefined mean must not be written")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	in := sampleRun()
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.ID != in.ID {
		t.Errorf("ID = %q, want %q", got.ID, in.ID)
	}
	if !got.StartedAt.Equal(in.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, in.StartedAt)
	}
	if got.Duration != in.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, in.Duration)
	}
	if got.Countries[StageDropped] != 2 || got.Countries[StageRoster] != 266 {
		t.Errorf("Countries = %v", got.Countries)
	}
	if len(got.Indicators) != 2 || got.Indicators[0].Name != "Hospital Beds" {
		t.Fatalf("Indicators = %+v", got.Indicators)
	}
	if !got.Indicators[0].MeanDefined || got.Indicators[0].Imputed != 21 {
		t.Errorf("Hospital Beds = %+v", got.Indicators[0])
	}
	if got.Indicators[1].MeanDefined {
		t.Errorf("Air Pollution mean should be undefined: %+v", got.Indicators[1])
	}
}

func TestParse_MissingInfo(t *testing.T) {
	_, err := Parse(strings.NewReader("compass_run_duration_seconds 1\n"))
	if err == nil {
		t.Fatal("expected error for report without run info")
	}
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.prom")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, sampleRun()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Countries[StageRetained] != 215 {
		t.Errorf("retained = %d, want 215", got.Countries[StageRetained])
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
