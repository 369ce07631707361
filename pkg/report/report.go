package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric names written to the report.
const (
	metricInfo      = "compass_run_info"
	metricTimestamp = "compass_run_timestamp_seconds"
	metricDuration  = "compass_run_duration_seconds"
	metricCountries = "compass_countries"
	metricCoverage  = "compass_indicator_coverage_ratio"
	metricImputed   = "compass_indicator_imputed_values"
	metricMean      = "compass_indicator_mean"
)

// Country count stages, in the order they are written.
const (
	StageRoster     = "roster"
	StageAggregate  = "aggregate"
	StageUnresolved = "unresolved"
	StageMerged     = "merged"
	StageDropped    = "dropped"
	StageRetained   = "retained"
)

var stages = []string{StageRoster, StageAggregate, StageUnresolved, StageMerged, StageDropped, StageRetained}

// Run summarises one collector run.
type Run struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration

	// Countries holds the number of countries at each stage, keyed by Stage*.
	Countries map[string]int

	Indicators []IndicatorStats
}

// IndicatorStats describes one indicator column after imputation.
type IndicatorStats struct {
	Name string

	// Coverage is the share of retained countries that had a real value
	// before imputation, in [0, 1].
	Coverage float64

	// Imputed is the number of values filled with the column mean.
	Imputed int

	// Mean is the column mean used for imputation. Only meaningful when
	// MeanDefined is true.
	Mean        float64
	MeanDefined bool
}

// Families converts r into metric families, in a stable order.
func Families(r *Run) []*dto.MetricFamily {
	countries := make([]*dto.Metric, 0, len(stages))
	for _, s := range stages {
		countries = append(countries, sample(float64(r.Countries[s]), "stage", s))
	}

	var coverage, imputed, mean []*dto.Metric
	for _, ind := range r.Indicators {
		coverage = append(coverage, sample(ind.Coverage, "indicator", ind.Name))
		imputed = append(imputed, sample(float64(ind.Imputed), "indicator", ind.Name))
		if ind.MeanDefined {
			mean = append(mean, sample(ind.Mean, "indicator", ind.Name))
		}
	}

	mfs := []*dto.MetricFamily{
		gauge(metricInfo, "Collector run identity.", sample(1, "run_id", r.ID)),
		gauge(metricTimestamp, "Unix time the run started.", sample(float64(r.StartedAt.UnixMilli())/1000)),
		gauge(metricDuration, "Wall-clock duration of the run.", sample(r.Duration.Seconds())),
		gauge(metricCountries, "Countries per pipeline stage.", countries...),
	}
	if len(coverage) > 0 {
		mfs = append(mfs,
			gauge(metricCoverage, "Share of retained countries with a real value before imputation.", coverage...),
			gauge(metricImputed, "Values filled with the column mean.", imputed...),
		)
	}
	if len(mean) > 0 {
		mfs = append(mfs, gauge(metricMean, "Column mean used for imputation.", mean...))
	}
	return mfs
}

// Write encodes r in the Prometheus text format.
func Write(w io.Writer, r *Run) error {
	for _, mf := range Families(r) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes r to path atomically.
func WriteFile(path string, r *Run) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("report: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := Write(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: rename: %w", err)
	}
	return nil
}

// ReadFile parses the report at path.
func ReadFile(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: open: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a report written by Write. Unknown metric families are ignored.
func Parse(in io.Reader) (*Run, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(in)
	if err != nil {
		return nil, fmt.Errorf("report: parse: %w", err)
	}
	if mfs[metricInfo] == nil {
		return nil, fmt.Errorf("report: %s missing", metricInfo)
	}

	r := &Run{Countries: make(map[string]int)}
	for _, m := range mfs[metricInfo].GetMetric() {
		r.ID = labelValue(m, "run_id")
	}
	if v, ok := single(mfs[metricTimestamp]); ok {
		r.StartedAt = time.UnixMilli(int64(math.Round(v * 1000))).UTC()
	}
	if v, ok := single(mfs[metricDuration]); ok {
		r.Duration = time.Duration(v * float64(time.Second))
	}
	for _, m := range mfs[metricCountries].GetMetric() {
		r.Countries[labelValue(m, "stage")] = int(m.GetGauge().GetValue())
	}

	// Indicator order follows the coverage family, which lists every indicator.
	byName := map[string]*IndicatorStats{}
	for _, m := range mfs[metricCoverage].GetMetric() {
		name := labelValue(m, "indicator")
		r.Indicators = append(r.Indicators, IndicatorStats{Name: name, Coverage: m.GetGauge().GetValue()})
	}
	for i := range r.Indicators {
		byName[r.Indicators[i].Name] = &r.Indicators[i]
	}
	for _, m := range mfs[metricImputed].GetMetric() {
		if st, ok := byName[labelValue(m, "indicator")]; ok {
			st.Imputed = int(m.GetGauge().GetValue())
		}
	}
	for _, m := range mfs[metricMean].GetMetric() {
		if st, ok := byName[labelValue(m, "indicator")]; ok {
			st.Mean = m.GetGauge().GetValue()
			st.MeanDefined = true
		}
	}
	return r, nil
}

// gauge builds a GAUGE family.
func gauge(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}

// sample builds one gauge sample. labels is a flat name, value, name, value list.
func sample(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

// single returns the value of a family holding exactly one gauge sample.
func single(mf *dto.MetricFamily) (float64, bool) {
	if mf == nil || len(mf.GetMetric()) != 1 {
		return 0, false
	}
	return mf.GetMetric()[0].GetGauge().GetValue(), true
}
