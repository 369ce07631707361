package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values for the dashboard configuration.
const (
	DefaultPort       = 8501
	DefaultDataPath   = "relocation_data_normalized.csv"
	DefaultReportPath = "compass_run.prom"
	DefaultDelimiter  = ","
	DefaultMaxCompare = 5
)

// DefaultIndicators describe the indicators the collector writes by default.
var DefaultIndicators = []IndicatorInfo{
	{Label: "Hospital Beds", Description: "Number of hospital beds per 1,000 people. Higher is better."},
	{Label: "Air Pollution", Description: "Mean annual exposure to PM2.5 air pollution (micrograms per cubic meter). Lower is better.", LowerIsBetter: true},
	{Label: "Secondary School Enrollment", Description: "Percentage of relevant age group enrolled in secondary school. Higher is better."},
	{Label: "Disease Mortality", Description: "Deaths from communicable diseases (% of total deaths). Lower is better.", LowerIsBetter: true},
	{Label: "Traffic Deaths", Description: "Estimated road traffic deaths per 100,000 people. Lower is better.", LowerIsBetter: true},
}

// Config holds the dashboard configuration parsed from the `dashboard:`
// section of config.yaml. The `collector:` key in the same file is ignored.
type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DashboardConfig holds all dashboard settings.
type DashboardConfig struct {
	// Port is the HTTP listen port (default 8501).
	Port int `yaml:"port" validate:"min=1,max=65535"`

	// DataPath is the normalized table written by the collector.
	DataPath string `yaml:"data_path" validate:"required"`

	// ReportPath is the collector run report. Empty disables /api/v1/run.
	ReportPath string `yaml:"report_path"`

	// Delimiter is the single-character field separator of DataPath.
	Delimiter string `yaml:"delimiter" validate:"len=1"`

	// MaxCompare caps the countries in one comparison (default 5).
	MaxCompare int `yaml:"max_compare" validate:"min=1,max=50"`

	// Watch invalidates the cached table when DataPath changes on disk.
	Watch bool `yaml:"watch"`

	// Indicators describes indicator columns for display.
	Indicators []IndicatorInfo `yaml:"indicators" validate:"dive"`
}

// IndicatorInfo is the display metadata of one indicator column.
type IndicatorInfo struct {
	Label         string `yaml:"label" validate:"required"`
	Description   string `yaml:"description"`
	LowerIsBetter bool   `yaml:"lower_is_better"`
}

// Comma returns the delimiter as a rune.
func (d DashboardConfig) Comma() rune {
	return []rune(d.Delimiter)[0]
}

// Indicator returns the metadata for label, if configured.
func (d DashboardConfig) Indicator(label string) (IndicatorInfo, bool) {
	for _, ind := range d.Indicators {
		if ind.Label == label {
			return ind, true
		}
	}
	return IndicatorInfo{}, false
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Port:       DefaultPort,
			DataPath:   DefaultDataPath,
			ReportPath: DefaultReportPath,
			Delimiter:  DefaultDelimiter,
			MaxCompare: DefaultMaxCompare,
			Watch:      true,
			Indicators: append([]IndicatorInfo(nil), DefaultIndicators...),
		},
	}
}

var structValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// validate checks struct tags and duplicate indicator labels.
func validate(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			_, ns, _ := strings.Cut(fe.Namespace(), ".")
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", ns, fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	seen := make(map[string]bool, len(cfg.Dashboard.Indicators))
	for i, ind := range cfg.Dashboard.Indicators {
		if seen[ind.Label] {
			return fmt.Errorf("dashboard.indicators[%d]: duplicate label %q", i, ind.Label)
		}
		seen[ind.Label] = true
	}
	return nil
}
