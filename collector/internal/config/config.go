package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultProviderType   = "worldbank"
	DefaultEndpoint       = "https://api.worldbank.org"
	DefaultTimeout        = 60 * time.Second
	DefaultUserAgent      = "compass-collector/1.0"
	DefaultMergedPath     = "relocation_data.csv"
	DefaultNormalizedPath = "relocation_data_normalized.csv"
	DefaultReportPath     = "compass_run.prom"
	DefaultDelimiter      = ","
	DefaultRoundDecimals  = 2
)

// DefaultIndicators are collected when the config lists none.
var DefaultIndicators = []Indicator{
	{Code: "SH.MED.BEDS.ZS", Label: "Hospital Beds"},
	{Code: "EN.ATM.PM25.MC.M3", Label: "Air Pollution", LowerIsBetter: true},
	{Code: "SE.SEC.NENR", Label: "Secondary School Enrollment"},
	{Code: "SH.DTH.COMM.ZS", Label: "Disease Mortality", LowerIsBetter: true},
	{Code: "SH.STA.TRAF.P5", Label: "Traffic Deaths", LowerIsBetter: true},
}

// DefaultAggregates are the World Bank roster rows that are not countries.
var DefaultAggregates = []string{
	"World", "High income", "Low income", "Upper middle income", "Lower middle income",
	"Euro area", "European Union", "OECD members", "Post-demographic dividend",
	"Pre-demographic dividend", "IDA", "IBRD", "Sub-Saharan Africa", "East Asia & Pacific",
	"Europe & Central Asia", "Latin America & Caribbean", "Middle East & North Africa",
	"North America", "South Asia",
}

// Config holds the collector configuration parsed from the `collector:`
// section of config.yaml. The `dashboard:` key in the same file is ignored.
type Config struct {
	Collector CollectorConfig `yaml:"collector"`
}

// CollectorConfig holds all collector-side settings.
type CollectorConfig struct {
	Provider ProviderConfig `yaml:"provider"`

	// Indicators are fetched and merged in this order. The first indicator's
	// roster is the base country list.
	Indicators []Indicator `yaml:"indicators" validate:"min=1,dive"`

	// Aggregates lists roster names that are regions or income groups.
	Aggregates []string `yaml:"aggregates"`

	Output OutputConfig `yaml:"output"`
}

// ProviderConfig selects where raw indicator data comes from.
type ProviderConfig struct {
	// Type is one of: worldbank | file.
	Type string `yaml:"type" validate:"oneof=worldbank file"`

	// Endpoint is the World Bank API base URL. Used when Type == "worldbank".
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`

	// Dir holds one <code>.csv file per indicator. Used when Type == "file".
	Dir string `yaml:"dir"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent"`
}

// Indicator is one statistic to collect.
type Indicator struct {
	// Code is the provider's indicator identifier, e.g. SH.MED.BEDS.ZS.
	Code string `yaml:"code" validate:"required"`

	// Label names the column in the output files.
	Label string `yaml:"label" validate:"required,excludes=_Norm"`

	// LowerIsBetter inverts the normalized value.
	LowerIsBetter bool `yaml:"lower_is_better"`
}

// OutputConfig names the files the collector writes.
type OutputConfig struct {
	MergedPath     string `yaml:"merged_path" validate:"required"`
	NormalizedPath string `yaml:"normalized_path" validate:"required"`

	// ReportPath is the run report. Empty disables it.
	ReportPath string `yaml:"report_path"`

	// Delimiter is the single-character field separator.
	Delimiter string `yaml:"delimiter" validate:"len=1"`

	// RoundDecimals rounds raw values before writing; -1 disables rounding.
	RoundDecimals int `yaml:"round_decimals" validate:"min=-1,max=15"`
}

// Comma returns the delimiter as a rune.
func (o OutputConfig) Comma() rune {
	return []rune(o.Delimiter)[0]
}

// LowerIsBetter returns the set of inverted indicator labels.
func (c CollectorConfig) LowerIsBetter() map[string]bool {
	out := make(map[string]bool)
	for _, ind := range c.Indicators {
		if ind.LowerIsBetter {
			out[ind.Label] = true
		}
	}
	return out
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
	if len(cfg.Collector.Indicators) == 0 {
		cfg.Collector.Indicators = append([]Indicator(nil), DefaultIndicators...)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Collector: CollectorConfig{
			Provider: ProviderConfig{
				Type:      DefaultProviderType,
				Endpoint:  DefaultEndpoint,
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			Aggregates: append([]string(nil), DefaultAggregates...),
			Output: OutputConfig{
				MergedPath:     DefaultMergedPath,
				NormalizedPath: DefaultNormalizedPath,
				ReportPath:     DefaultReportPath,
				Delimiter:      DefaultDelimiter,
				RoundDecimals:  DefaultRoundDecimals,
			},
		},
	}
}

var structValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlName)
	return v
}()

// validate checks struct tags, then constraints that span fields.
func validate(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return translate(verrs)
		}
		return err
	}

	c := cfg.Collector
	switch c.Provider.Type {
	case "worldbank":
		if c.Provider.Endpoint == "" {
			return fmt.Errorf("collector.provider.endpoint is required for type worldbank")
		}
	case "file":
		if c.Provider.Dir == "" {
			return fmt.Errorf("collector.provider.dir is required for type file")
		}
	}

	codes := make(map[string]bool, len(c.Indicators))
	labels := make(map[string]bool, len(c.Indicators))
	for i, ind := range c.Indicators {
		if codes[ind.Code] {
			return fmt.Errorf("collector.indicators[%d]: duplicate code %q", i, ind.Code)
		}
		if labels[ind.Label] {
			return fmt.Errorf("collector.indicators[%d]: duplicate label %q", i, ind.Label)
		}
		codes[ind.Code], labels[ind.Label] = true, true
	}

	if c.Output.MergedPath == c.Output.NormalizedPath {
		return fmt.Errorf("collector.output: merged_path and normalized_path must differ")
	}
	return nil
}

// translate turns validator errors into one error with yaml field paths.
func translate(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace starts with the root type name.
		_, ns, _ := strings.Cut(fe.Namespace(), ".")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", ns, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", ns, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// yamlName reports fields by their yaml key.
func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	return name
}
