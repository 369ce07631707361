package api

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status        string `json:"status"` // "ok" | "unavailable"
	DataPath      string `json:"data_path"`
	Countries     int    `json:"countries"`
	Indicators    int    `json:"indicators"`
	LoadedAt      string `json:"loaded_at,omitempty"` // RFC3339
	Loads         int    `json:"loads"`
	Invalidations int    `json:"invalidations"`
	Error         string `json:"error,omitempty"`
}

// IndicatorResponse describes one comparable indicator.
type IndicatorResponse struct {
	Label         string `json:"label"`
	NormColumn    string `json:"norm_column"`
	Description   string `json:"description,omitempty"`
	LowerIsBetter bool   `json:"lower_is_better"`
}

// RegionsResponse is the payload for GET /api/v1/regions.
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// CountrySummary is one entry in GET /api/v1/countries.
type CountrySummary struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Region string `json:"region"`
}

// CountryResponse is the payload for GET /api/v1/countries/:code.
// Missing values are omitted from the maps.
type CountryResponse struct {
	CountrySummary
	Values     map[string]float64 `json:"values"`
	Normalized map[string]float64 `json:"normalized"`
}

// CompareResponse is the payload for GET /api/v1/compare.
type CompareResponse struct {
	Indicators []string         `json:"indicators"`
	Countries  []CountrySummary `json:"countries"`
	Radar      []RadarSeries    `json:"radar"`
	Bars       []BarChart       `json:"bars"`
}

// RadarSeries is one country's trace on the radar chart. Values follow
// CompareResponse.Indicators; a missing value is null. The radial axis
// range is [0, 1].
type RadarSeries struct {
	Country string     `json:"country"`
	Code    string     `json:"code"`
	Values  []*float64 `json:"values"`
}

// BarChart is the raw-value chart of one indicator.
type BarChart struct {
	Indicator     string     `json:"indicator"`
	Description   string     `json:"description,omitempty"`
	LowerIsBetter bool       `json:"lower_is_better"`
	Bars          []BarPoint `json:"bars"`
}

// BarPoint is one country's raw value. Value is null when missing.
type BarPoint struct {
	Country string   `json:"country"`
	Code    string   `json:"code"`
	Value   *float64 `json:"value"`
}

// RunResponse is the payload for GET /api/v1/run.
type RunResponse struct {
	RunID           string           `json:"run_id"`
	StartedAt       string           `json:"started_at"` // RFC3339
	DurationSeconds float64          `json:"duration_seconds"`
	Countries       map[string]int   `json:"countries"`
	Indicators      []RunIndicator   `json:"indicators"`
	Diagnostics     []DiagnosticHint `json:"diagnostics"`
}

// RunIndicator is the imputation summary of one indicator.
type RunIndicator struct {
	Name     string   `json:"name"`
	Coverage float64  `json:"coverage"`
	Imputed  int      `json:"imputed"`
	Mean     *float64 `json:"mean"`
}

// errorResponse is the standard JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}
