package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/rootless/compass/dashboard/internal/config"
	"github.com/rootless/compass/dashboard/internal/dataset"
	"github.com/rootless/compass/pkg/report"
	"github.com/rootless/compass/pkg/table"
)

// Handler serves the /api/v1/* endpoints and /metrics.
// It reads the normalized table through the dataset handle and returns JSON.
type Handler struct {
	data   *dataset.Handle
	cfg    config.DashboardConfig
	router *httprouter.Router

	mu       sync.Mutex
	requests map[string]float64 // route → count
}

// New creates a Handler wired to the given dataset and registers all routes.
func New(data *dataset.Handle, cfg config.DashboardConfig) *Handler {
	h := &Handler{
		data:     data,
		cfg:      cfg,
		router:   httprouter.New(),
		requests: make(map[string]float64),
	}
	h.RegisterRoutes(h.router)
	h.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	h.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonErr(w, http.StatusNotFound, "not found")
	})
	return h
}

// RegisterRoutes adds every route to router.
func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/health", h.count("health", h.health))
	router.GET("/api/v1/indicators", h.count("indicators", h.indicators))
	router.GET("/api/v1/regions", h.count("regions", h.regions))
	router.GET("/api/v1/countries", h.count("countries", h.countries))
	router.GET("/api/v1/countries/:code", h.count("country", h.country))
	router.GET("/api/v1/compare", h.count("compare", h.compare))
	router.GET("/api/v1/run", h.count("run", h.run))
	router.GET("/metrics", h.count("metrics", h.metrics))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// count wraps a route handler with a request counter.
func (h *Handler) count(route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		h.mu.Lock()
		h.requests[route]++
		h.mu.Unlock()
		next(w, r, ps)
	}
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health: dataset size and cache state.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	resp := HealthResponse{Status: "ok", DataPath: h.data.Path()}

	t, err := h.data.Get()
	st := h.data.Stats()
	resp.Loads, resp.Invalidations = st.Loads, st.Invalidations
	if err != nil {
		resp.Status = "unavailable"
		resp.Error = err.Error()
		jsonResp(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Countries = len(t.Rows)
	resp.Indicators = len(t.Scored())
	if !st.LoadedAt.IsZero() {
		resp.LoadedAt = st.LoadedAt.UTC().Format(time.RFC3339)
	}
	jsonResp(w, http.StatusOK, resp)
}

// indicators returns GET /api/v1/indicators: the comparable indicators.
func (h *Handler) indicators(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	t, ok := h.load(w)
	if !ok {
		return
	}
	scored := t.Scored()
	out := make([]IndicatorResponse, 0, len(scored))
	for _, ind := range scored {
		info, _ := h.cfg.Indicator(ind)
		out = append(out, IndicatorResponse{
			Label:         ind,
			NormColumn:    table.NormColumn(ind),
			Description:   info.Description,
			LowerIsBetter: info.LowerIsBetter,
		})
	}
	jsonResp(w, http.StatusOK, out)
}

// regions returns GET /api/v1/regions: sorted unique regions.
func (h *Handler) regions(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	t, ok := h.load(w)
	if !ok {
		return
	}
	jsonResp(w, http.StatusOK, RegionsResponse{Regions: regionsOf(t)})
}

// countries returns GET /api/v1/countries?region=…: countries in any of the
// given regions, or all countries when no region is given.
func (h *Handler) countries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	t, ok := h.load(w)
	if !ok {
		return
	}
	rows := filterRegions(t.Rows, queryList(r, "region"))
	out := make([]CountrySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summary(row))
	}
	jsonResp(w, http.StatusOK, out)
}

// country returns GET /api/v1/countries/:code: one country by code or name.
func (h *Handler) country(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	t, ok := h.load(w)
	if !ok {
		return
	}
	row, found := t.Find(ps.ByName("code"))
	if !found {
		jsonErr(w, http.StatusNotFound, "country not found")
		return
	}
	resp := CountryResponse{
		CountrySummary: summary(row),
		Values:         row.Values,
		Normalized:     row.Norm,
	}
	if resp.Normalized == nil {
		resp.Normalized = map[string]float64{}
	}
	jsonResp(w, http.StatusOK, resp)
}

// compare returns GET /api/v1/compare?region=…&country=…: radar and bar
// chart series for the selected countries.
func (h *Handler) compare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	t, ok := h.load(w)
	if !ok {
		return
	}
	filtered := filterRegions(t.Rows, queryList(r, "region"))

	var selected []table.Row
	if names := queryList(r, "country"); len(names) > 0 {
		if len(names) > h.cfg.MaxCompare {
			jsonErr(w, http.StatusBadRequest, "select at most "+strconv.Itoa(h.cfg.MaxCompare)+" countries")
			return
		}
		sub := &table.Table{Rows: filtered}
		seen := map[string]bool{}
		for _, name := range names {
			row, found := sub.Find(name)
			if !found {
				jsonErr(w, http.StatusBadRequest, "unknown country "+strconv.Quote(name))
				return
			}
			if !seen[row.Code] {
				seen[row.Code] = true
				selected = append(selected, row)
			}
		}
	} else {
		selected = filtered
		if len(selected) > h.cfg.MaxCompare {
			selected = selected[:h.cfg.MaxCompare]
		}
	}
	if len(selected) == 0 {
		jsonErr(w, http.StatusBadRequest, "please select at least one country")
		return
	}

	jsonResp(w, http.StatusOK, h.buildComparison(t.Scored(), selected))
}

// run returns GET /api/v1/run: the last collector run and data-quality hints.
func (h *Handler) run(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if h.cfg.ReportPath == "" {
		jsonErr(w, http.StatusNotFound, "no run report configured")
		return
	}
	run, err := report.ReadFile(h.cfg.ReportPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			jsonErr(w, http.StatusNotFound, "no run report found")
			return
		}
		jsonErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := RunResponse{
		RunID:           run.ID,
		StartedAt:       run.StartedAt.UTC().Format(time.RFC3339),
		DurationSeconds: run.Duration.Seconds(),
		Countries:       run.Countries,
		Indicators:      make([]RunIndicator, 0, len(run.Indicators)),
		Diagnostics:     computeDiagnostics(run),
	}
	for _, ind := range run.Indicators {
		ri := RunIndicator{Name: ind.Name, Coverage: ind.Coverage, Imputed: ind.Imputed}
		if ind.MeanDefined {
			m := ind.Mean
			ri.Mean = &m
		}
		resp.Indicators = append(resp.Indicators, ri)
	}
	jsonResp(w, http.StatusOK, resp)
}

// --- helpers ----------------------------------------------------------------

// load returns the dataset or writes a 503 and returns false.
func (h *Handler) load(w http.ResponseWriter) (*table.Table, bool) {
	t, err := h.data.Get()
	if err != nil {
		jsonErr(w, http.StatusServiceUnavailable, "dataset unavailable: "+err.Error())
		return nil, false
	}
	return t, true
}

func (h *Handler) buildComparison(indicators []string, rows []table.Row) CompareResponse {
	resp := CompareResponse{
		Indicators: indicators,
		Countries:  make([]CountrySummary, 0, len(rows)),
		Radar:      make([]RadarSeries, 0, len(rows)),
		Bars:       make([]BarChart, 0, len(indicators)),
	}
	for _, row := range rows {
		resp.Countries = append(resp.Countries, summary(row))
		series := RadarSeries{Country: row.Name, Code: row.Code, Values: make([]*float64, len(indicators))}
		for i, ind := range indicators {
			series.Values[i] = ptr(row.Normalized(ind))
		}
		resp.Radar = append(resp.Radar, series)
	}
	for _, ind := range indicators {
		info, _ := h.cfg.Indicator(ind)
		chart := BarChart{
			Indicator:     ind,
			Description:   info.Description,
			LowerIsBetter: info.LowerIsBetter,
			Bars:          make([]BarPoint, 0, len(rows)),
		}
		for _, row := range rows {
			chart.Bars = append(chart.Bars, BarPoint{Country: row.Name, Code: row.Code, Value: ptr(row.Value(ind))})
		}
		resp.Bars = append(resp.Bars, chart)
	}
	return resp
}

func regionsOf(t *table.Table) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, row := range t.Rows {
		if row.Region != "" && !seen[row.Region] {
			seen[row.Region] = true
			out = append(out, row.Region)
		}
	}
	sort.Strings(out)
	return out
}

// filterRegions keeps rows whose region is one of regions (case-insensitive).
// An empty regions list keeps every row.
func filterRegions(rows []table.Row, regions []string) []table.Row {
	if len(regions) == 0 {
		return rows
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		for _, reg := range regions {
			if strings.EqualFold(row.Region, reg) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// queryList returns the non-empty values of a repeated query parameter.
// Values are not split on commas, so names like "Korea, Rep." stay whole.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func summary(row table.Row) CountrySummary {
	return CountrySummary{Name: row.Name, Code: row.Code, Region: row.Region}
}

func ptr(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
