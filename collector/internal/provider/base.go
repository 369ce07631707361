package provider

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rootless/compass/collector/internal/config"
	"github.com/rootless/compass/pkg/table"
)

// Header cells of the World Bank bulk CSV layout.
const (
	headerName = "Country Name"
	headerCode = "Country Code"
)

// maxArchiveBytes caps the size of a downloaded or local archive.
const maxArchiveBytes = 64 << 20

var (
	// ErrNoCSV is returned when an archive has no data CSV entry.
	ErrNoCSV = errors.New("provider: no data csv in archive")

	// ErrNoHeader is returned when a CSV has no "Country Name" header row.
	ErrNoHeader = errors.New("provider: header row not found")
)

// Provider retrieves the raw per-country-per-year table of one indicator.
type Provider interface {
	Fetch(ctx context.Context, ind config.Indicator) (*table.IndicatorTable, error)
}

// New returns the Provider selected by cfg.Type.
func New(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case "worldbank":
		return &worldBank{endpoint: strings.TrimRight(cfg.Endpoint, "/"), client: buildHTTPClient(cfg)}, nil
	case "file":
		return &fileProvider{dir: cfg.Dir}, nil
	default:
		return nil, fmt.Errorf("provider: unsupported type %q", cfg.Type)
	}
}

// headerRoundTripper sets the identification headers on every request.
type headerRoundTripper struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/zip, text/csv;q=0.9")
	}
	return t.base.RoundTrip(req)
}

// buildHTTPClient constructs the http.Client used for every fetch.
func buildHTTPClient(cfg config.ProviderConfig) *http.Client {
	return &http.Client{
		Transport: &headerRoundTripper{
			base:      http.DefaultTransport,
			userAgent: cfg.UserAgent,
		},
		Timeout: cfg.Timeout,
	}
}

// readArchive parses the first data CSV of a zip archive. Entries whose
// name contains "Metadata" describe countries and indicators, not values.
func readArchive(data []byte, label string) (*table.IndicatorTable, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".csv") || strings.Contains(f.Name, "Metadata") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		defer rc.Close()
		return parseCSV(rc, label)
	}
	return nil, ErrNoCSV
}

// parseCSV decodes the World Bank bulk layout: a free-form preamble, then a
// header row starting with "Country Name", then one row per country with a
// column per year. Empty and NA cells are missing.
func parseCSV(r io.Reader, label string) (*table.IndicatorTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		nameIdx, codeIdx = -1, -1
		years            = map[int]string{}
		out              = table.NewIndicatorTable(label)
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if nameIdx < 0 {
			if len(rec) == 0 || strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff")) != headerName {
				continue
			}
			nameIdx = 0
			for i, h := range rec {
				h = strings.TrimSpace(h)
				switch {
				case h == headerCode:
					codeIdx = i
				case isYear(h):
					years[i] = h
				}
			}
			if codeIdx < 0 {
				return nil, fmt.Errorf("line %d: %q column missing", line, headerCode)
			}
			continue
		}

		name, code := cell(rec, nameIdx), cell(rec, codeIdx)
		if name == "" && code == "" {
			continue
		}
		entry := table.RosterEntry{Name: name, Code: code}
		out.Roster = append(out.Roster, entry)
		for i, year := range years {
			v, ok, err := table.ParseValue(cell(rec, i))
			if err != nil {
				return nil, fmt.Errorf("line %d year %s: %w", line, year, err)
			}
			if ok {
				out.Set(entry.Key(), year, v)
			}
		}
	}
	if nameIdx < 0 {
		return nil, ErrNoHeader
	}
	return out, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isYear(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
