package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/rootless/compass/collector/internal/config"
	"github.com/rootless/compass/pkg/table"
)

type worldBank struct {
	endpoint string
	client   *http.Client
}

// Fetch downloads the bulk CSV archive of ind from the World Bank API.
// Any failure is returned; there are no retries.
func (p *worldBank) Fetch(ctx context.Context, ind config.Indicator) (*table.IndicatorTable, error) {
	u := fmt.Sprintf("%s/v2/en/indicator/%s?downloadformat=csv", p.endpoint, url.PathEscape(ind.Code))

	body, err := p.download(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("provider: fetch %q: %w", ind.Code, err)
	}
	slog.Debug("provider: downloaded archive", "code", ind.Code, "bytes", len(body))

	it, err := readArchive(body, ind.Label)
	if err != nil {
		return nil, fmt.Errorf("provider: fetch %q: %w", ind.Code, err)
	}
	return it, nil
}

func (p *worldBank) download(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxArchiveBytes {
		return nil, fmt.Errorf("archive larger than %d bytes", maxArchiveBytes)
	}
	return body, nil
}
