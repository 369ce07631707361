package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rootless/compass/collector/internal/config"
	"github.com/rootless/compass/pkg/table"
)

// fileProvider reads indicators from a directory holding either
// <code>.csv or the downloaded <code>.zip archive.
type fileProvider struct {
	dir string
}

func (p *fileProvider) Fetch(ctx context.Context, ind config.Indicator) (*table.IndicatorTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("provider: fetch %q: %w", ind.Code, err)
	}
	it, err := p.read(ind)
	if err != nil {
		return nil, fmt.Errorf("provider: fetch %q: %w", ind.Code, err)
	}
	return it, nil
}

func (p *fileProvider) read(ind config.Indicator) (*table.IndicatorTable, error) {
	csvPath := filepath.Join(p.dir, ind.Code+".csv")
	f, err := os.Open(csvPath)
	if err == nil {
		defer f.Close()
		return parseCSV(f, ind.Label)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	zf, err := os.Open(filepath.Join(p.dir, ind.Code+".zip"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("neither %s nor .zip found: %w", csvPath, err)
		}
		return nil, err
	}
	defer zf.Close()
	data, err := io.ReadAll(io.LimitReader(zf, maxArchiveBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if len(data) > maxArchiveBytes {
		return nil, fmt.Errorf("archive larger than %d bytes", maxArchiveBytes)
	}
	return readArchive(data, ind.Label)
}
