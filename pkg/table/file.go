package table

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes t to path through a temp file in the same directory and
// a rename, so readers never observe a partial file.
func WriteFile(path string, t *Table, opts WriteOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("table: create dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("table: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := WriteCSV(tmp, t, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("table: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("table: rename: %w", err)
	}
	return nil
}

// ReadFile reads the table at path.
func ReadFile(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, delimiter)
}
