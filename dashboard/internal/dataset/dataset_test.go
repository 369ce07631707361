package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const v1 = "Country Name,Country ISO-3 Code,Region,Beds,Beds_Norm\nFrance,FRA,Europe,5.7,0\nKorea,KOR,Asia,12.7,1\n"
const v2 = "Country Name,Country ISO-3 Code,Region,Beds,Beds_Norm\nFrance,FRA,Europe,5.7,1\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHandle_Memoizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	writeFile(t, path, v1)

	h := New(path, ',')
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	a, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	writeFile(t, path, v2)
	b, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a != b || len(b.Rows) != 2 {
		t.Error("second Get should return the cached table")
	}

	st := h.Stats()
	if st.Loads != 1 || st.Rows != 2 || st.Indicators != 1 || !st.Cached || !st.LoadedAt.Equal(fixed) {
		t.Errorf("stats = %+v", st)
	}

	h.Invalidate()
	c, err := h.Get()
	if err != nil {
		t.Fatalf("Get after invalidate: %v", err)
	}
	if len(c.Rows) != 1 {
		t.Errorf("rows after invalidate = %d, want 1", len(c.Rows))
	}
	if st := h.Stats(); st.Loads != 2 || st.Invalidations != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestHandle_FailedLoadNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	h := New(path, ',')

	if _, err := h.Get(); err == nil {
		t.Fatal("expected error for missing file")
	}
	if st := h.Stats(); st.Cached || st.Loads != 0 {
		t.Errorf("stats after failure = %+v", st)
	}

	writeFile(t, path, v1)
	if _, err := h.Get(); err != nil {
		t.Fatalf("Get after file appears: %v", err)
	}
}

func TestHandle_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	writeFile(t, path, v1)

	h := New(path, ',')
	if _, err := h.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx, func() { changed <- struct{}{} }) }()

	// Unrelated files in the same directory are ignored.
	writeFile(t, filepath.Join(dir, "other.csv"), v2)

	// Replace the file the way the collector does; retry until the watcher
	// is registered.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		tmp := filepath.Join(dir, ".data.csv.tmp")
		writeFile(t, tmp, v2)
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
		select {
		case <-changed:
			break wait
		case <-deadline:
			t.Fatal("watcher did not report the change")
		case <-tick.C:
		}
	}

	got, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Errorf("rows after replace = %d, want 1", len(got.Rows))
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}
