package dataset

import (
	"sync"
	"time"

	"github.com/rootless/compass/pkg/table"
)

// Stats describes the handle's cache activity.
type Stats struct {
	Loads         int
	Invalidations int

	// Rows and Indicators describe the cached table; zero when nothing is cached.
	Rows       int
	Indicators int

	// LoadedAt is the time of the last successful load.
	LoadedAt time.Time
	Cached   bool
}

// Handle is a load-once view of the normalized table file. The first Get
// reads the file; later calls return the cached table until Invalidate.
// A failed load is returned and not cached. Safe for concurrent use.
type Handle struct {
	path  string
	comma rune

	mu     sync.Mutex
	cached *table.Table
	stats  Stats
	now    func() time.Time // injectable for deterministic tests
}

// New returns a Handle for the table file at path.
func New(path string, comma rune) *Handle {
	return &Handle{path: path, comma: comma, now: time.Now}
}

// Path returns the watched file.
func (h *Handle) Path() string { return h.path }

// Get returns the table, loading it if nothing is cached. The returned table
// is shared between callers and must not be modified.
func (h *Handle) Get() (*table.Table, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cached != nil {
		return h.cached, nil
	}
	t, err := table.ReadFile(h.path, h.comma)
	if err != nil {
		return nil, err
	}
	h.cached = t
	h.stats.Loads++
	h.stats.LoadedAt = h.now()
	return t, nil
}

// Invalidate drops the cached table; the next Get reloads the file.
func (h *Handle) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cached = nil
	h.stats.Invalidations++
}

// Stats returns a copy of the current statistics.
func (h *Handle) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.stats
	if h.cached != nil {
		s.Cached = true
		s.Rows = len(h.cached.Rows)
		s.Indicators = len(h.cached.Indicators)
	}
	return s
}
