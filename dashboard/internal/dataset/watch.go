package dataset

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates h whenever its file is written, created, renamed or
// removed, and then calls onChange if it is non-nil. The parent directory is
// watched so that atomic replacements (temp file + rename) are seen. It runs
// until ctx is cancelled.
func (h *Handle) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir, base := filepath.Split(h.path)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}

	slog.Info("dataset: watching for changes", "path", h.path)

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base || event.Op&relevant == 0 {
				continue
			}
			h.Invalidate()
			slog.Info("dataset: invalidated", "path", h.path, "op", event.Op.String())
			if onChange != nil {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("dataset: watcher error", "err", err)
		}
	}
}
