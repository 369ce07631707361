package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rootless/compass/dashboard/internal/api"
	"github.com/rootless/compass/dashboard/internal/config"
	"github.com/rootless/compass/dashboard/internal/dataset"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	uiDir := flag.String("ui-dir", "", "serve the UI static files from this directory; leave empty to disable")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("compass-dashboard starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	d := cfg.Dashboard

	slog.Info("config loaded",
		"port", d.Port,
		"data_path", d.DataPath,
		"report_path", d.ReportPath,
		"watch", d.Watch,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	data := dataset.New(d.DataPath, d.Comma())
	if _, err := data.Get(); err != nil {
		// Not fatal: the collector may not have run yet. The API answers 503
		// until the file appears.
		slog.Warn("dataset not loaded", "path", d.DataPath, "err", err)
	}
	if d.Watch {
		go func() {
			if err := data.Watch(ctx, nil); err != nil {
				slog.Error("dataset watcher stopped", "err", err)
			}
		}()
	}

	h := api.New(data, d)
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	mux.Handle("/metrics", h)

	// The "/" catch-all serves index.html for any unknown path (SPA routing).
	if *uiDir != "" {
		fs := http.FileServer(http.Dir(*uiDir))
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			path := filepath.Join(*uiDir, filepath.FromSlash(r.URL.Path))
			if _, err := os.Stat(path); os.IsNotExist(err) {
				http.ServeFile(w, r, filepath.Join(*uiDir, "index.html"))
				return
			}
			fs.ServeHTTP(w, r)
		})
		slog.Info("serving UI static files", "dir", *uiDir)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", d.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "port", d.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("compass-dashboard shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	srv.Shutdown(shutdownCtx) //nolint:errcheck
}
