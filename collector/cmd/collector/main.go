package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rootless/compass/collector/internal/config"
	"github.com/rootless/compass/collector/internal/country"
	"github.com/rootless/compass/collector/internal/pipeline"
	"github.com/rootless/compass/collector/internal/provider"
	"github.com/rootless/compass/pkg/table"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	stage := flag.String("stage", "all", "stages to run: all | normalize")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("compass-collector starting", "config", *configPath, "stage", *stage)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	c := cfg.Collector
	slog.Info("config loaded",
		"provider", c.Provider.Type,
		"indicators", len(c.Indicators),
		"aggregates", len(c.Aggregates),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *stage {
	case "all":
		err = runAll(ctx, c)
	case "normalize":
		err = runNormalize(c)
	default:
		slog.Error("unknown stage", "stage", *stage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// runAll fetches every indicator and writes all outputs.
func runAll(ctx context.Context, c config.CollectorConfig) error {
	p, err := provider.New(c.Provider)
	if err != nil {
		return err
	}
	res, err := pipeline.New(c, p, country.New()).Collect(ctx)
	if err != nil {
		return err
	}
	return pipeline.Write(c.Output, res)
}

// runNormalize rebuilds the normalized file from the merged file.
func runNormalize(c config.CollectorConfig) error {
	comma := c.Output.Comma()
	merged, err := table.ReadFile(c.Output.MergedPath, comma)
	if err != nil {
		return err
	}
	normalized := pipeline.Renormalize(merged, c.LowerIsBetter())
	if err := table.WriteFile(c.Output.NormalizedPath, normalized, table.WriteOptions{Delimiter: comma, Norm: true}); err != nil {
		return err
	}
	slog.Info("normalized file rewritten", "path", c.Output.NormalizedPath, "countries", len(normalized.Rows))
	return nil
}
