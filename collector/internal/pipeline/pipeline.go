package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rootless/compass/collector/internal/compute"
	"github.com/rootless/compass/collector/internal/config"
	"github.com/rootless/compass/collector/internal/country"
	"github.com/rootless/compass/collector/internal/provider"
	"github.com/rootless/compass/pkg/report"
	"github.com/rootless/compass/pkg/table"
)

// maxLoggedUnresolved bounds the names listed in the unresolved warning.
const maxLoggedUnresolved = 20

// Result is the output of one collection run.
type Result struct {
	// Merged is imputed, rounded and region-tagged, without normalized values.
	Merged *table.Table

	// Normalized is Merged plus the normalized companion values.
	Normalized *table.Table

	Run *report.Run
}

// Collector runs the collection stages for one configuration.
type Collector struct {
	cfg      config.CollectorConfig
	provider provider.Provider
	resolver *country.Resolver

	now   func() time.Time
	newID func() string
}

// New returns a Collector. p supplies raw indicator data and r resolves
// roster names.
func New(cfg config.CollectorConfig, p provider.Provider, r *country.Resolver) *Collector {
	return &Collector{
		cfg:      cfg,
		provider: p,
		resolver: r,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Collect fetches all indicators and builds the merged and normalized
// tables. The first provider error aborts the run.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	start := c.now()

	var (
		series []compute.Series
		roster []table.RosterEntry
	)
	for i, ind := range c.cfg.Indicators {
		it, err := c.provider.Fetch(ctx, ind)
		if err != nil {
			return nil, err
		}
		latest := compute.Latest(c.resolver.Rekey(it, c.cfg.Aggregates))
		slog.Debug("indicator fetched",
			"code", ind.Code,
			"label", ind.Label,
			"roster", len(it.Roster),
			"with_data", len(latest),
		)
		if i == 0 {
			roster = it.Roster
		}
		series = append(series, compute.Series{Indicator: ind.Label, Values: latest})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("pipeline: no indicators configured")
	}

	base := c.resolver.Records(roster, c.cfg.Aggregates)
	unresolved := unresolvedNames(base)
	if len(unresolved) > 0 {
		slog.Warn("countries could not be resolved and are excluded",
			"count", len(unresolved),
			"names", truncate(unresolved, maxLoggedUnresolved),
		)
	}

	merged := compute.Merge(base, series)
	imputed, stats := compute.Impute(merged)
	for _, ind := range stats.Undefined() {
		slog.Warn("indicator has no values among retained countries; left missing", "indicator", ind)
	}
	if len(stats.Dropped) > 0 {
		slog.Info("countries dropped with no indicator data", "count", len(stats.Dropped), "codes", truncate(stats.Dropped, maxLoggedUnresolved))
	}

	final := country.TagRegions(compute.Round(imputed, c.cfg.Output.RoundDecimals))
	normalized := compute.Normalize(final, c.cfg.LowerIsBetter())

	run := &report.Run{
		ID:        c.newID(),
		StartedAt: start.UTC(),
		Countries: map[string]int{
			report.StageRoster:     len(roster),
			report.StageAggregate:  len(roster) - len(base),
			report.StageUnresolved: len(unresolved),
			report.StageMerged:     len(merged.Rows),
			report.StageDropped:    len(stats.Dropped),
			report.StageRetained:   stats.Retained,
		},
	}
	for _, col := range stats.Columns {
		run.Indicators = append(run.Indicators, report.IndicatorStats{
			Name:        col.Indicator,
			Coverage:    col.Coverage(stats.Retained),
			Imputed:     col.Filled,
			Mean:        col.Mean,
			MeanDefined: col.Defined,
		})
	}
	run.Duration = c.now().Sub(start)

	slog.Info("collection complete",
		"run_id", run.ID,
		"roster", len(roster),
		"merged", len(merged.Rows),
		"retained", stats.Retained,
		"duration", run.Duration,
	)
	return &Result{Merged: final, Normalized: normalized, Run: run}, nil
}

// Write persists res to the configured output paths. The run report is
// skipped when no report path is configured.
func Write(out config.OutputConfig, res *Result) error {
	opts := table.WriteOptions{Delimiter: out.Comma()}
	if err := table.WriteFile(out.MergedPath, res.Merged, opts); err != nil {
		return fmt.Errorf("pipeline: write merged: %w", err)
	}
	opts.Norm = true
	if err := table.WriteFile(out.NormalizedPath, res.Normalized, opts); err != nil {
		return fmt.Errorf("pipeline: write normalized: %w", err)
	}
	if out.ReportPath != "" && res.Run != nil {
		if err := report.WriteFile(out.ReportPath, res.Run); err != nil {
			return fmt.Errorf("pipeline: write report: %w", err)
		}
	}
	slog.Info("output written",
		"merged", out.MergedPath,
		"normalized", out.NormalizedPath,
		"report", out.ReportPath,
	)
	return nil
}

// Renormalize re-tags regions on a merged table and recomputes its
// normalized values.
func Renormalize(merged *table.Table, lowerIsBetter map[string]bool) *table.Table {
	return compute.Normalize(country.TagRegions(merged), lowerIsBetter)
}

func unresolvedNames(base []table.CountryRecord) []string {
	var out []string
	for _, rec := range base {
		if !rec.Resolved() {
			out = append(out, rec.Name)
		}
	}
	return out
}

func truncate(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
