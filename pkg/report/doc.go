// Package report writes and reads the collector's run report.
//
// The report is a Prometheus text-exposition file in the node_exporter
// textfile-collector layout, so the same file can be scraped by an existing
// node_exporter and read back by the dashboard:
//
//	compass_run_info{run_id="…"} 1
//	compass_run_timestamp_seconds
//	compass_run_duration_seconds
//	compass_countries{stage="roster|aggregate|unresolved|merged|dropped|retained"}
//	compass_indicator_coverage_ratio{indicator="…"}
//	compass_indicator_imputed_values{indicator="…"}
//	compass_indicator_mean{indicator="…"}   (absent when the mean is undefined)
//
// WriteFile writes atomically (temp file + rename) so a watcher never sees a
// half-written report. Parse / ReadFile rebuild a Run from the text format.
package report
