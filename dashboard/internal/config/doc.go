// Package config loads the dashboard section of config.yaml: listen port,
// the normalized data file and run report to serve, the comparison limit and
// per-indicator display metadata (description, polarity). Defaults match the
// collector's default outputs.
package config
