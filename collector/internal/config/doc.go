// Package config loads the collector section of config.yaml.
//
// Top-level types:
//   - Config{Collector}: the `dashboard:` section of the same file is ignored
//   - ProviderConfig: type (worldbank|file), endpoint, dir, timeout, user_agent
//   - Indicator: code, label, lower_is_better; order is merge order
//   - OutputConfig: merged_path, normalized_path, report_path, delimiter,
//     round_decimals
//
// Load(path) applies defaults (World Bank endpoint, 60s timeout, the five
// default indicators and the World Bank aggregate list, round to 2 decimals),
// parses the YAML, runs struct-tag validation with go-playground/validator and
// then the checks that span fields (provider type vs endpoint/dir, unique
// indicator codes and labels, distinct output paths).
package config
