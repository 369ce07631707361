// Package provider retrieves raw indicator data for the collector.
//
// Two providers exist, selected by config.ProviderConfig.Type:
//   - worldbank (worldbank.go): GET {endpoint}/v2/en/indicator/{code}?downloadformat=csv.
//     The response is a zip; the first *.csv entry whose name does not
//     contain "Metadata" holds the data.
//   - file (file.go): reads {dir}/{code}.csv, or {dir}/{code}.zip in the
//     downloaded layout, for offline runs and fixtures.
//
// Both parse the World Bank bulk layout in base.go: a preamble of a few
// lines, a header row beginning with "Country Name", all-digit header cells
// as year columns and empty cells as missing values. The result is a
// table.IndicatorTable carrying the provider's full roster (aggregates
// included) and the per-year values.
//
// The shared http.Client carries a headerRoundTripper that sets User-Agent
// and Accept. Errors are returned wrapped with the indicator code; the
// collector treats any of them as fatal and never retries.
package provider
