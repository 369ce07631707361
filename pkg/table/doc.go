// Package table defines the per-country tables shared by the collector and the
// dashboard, and the delimited file format they are exchanged in.
//
// In-memory types:
//   - IndicatorTable: one indicator as delivered by a provider, with roster and
//     per-country, per-year values
//   - LatestValues: one value per country code
//   - CountryRecord: name, canonical code (empty when unresolved) and region
//   - Table: the merged wide table; Row.Values holds raw indicator values and
//     Row.Norm the normalized companions
//
// A missing value is always an absent map key, never NaN or zero.
//
// WriteCSV / ReadCSV convert a Table to and from the file consumed by the
// dashboard: identity columns, raw indicator columns, then "<Indicator>_Norm".
// WriteFile replaces a file atomically (temp file + rename) so a watching
// reader never loads a half-written table.
package table
