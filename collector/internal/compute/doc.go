// Package compute turns raw per-year indicator tables into the wide,
// imputed and normalized country table the dashboard reads.
//
// Every function here is pure: it takes its input by value or clones it, and
// returns a fresh result. The collector calls them in a fixed order:
//
//	Latest → Merge → Impute → Round → (region tagging) → Normalize
//
// Missing values are absent map keys throughout; nothing in this package ever
// writes NaN or substitutes zero for a missing cell.
//
// latest.go picks one value per country (the maximum parsable year holding
// data). merge.go left-joins indicator columns onto the canonical country
// list. impute.go drops all-missing rows and fills the rest with column means.
// normalize.go min-max scales each column to [0,1], inverting lower-is-better
// indicators.
package compute
