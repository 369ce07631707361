// Package pipeline runs the collector stages in order and writes their
// output.
//
// Collect fetches every configured indicator, then builds the tables:
//
//	fetch → latest → base list (first roster minus aggregates) → merge →
//	impute → round → tag regions → normalize
//
// It performs no file I/O, so a provider failure leaves earlier output
// untouched. Write persists a Result: the merged file, the normalized file and
// the run report, each replaced atomically.
//
// Renormalize is the second-stage entry point: it takes a previously written
// merged table, re-tags regions and recomputes the normalized columns without
// contacting the provider.
package pipeline
