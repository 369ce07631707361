// Package country resolves free-text country identifiers to ISO 3166-1
// alpha-3 codes and maps those codes to a coarse region.
//
// Resolution is exact matching over a static table after folding both sides:
// accents are stripped (NFD, then combining marks removed), text is
// lower-cased, apostrophes and periods are dropped, other punctuation becomes
// a space and whitespace is collapsed. "Côte d'Ivoire", "Cote dIvoire" and
// "COTE D'IVOIRE" therefore all resolve to CIV. There is no fuzzy matching: a
// name that is not in the table is reported as unresolved rather than guessed.
//
// Region is a literal lookup with Other as the default branch.
package country
