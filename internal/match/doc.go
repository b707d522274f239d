// Package match provides name normalization, Levenshtein distance calculation
// and "did you mean" ranking for manifest names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to a misspelled one
package match
