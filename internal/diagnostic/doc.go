// Package diagnostic provides structured errors, warnings and notes for the
// variant-from generator.
//
// Key capabilities:
//   - Manifest validation problems located by enum and variant
//   - Conflicting impl reports
//   - "did you mean" suggestions for misspelled names
package diagnostic
