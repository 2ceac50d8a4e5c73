// Package match provides identifier normalization and edit-distance helpers.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "ONE_ARGUMENT" and "oneArgument" compare equal
//   - Levenshtein: edit distance between two strings
//   - Closest: best-scoring candidate name, used for "did you mean" hints
package match
