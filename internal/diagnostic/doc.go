// Package diagnostic provides structured errors, warnings and notes collected
// while classifying constructor signatures and casting raw elements.
//
// Key capabilities:
//   - Unsupported or invalid signature reports per constructor
//   - Per-element cast failures with the source index and raw value
//   - "did you mean" suggestions carried over from arity errors
package diagnostic
