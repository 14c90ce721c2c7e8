// Package diagnostic provides structured errors, warnings and notes
// reported while planning generated construction routines.
//
// Key capabilities:
//   - Schema mismatches with "did you mean" suggestions
//   - Notes on inert properties and constructor selection
//   - A combined error for callers that only need pass/fail
package diagnostic
