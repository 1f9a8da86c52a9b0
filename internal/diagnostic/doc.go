// Package diagnostic provides structured warnings and notes about input rows
// that were skipped or overridden while building the email mapping.
//
// Key capabilities:
//   - Registrant rows skipped for a missing email or alias
//   - Registrant rows whose alias was replaced by a later row
//   - Source file and row number for each message
//
// Diagnostics are advisory. They never change the result of a run.
package diagnostic
