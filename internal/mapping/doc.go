// Package mapping builds the primary email to meeting alias lookup and
// applies it to conflict records.
//
// # Building
//
// Each registrant row contributes one entry when both its "email" and
// "zoom_email" columns are non-empty:
//
//	email,zoom_email
//	a@x.com,a@zoom.us      -> a@x.com => a@zoom.us
//	b@x.com,               -> skipped (missing alias)
//	a@x.com,a2@zoom.us     -> a@x.com => a2@zoom.us (last row wins)
//
// Skipped and overridden rows are reported as diagnostics; they never
// change the resulting lookup.
//
// # Remapping
//
// A conflict row whose "email" value is a key of the lookup gets that
// column replaced by the alias. Every other row, and every other column,
// is copied unchanged. The header and row order of the input are kept.
// A row without an "email" column matches as the empty string, which is
// never a key.
package mapping
