// Package table reads and writes header-defined CSV tables.
//
// A table is a header (the column order) plus rows keyed by column name.
// The header row of the input defines the schema for every data row:
//   - Rows whose field count differs from the header are rejected
//   - Duplicate column names are rejected
//   - A missing file reads as a table with no rows, not as an error
//
// Output is written atomically: the file is produced under a temporary name
// in the destination directory and renamed into place once complete.
package table
