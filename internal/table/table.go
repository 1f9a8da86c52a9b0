package table

import (
	"errors"
	"slices"
)

var (
	// ErrSchemaMismatch is returned when a row does not fit the header.
	ErrSchemaMismatch = errors.New("row does not match header")
	// ErrDuplicateColumn is returned when a header names a column twice.
	ErrDuplicateColumn = errors.New("duplicate column in header")
)

// Row is a single record keyed by column name.
type Row map[string]string

// Get returns the value of column, or the empty string if the row has no such column.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is an ordered set of rows sharing one header.
type Table struct {
	// Header lists the column names in file order.
	Header []string
	// Rows holds the data rows in file order.
	Rows []Row
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no data rows.
// A table read from a missing file is empty.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// HasColumn reports whether the header contains column.
func (t Table) HasColumn(column string) bool {
	return slices.Contains(t.Header, column)
}
