package mapping

import (
	"maps"
	"slices"

	"meeting-conflicts/internal/table"
)

//go:generate go tool stringer -type=Outcome -output=outcome_string.go

// Outcome records what Remap did with a row.
type Outcome int

const (
	Unchanged Outcome = iota
	Replaced
)

// Stats counts remapping outcomes.
type Stats struct {
	Total     int
	Replaced  int
	Unchanged int
}

// Record counts one row outcome.
func (s *Stats) Record(o Outcome) {
	s.Total++

	switch o {
	case Replaced:
		s.Replaced++
	case Unchanged:
		s.Unchanged++
	}
}

// RemapRow returns a copy of row with its email replaced by the mapped alias.
// Rows without a mapped email, including rows with no email at all, are
// copied unchanged.
func RemapRow(row table.Row, m *EmailMapping) (table.Row, Outcome) {
	out := maps.Clone(row)
	if out == nil {
		out = table.Row{}
	}

	email := row.Get(ColumnEmail)
	if email == "" {
		return out, Unchanged
	}

	alias, ok := m.Lookup(email)
	if !ok {
		return out, Unchanged
	}

	out[ColumnEmail] = alias

	return out, Replaced
}

// Remap applies the mapping to every conflict row and returns the derived
// table. The input table is not modified.
func Remap(conflicts table.Table, m *EmailMapping) (table.Table, Stats) {
	var stats Stats

	out := table.Table{
		Header: slices.Clone(conflicts.Header),
		Rows:   make([]table.Row, 0, conflicts.Len()),
	}

	for _, row := range conflicts.Rows {
		remapped, outcome := RemapRow(row, m)
		stats.Record(outcome)
		out.Rows = append(out.Rows, remapped)
	}

	return out, stats
}
