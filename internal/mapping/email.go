package mapping

import (
	"fmt"

	"meeting-conflicts/internal/diagnostic"
	"meeting-conflicts/internal/table"
)

// Column names shared by the registrants and conflicts tables.
const (
	ColumnEmail     = "email"
	ColumnZoomEmail = "zoom_email"
)

// Diagnostic codes reported by Build.
const (
	CodeMissingEmail   = "REG_MISSING_EMAIL"
	CodeMissingAlias   = "REG_MISSING_ALIAS"
	CodeDuplicateEmail = "REG_DUPLICATE_EMAIL"
)

const registrantsSource = "registrants"

// EmailMapping maps primary email addresses to meeting aliases.
type EmailMapping struct {
	aliases map[string]string
}

// NewEmailMapping creates a new empty mapping.
func NewEmailMapping() *EmailMapping {
	return &EmailMapping{
		aliases: make(map[string]string),
	}
}

// Build creates the mapping from registrant rows, in row order.
// Rows missing either column value are skipped; a later row for the same
// email replaces the earlier alias. An empty table yields an empty mapping.
func Build(registrants table.Table) (*EmailMapping, diagnostic.Diagnostics) {
	m := NewEmailMapping()

	var diags diagnostic.Diagnostics

	for i, row := range registrants.Rows {
		n := i + 1
		email := row.Get(ColumnEmail)
		alias := row.Get(ColumnZoomEmail)

		switch {
		case email == "":
			diags.AddWarning(CodeMissingEmail, "registrant has no email, skipped", registrantsSource, n)
			continue
		case alias == "":
			diags.AddWarning(CodeMissingAlias,
				fmt.Sprintf("registrant %s has no zoom_email, skipped", email), registrantsSource, n)
			continue
		}

		if prev, ok := m.aliases[email]; ok && prev != alias {
			diags.AddInfo(CodeDuplicateEmail,
				fmt.Sprintf("alias for %s changed from %s to %s", email, prev, alias), registrantsSource, n)
		}

		m.Add(email, alias)
	}

	return m, diags
}

// Add sets the alias for email, replacing any previous one.
func (m *EmailMapping) Add(email, alias string) {
	m.aliases[email] = alias
}

// Lookup returns the alias for email and whether one exists.
func (m *EmailMapping) Lookup(email string) (string, bool) {
	if m == nil {
		return "", false
	}

	alias, ok := m.aliases[email]

	return alias, ok
}

// Len returns the number of mapped emails.
func (m *EmailMapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.aliases)
}
