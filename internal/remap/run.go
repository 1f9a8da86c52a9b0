// Package remap runs the conflict email remapping end to end.
package remap

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"meeting-conflicts/internal/diagnostic"
	"meeting-conflicts/internal/layout"
	"meeting-conflicts/internal/mapping"
	"meeting-conflicts/internal/table"
)

// ErrNoConflicts is returned when the conflicts table is missing or has no rows.
var ErrNoConflicts = errors.New("conflicts table not found or empty")

// Report summarizes a successful run.
type Report struct {
	OutputPath  string
	Registrants int
	Mappings    int
	mapping.Stats
}

// Run reads the conflicts and registrants tables, replaces mapped emails and
// writes the meeting conflicts table. Nothing is written unless every step
// before the write succeeded.
func Run(l layout.Layout, log zerolog.Logger) (Report, error) {
	conflictsPath := l.ConflictsPath()

	conflicts, err := table.ReadFile(conflictsPath)
	if err != nil {
		return Report{}, err
	}

	if conflicts.Empty() {
		return Report{}, fmt.Errorf("%w: %s", ErrNoConflicts, conflictsPath)
	}

	registrants, err := table.ReadFile(l.RegistrantsPath())
	if err != nil {
		return Report{}, err
	}

	if !registrants.Empty() && !registrants.HasColumn(mapping.ColumnZoomEmail) {
		log.Warn().Str("path", l.RegistrantsPath()).Msg("Registrants table has no zoom_email column")
	}

	m, diags := mapping.Build(registrants)
	logDiagnostics(log, diags)

	log.Info().Int("registrants", registrants.Len()).Msg("Loaded registrants")
	log.Info().Int("mappings", m.Len()).Msg("Email mappings available")

	out, stats := mapping.Remap(conflicts, m)

	outputPath := l.OutputPath()
	if err := table.WriteFile(outputPath, out); err != nil {
		return Report{}, err
	}

	return Report{
		OutputPath:  outputPath,
		Registrants: registrants.Len(),
		Mappings:    m.Len(),
		Stats:       stats,
	}, nil
}

func logDiagnostics(log zerolog.Logger, diags diagnostic.Diagnostics) {
	if diags.HasWarnings() {
		log.Warn().Int("skipped", len(diags.Warnings)).Msg("Some registrants were skipped")
	}

	for _, d := range diags.All() {
		level := zerolog.DebugLevel
		if d.Severity == diagnostic.DiagnosticWarning {
			level = zerolog.WarnLevel
		}

		log.WithLevel(level).
			Str("code", d.Code).
			Str("source", d.Source).
			Int("row", d.Row).
			Msg(d.String())
	}
}
