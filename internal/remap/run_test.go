package remap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-conflicts/internal/layout"
)

const (
	conflictsCSV   = "email,name\r\na@x.com,Alice\r\nb@x.com,Bob\r\n"
	registrantsCSV = "email,zoom_email,name\r\na@x.com,a@zoom.us,Alice\r\nc@x.com,,Carol\r\n"
)

func newLayout(t *testing.T, files map[string]string) layout.Layout {
	t.Helper()

	l := layout.New(t.TempDir())
	require.NoError(t, os.MkdirAll(l.DataDir(), 0o755))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(l.DataDir(), name), []byte(content), 0o644))
	}

	return l
}

func readOutput(t *testing.T, l layout.Layout) string {
	t.Helper()

	data, err := os.ReadFile(l.OutputPath())
	require.NoError(t, err)

	return string(data)
}

func TestRun(t *testing.T) {
	t.Parallel()

	l := newLayout(t, map[string]string{
		layout.ConflictsFile:   conflictsCSV,
		layout.RegistrantsFile: registrantsCSV,
	})

	report, err := Run(l, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, l.OutputPath(), report.OutputPath)
	assert.Equal(t, 2, report.Registrants)
	assert.Equal(t, 1, report.Mappings)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Replaced)
	assert.Equal(t, 1, report.Unchanged)

	assert.Equal(t, "email,name\r\na@zoom.us,Alice\r\nb@x.com,Bob\r\n", readOutput(t, l))
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	l := newLayout(t, map[string]string{
		layout.ConflictsFile:   conflictsCSV,
		layout.RegistrantsFile: registrantsCSV,
	})

	_, err := Run(l, zerolog.Nop())
	require.NoError(t, err)
	first := readOutput(t, l)

	_, err = Run(l, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, first, readOutput(t, l))
}

func TestRunWithoutRegistrants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "registrants file missing",
			files: map[string]string{layout.ConflictsFile: conflictsCSV},
		},
		{
			name: "registrants file empty",
			files: map[string]string{
				layout.ConflictsFile:   conflictsCSV,
				layout.RegistrantsFile: "",
			},
		},
		{
			name: "registrants header only",
			files: map[string]string{
				layout.ConflictsFile:   conflictsCSV,
				layout.RegistrantsFile: "email,zoom_email\r\n",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newLayout(t, tt.files)

			report, err := Run(l, zerolog.Nop())
			require.NoError(t, err)

			assert.Equal(t, 0, report.Registrants)
			assert.Equal(t, 0, report.Mappings)
			assert.Equal(t, 2, report.Unchanged)
			assert.Equal(t, conflictsCSV, readOutput(t, l))
		})
	}
}

func TestRunWithoutConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "conflicts file missing",
			files: map[string]string{layout.RegistrantsFile: registrantsCSV},
		},
		{
			name: "conflicts file empty",
			files: map[string]string{
				layout.ConflictsFile:   "",
				layout.RegistrantsFile: registrantsCSV,
			},
		},
		{
			name: "conflicts header only",
			files: map[string]string{
				layout.ConflictsFile:   "email,name\r\n",
				layout.RegistrantsFile: registrantsCSV,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newLayout(t, tt.files)

			_, err := Run(l, zerolog.Nop())
			require.ErrorIs(t, err, ErrNoConflicts)
			assert.Contains(t, err.Error(), l.ConflictsPath())

			assert.NoFileExists(t, l.OutputPath())
		})
	}
}

func TestRunKeepsPreviousOutputOnFailure(t *testing.T) {
	t.Parallel()

	l := newLayout(t, map[string]string{
		layout.ConflictsFile:   "email,name\r\na@x.com,Alice,extra\r\n",
		layout.RegistrantsFile: registrantsCSV,
		layout.OutputFile:      "previous\r\n",
	})

	_, err := Run(l, zerolog.Nop())
	require.Error(t, err)

	assert.Equal(t, "previous\r\n", readOutput(t, l))
}

func TestRunLogsProgress(t *testing.T) {
	t.Parallel()

	l := newLayout(t, map[string]string{
		layout.ConflictsFile:   conflictsCSV,
		layout.RegistrantsFile: registrantsCSV,
	})

	var buf bytes.Buffer

	_, err := Run(l, zerolog.New(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"registrants":2`)
	assert.Contains(t, out, `"mappings":1`)
	assert.Contains(t, out, `"skipped":1`)
	assert.Contains(t, out, `"level":"warn","code":"REG_MISSING_ALIAS","source":"registrants","row":2`)
	assert.Contains(t, out, `"message":"[registrants] row 2: [REG_MISSING_ALIAS] registrant c@x.com has no zoom_email, skipped"`)
}

func TestRunLogsOverriddenRegistrantsAtDebug(t *testing.T) {
	t.Parallel()

	l := newLayout(t, map[string]string{
		layout.ConflictsFile:   conflictsCSV,
		layout.RegistrantsFile: "email,zoom_email\r\na@x.com,old@zoom.us\r\na@x.com,a@zoom.us\r\n",
	})

	var debug, info bytes.Buffer

	_, err := Run(l, zerolog.New(&debug).Level(zerolog.DebugLevel))
	require.NoError(t, err)

	_, err = Run(l, zerolog.New(&info).Level(zerolog.InfoLevel))
	require.NoError(t, err)

	assert.Contains(t, debug.String(), `"level":"debug","code":"REG_DUPLICATE_EMAIL","source":"registrants","row":2`)
	assert.NotContains(t, info.String(), "REG_DUPLICATE_EMAIL")
	assert.NotContains(t, info.String(), `"skipped"`)
}
