package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const byteOrderMark = "\ufeff"

// ReadFile reads the table stored at path.
// A missing file yields an empty table and no error.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, nil
		}

		return Table{}, fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("reading table %s: %w", path, err)
	}

	return t, nil
}

// Read parses a CSV stream whose first record is the header.
// Blank lines are skipped. An empty stream yields an empty table.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	// A bare quote inside an unquoted field is kept as text.
	cr.LazyQuotes = true
	// Field counts are checked below so the error can name the schema.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, nil
	}

	if err != nil {
		return Table{}, fmt.Errorf("parsing header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], byteOrderMark)

	if err := checkHeader(header); err != nil {
		return Table{}, err
	}

	t := Table{Header: header}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Table{}, fmt.Errorf("parsing row %d: %w", len(t.Rows)+1, err)
		}

		if len(record) != len(header) {
			line, _ := cr.FieldPos(0)

			return Table{}, fmt.Errorf("line %d: %w: got %d fields, header has %d",
				line, ErrSchemaMismatch, len(record), len(header))
		}

		row := make(Row, len(header))
		for i, column := range header {
			row[column] = record[i]
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func checkHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))

	for _, column := range header {
		if _, dup := seen[column]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, column)
		}

		seen[column] = struct{}{}
	}

	return nil
}
