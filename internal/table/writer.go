package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write encodes the table as CSV: the header, then one record per row in
// header order. Records end in CRLF.
func Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(t.Header))

	for i, row := range t.Rows {
		for column := range row {
			if !slices.Contains(t.Header, column) {
				return fmt.Errorf("row %d: %w: unknown column %q", i+1, ErrSchemaMismatch, column)
			}
		}

		for j, column := range t.Header {
			record[j] = row[column]
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteFile writes the table to path, replacing any existing file.
// It creates the parent directory if it doesn't exist. The file only
// appears at path once it has been written completely.
func WriteFile(path string, t Table) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmp.Name()

	if err := writeAndClose(tmp, t); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing table %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

func writeAndClose(f *os.File, t Table) error {
	if err := Write(f, t); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Chmod(filePerm); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
