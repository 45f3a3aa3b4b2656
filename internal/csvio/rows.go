package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Row is one CSV record keyed by header name. Columns the pipeline does
// not understand are carried through untouched.
type Row map[string]string

// ReadRows loads a headered CSV into rows, returning the header in file
// order so unknown columns keep their position on write.
func ReadRows(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s has no header row", path)
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := Row{}
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// WriteRows writes rows under the given header, creating parent
// directories as needed. Missing cells are written empty.
func WriteRows(path string, header []string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(header))
		for i, col := range header {
			rec[i] = row[col]
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ExtendHeader appends the given columns to the header, skipping any
// that are already present.
func ExtendHeader(header []string, cols ...string) []string {
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	out := header
	for _, col := range cols {
		if !seen[col] {
			out = append(out, col)
			seen[col] = true
		}
	}
	return out
}
