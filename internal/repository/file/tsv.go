package file

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// readTSV parses a tab-separated file with a header row.
func readTSV(path string) (header []string, body [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open tsv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1 // rows may omit trailing blank cells
	r.LazyQuotes = true    // effect labels legitimately contain quotes

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse tsv %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: empty table, missing header row", filepath.Base(path))
	}
	return rows[0], rows[1:], nil
}
