package file

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// readXLSX parses the first sheet of a workbook with a header row.
func readXLSX(path string) (header []string, body [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx %q: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%s: workbook has no sheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: empty sheet, missing header row", filepath.Base(path))
	}
	return rows[0], rows[1:], nil
}
