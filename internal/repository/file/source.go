// Package file loads the unit and combo tables from on-disk TSV or
// XLSX files. The format is chosen per file by extension.
package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/whiskerforge/catcombo/api/pkg/combo"
)

// Expected header columns for each table.
var (
	unitColumns  = []string{"First", "Evolved", "True", "Ultra"}
	comboColumns = []string{"Name", "Effect", "Unit1", "Unit2", "Unit3", "Unit4", "Unit5"}
)

// Source reads the unit and combo tables from local files.
type Source struct {
	unitsPath  string
	combosPath string
}

// NewSource creates a file-backed catalog source.
func NewSource(unitsPath, combosPath string) *Source {
	return &Source{unitsPath: unitsPath, combosPath: combosPath}
}

// LoadUnits reads the unit table (First/Evolved/True/Ultra columns).
func (s *Source) LoadUnits(_ context.Context) ([]combo.UnitRow, error) {
	table, err := readTable(s.unitsPath, unitColumns)
	if err != nil {
		return nil, fmt.Errorf("load units: %w", err)
	}
	rows := make([]combo.UnitRow, 0, len(table))
	for _, rec := range table {
		rows = append(rows, combo.UnitRow{
			First:   rec["First"],
			Evolved: rec["Evolved"],
			True:    rec["True"],
			Ultra:   rec["Ultra"],
		})
	}
	return rows, nil
}

// LoadCombos reads the combo table (Name/Effect/Unit1..Unit5 columns).
func (s *Source) LoadCombos(_ context.Context) ([]combo.ComboRow, error) {
	table, err := readTable(s.combosPath, comboColumns)
	if err != nil {
		return nil, fmt.Errorf("load combos: %w", err)
	}
	rows := make([]combo.ComboRow, 0, len(table))
	for _, rec := range table {
		units := make([]string, combo.MaxUnitSlots)
		for i := range units {
			units[i] = rec[fmt.Sprintf("Unit%d", i+1)]
		}
		rows = append(rows, combo.ComboRow{
			Name:   rec["Name"],
			Effect: rec["Effect"],
			Units:  units,
		})
	}
	return rows, nil
}

// readTable parses a tabular file into one map per data row, keyed by
// header column name. Cells are whitespace-trimmed; missing trailing
// cells read as empty.
func readTable(path string, columns []string) ([]map[string]string, error) {
	var header []string
	var body [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tsv", ".txt":
		header, body, err = readTSV(path)
	case ".xlsx":
		header, body, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: unsupported table format %q", filepath.Base(path), ext)
	}
	if err != nil {
		return nil, err
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, col := range columns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("%s: missing expected column %q", filepath.Base(path), col)
		}
	}

	records := make([]map[string]string, 0, len(body))
	for _, row := range body {
		rec := make(map[string]string, len(columns))
		for _, col := range columns {
			if i := colIdx[col]; i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
