package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"numclean/internal/numeric"
	"numclean/internal/table"
)

// ReadXLSX loads a table from an Excel workbook. The named sheet is
// used, or the workbook's first sheet when sheet is empty. The first
// row is the header row.
func ReadXLSX(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}

	// Excelize returns ragged rows; FromRecords pads short ones.
	t, err := table.FromRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// WriteXLSX writes a table to a single-sheet Excel workbook. Coerced
// cells are written as numbers, Missing and nil cells stay empty.
func WriteXLSX(path string, t *table.Table, sheet string) error {
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, t.ColumnCount())
	for i, name := range t.Names() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for r := 0; r < t.RowCount(); r++ {
		row := make([]any, t.ColumnCount())
		for c, cell := range t.Row(r) {
			row[c] = xlsxCell(cell)
		}
		addr, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", r, err)
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func xlsxCell(cell any) any {
	switch v := cell.(type) {
	case numeric.Value:
		if v.Missing {
			return nil
		}
		return v.Float
	default:
		return cell
	}
}
