package table

import (
	"fmt"

	"numclean/internal/numeric"
)

// Table is an ordered set of named columns, each holding one cell per
// row. Cells are untyped: sources load them as strings or nil, coercion
// rewrites them as numeric.Value.
type Table struct {
	names []string
	cols  [][]any
}

// New creates an empty table with the given column names.
func New(names []string) *Table {
	t := &Table{
		names: append([]string(nil), names...),
		cols:  make([][]any, len(names)),
	}
	for i := range t.cols {
		t.cols[i] = []any{}
	}
	return t
}

// FromRecords builds a table from a header row followed by data rows,
// the shape produced by encoding/csv and excelize. Rows shorter than the
// header are padded with nil cells; longer rows are an error.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	t := New(records[0])
	for i, rec := range records[1:] {
		if len(rec) > len(t.names) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(rec), len(t.names))
		}
		row := make([]any, len(t.names))
		for j := range row {
			if j < len(rec) {
				row[j] = rec[j]
			}
		}
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AppendRow adds one row of cells, which must match the column count.
func (t *Table) AppendRow(cells []any) error {
	if len(cells) != len(t.names) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.names))
	}
	for i, c := range cells {
		t.cols[i] = append(t.cols[i], c)
	}
	return nil
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.names)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Cell returns the cell at the given column and row position.
func (t *Table) Cell(col, row int) any {
	return t.cols[col][row]
}

// SetCell replaces the cell at the given column and row position.
func (t *Table) SetCell(col, row int, v any) {
	t.cols[col][row] = v
}

// Row returns a copy of one row's cells in column order.
func (t *Table) Row(row int) []any {
	cells := make([]any, len(t.cols))
	for i := range t.cols {
		cells[i] = t.cols[i][row]
	}
	return cells
}

// Clone returns an independent copy of the table. Cells are copied
// shallowly; sources and coercion only store immutable cell values.
func (t *Table) Clone() *Table {
	c := &Table{
		names: append([]string(nil), t.names...),
		cols:  make([][]any, len(t.cols)),
	}
	for i, col := range t.cols {
		c.cols[i] = append([]any(nil), col...)
	}
	return c
}

// Records renders the table back to a header row plus data rows of
// strings. Missing values and nil cells become empty fields.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, t.RowCount()+1)
	out = append(out, t.Names())
	for r := 0; r < t.RowCount(); r++ {
		rec := make([]string, len(t.cols))
		for c := range t.cols {
			rec[c] = CellString(t.cols[c][r])
		}
		out = append(out, rec)
	}
	return out
}

// CellString renders one cell the way table sinks write it.
func CellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case numeric.Value:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
