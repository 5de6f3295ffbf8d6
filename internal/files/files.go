package files

import (
	"fmt"
	"path/filepath"
	"strings"

	"numclean/internal/table"
)

// Options selects how a table is read or written.
type Options struct {
	CSV   CSVOptions
	Sheet string // XLSX sheet name; empty means first sheet / "Sheet1"
}

// ReadTable loads a table from path, choosing the codec by extension.
func ReadTable(path string, opts Options) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		o := opts.CSV
		if ext == ".tsv" && o.Separator == 0 {
			o.Separator = '\t'
		}
		return ReadCSV(path, o)
	case ".xlsx":
		return ReadXLSX(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("unsupported table format %q", ext)
	}
}

// WriteTable writes a table to path, choosing the codec by extension.
func WriteTable(path string, t *table.Table, opts Options) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		o := opts.CSV
		if ext == ".tsv" && o.Separator == 0 {
			o.Separator = '\t'
		}
		return WriteCSV(path, t, o)
	case ".xlsx":
		return WriteXLSX(path, t, opts.Sheet)
	default:
		return fmt.Errorf("unsupported table format %q", ext)
	}
}
