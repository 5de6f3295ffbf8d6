package files

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"numclean/internal/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions configures delimited reading and writing.
type CSVOptions struct {
	// Separator is the field delimiter; zero means comma.
	Separator rune
	// BOMPrefix prepends a UTF-8 BOM on write so Excel recognizes the
	// encoding. A BOM is always stripped on read.
	BOMPrefix bool
}

func (o CSVOptions) separator() rune {
	if o.Separator == 0 {
		return ','
	}
	return o.Separator
}

// ReadCSV loads a table from a delimited file. The first record is the
// header row.
func ReadCSV(path string, opts CSVOptions) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSVFrom(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFrom loads a table from delimited data on r.
func ReadCSVFrom(r io.Reader, opts CSVOptions) (*table.Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = opts.separator()
	cr.FieldsPerRecord = -1 // ragged rows are padded by FromRecords

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return table.FromRecords(records)
}

// WriteCSV writes a table to a delimited file, creating parent
// directories as needed.
func WriteCSV(path string, t *table.Table, opts CSVOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSVTo(f, t, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCSVTo writes a table as delimited data to w.
func WriteCSVTo(w io.Writer, t *table.Table, opts CSVOptions) error {
	if opts.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.separator()
	for i, rec := range t.Records() {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
