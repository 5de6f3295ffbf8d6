package table

import (
	"golang.org/x/sync/errgroup"

	"numclean/internal/numeric"
)

// Options configures Coerce.
type Options struct {
	// InPlace mutates the caller's table instead of working on a copy.
	InPlace bool
	// Workers bounds the goroutines applying the parser across columns.
	// Values below 2 run sequentially.
	Workers int
}

// Coerce replaces every cell of the referenced columns with the result
// of numeric.Parse, preserving row count, column count and column order.
//
// All references are resolved against the table's current schema before
// any cell is touched: an out-of-range index or unknown name aborts the
// whole call with no observable mutation, even when InPlace is set.
// Duplicate references are allowed; the parser is idempotent so
// reprocessing a column changes nothing.
//
// By default the work happens on an independent copy and the caller's
// table is returned untouched; with InPlace the caller's table is
// mutated and the same table is returned.
func Coerce(t *Table, refs []Ref, opts Options) (*Table, error) {
	cols, err := t.resolve(refs)
	if err != nil {
		return nil, err
	}

	out := t
	if !opts.InPlace {
		out = t.Clone()
	}

	// Duplicates collapse to one pass per column; this keeps the
	// parallel path free of two workers writing the same column.
	cols = dedupe(cols)

	if opts.Workers < 2 || len(cols) < 2 {
		for _, ci := range cols {
			coerceColumn(out.cols[ci])
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for _, ci := range cols {
		col := out.cols[ci]
		g.Go(func() error {
			coerceColumn(col)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolve maps every reference to a concrete column position, in the
// order given, failing on the first invalid one.
func (t *Table) resolve(refs []Ref) ([]int, error) {
	cols := make([]int, 0, len(refs))
	for _, r := range refs {
		if r.byName {
			ci := t.indexOf(r.name)
			if ci < 0 {
				return nil, &UnknownColumnError{Name: r.name, Available: sampleNames(t.names)}
			}
			cols = append(cols, ci)
			continue
		}
		if r.index < 0 || r.index >= len(t.names) {
			return nil, &OutOfRangeError{Index: r.index, Columns: len(t.names)}
		}
		cols = append(cols, r.index)
	}
	return cols, nil
}

func (t *Table) indexOf(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

func coerceColumn(col []any) {
	for i, cell := range col {
		col[i] = numeric.Parse(cell)
	}
}

func dedupe(cols []int) []int {
	seen := make(map[int]struct{}, len(cols))
	out := cols[:0]
	for _, ci := range cols {
		if _, ok := seen[ci]; ok {
			continue
		}
		seen[ci] = struct{}{}
		out = append(out, ci)
	}
	return out
}
