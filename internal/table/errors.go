package table

import (
	"fmt"
	"strings"
)

// availableSample bounds how many column names an UnknownColumnError
// carries for diagnostics.
const availableSample = 5

// OutOfRangeError reports an integer column reference outside the
// table's valid range [0, Columns).
type OutOfRangeError struct {
	Index   int
	Columns int
}

func (e *OutOfRangeError) Error() string {
	if e.Columns == 0 {
		return fmt.Sprintf("column index %d is out of range: table has no columns", e.Index)
	}
	return fmt.Sprintf("column index %d is out of range: table has %d columns (0-%d)",
		e.Index, e.Columns, e.Columns-1)
}

// UnknownColumnError reports a name reference not present among the
// table's columns. Available holds a sample of the valid names.
type UnknownColumnError struct {
	Name      string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found: table has no columns", e.Name)
	}
	return fmt.Sprintf("column %q not found: available columns include %s",
		e.Name, strings.Join(e.Available, ", "))
}

func sampleNames(names []string) []string {
	n := len(names)
	if n > availableSample {
		n = availableSample
	}
	return append([]string(nil), names[:n]...)
}
