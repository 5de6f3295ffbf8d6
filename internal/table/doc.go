// Package table models an in-memory table as an ordered collection of
// named columns with row-aligned cells, and applies numeric coercion to
// selected columns.
//
// Columns are addressed through Ref values, a tagged union of a
// zero-based position or a name. Coerce resolves every reference against
// the table's current schema before touching any cell, so a bad
// reference never leaves an in-place target partially converted.
package table
