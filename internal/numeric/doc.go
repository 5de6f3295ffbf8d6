// Package numeric extracts numeric values from arbitrary, possibly
// malformed cell values without a pattern-matching engine.
//
// The package exposes a single total operation, Parse, which maps any
// input to either a finite float64 or the Missing value. Missing is the
// one "no value" channel: unparseable text, empty strings, nil cells and
// non-finite floats all converge to it. Parse never panics and never
// returns NaN or Inf, which lets callers apply it uniformly to
// heterogeneous, unvalidated data.
//
// The extraction grammar is deliberately a strict subset of numeric
// literals: decimal digits, at most one decimal point, and a single minus
// sign in the leading position. Everything else (units, currency symbols,
// stray dashes, whitespace) is discarded without error. There is no
// exponent notation, no leading plus sign and no thousands-separator
// handling.
package numeric
