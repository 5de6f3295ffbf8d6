package table

import (
	"strconv"
	"strings"
)

// Ref identifies one column either by zero-based position or by name.
// The zero value refers to column 0.
type Ref struct {
	name   string
	index  int
	byName bool
}

// ByIndex returns a reference to the column at a zero-based position.
func ByIndex(i int) Ref {
	return Ref{index: i}
}

// ByName returns a reference to the column with the given name.
func ByName(name string) Ref {
	return Ref{name: name, byName: true}
}

// String renders the reference the way the caller supplied it.
func (r Ref) String() string {
	if r.byName {
		return r.name
	}
	return strconv.Itoa(r.index)
}

// ParseRef interprets one caller-supplied token: a token composed solely
// of decimal digits, optionally prefixed by a minus sign, is a position;
// everything else is a name.
func ParseRef(tok string) Ref {
	digits := strings.TrimPrefix(tok, "-")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return ByName(tok)
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		// Digit runs too long for an int are taken as names.
		return ByName(tok)
	}
	return ByIndex(i)
}

// ParseRefs applies ParseRef to each token in order.
func ParseRefs(toks []string) []Ref {
	refs := make([]Ref, len(toks))
	for i, tok := range toks {
		refs[i] = ParseRef(tok)
	}
	return refs
}
