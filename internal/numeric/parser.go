package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the outcome of extracting a number from one raw cell value.
// It is either a finite float or Missing; no other sentinel exists.
type Value struct {
	Float   float64
	Missing bool
}

// Missing is the result meaning "no numeric value could be extracted".
// It is distinct from a table's native null marker but propagates the
// same way: sinks render it as an empty cell, JSON renders it as null.
var Missing = Value{Missing: true}

// Of wraps a finite float in a present Value.
func Of(f float64) Value {
	return Value{Float: f}
}

// Float64 returns the numeric value and whether one is present.
func (v Value) Float64() (float64, bool) {
	return v.Float, !v.Missing
}

// String renders the value the way table sinks write it: the shortest
// round-tripping decimal form, or the empty string for Missing.
func (v Value) String() string {
	if v.Missing {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// MarshalJSON renders Missing as null and present values as numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Missing {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Float, 'g', -1, 64)), nil
}

// scanState tracks where the character scan is inside the extracted
// token. A minus sign is only accepted in scanStart; a decimal point
// only outside scanPointSeen.
type scanState int

const (
	// scanStart: nothing scanned yet; a leading minus is still allowed.
	// Any character at all, accepted or discarded, leaves this state.
	scanStart scanState = iota
	// scanNoPoint: inside the token, no decimal point seen yet.
	scanNoPoint
	// scanPointSeen: a decimal point has been accepted; further points
	// are discarded.
	scanPointSeen
)

// Parse extracts a numeric value from raw. It is total: every input maps
// to a finite float or Missing, and it never panics.
//
//	Parse("23.5 °C") // 23.5
//	Parse("1200M")   // 1200
//	Parse("--")      // Missing
//	Parse(nil)       // Missing
//
// Already-numeric inputs are passed through exactly (non-finite floats
// become Missing) rather than round-tripped through their string form,
// so coercing a column twice yields the same cells as coercing it once.
func Parse(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Missing
	case Value:
		return v
	case float64:
		return ofFinite(v)
	case float32:
		return ofFinite(float64(v))
	case int:
		return Of(float64(v))
	case int32:
		return Of(float64(v))
	case int64:
		return Of(float64(v))
	case uint64:
		return Of(float64(v))
	case string:
		return parseString(v)
	default:
		return parseString(fmt.Sprint(raw))
	}
}

func ofFinite(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing
	}
	return Of(f)
}

// parseString runs the single left-to-right character scan.
func parseString(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}

	var buf strings.Builder
	state := scanStart
	hasDigit := false

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			buf.WriteRune(r)
			hasDigit = true
			if state == scanStart {
				state = scanNoPoint
			}
		case r == '.' && state != scanPointSeen:
			buf.WriteByte('.')
			state = scanPointSeen
		case r == '-' && state == scanStart:
			buf.WriteByte('-')
			state = scanNoPoint
		default:
			// Discarded character (unit, symbol, extra dash or point).
			// Still counts as "something seen": no sign after this.
			if state == scanStart {
				state = scanNoPoint
			}
		}
	}

	// Buffers like "", "-", "." or "-." carry no digit.
	if !hasDigit {
		return Missing
	}

	f, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil {
		// Should not happen once a digit is present; Missing either way.
		return Missing
	}
	return ofFinite(f)
}
