package pkgvalidate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ConstraintKind tags a Constraint.
type ConstraintKind string

const (
	KindMin         ConstraintKind = "min"          // value >= Bound
	KindMax         ConstraintKind = "max"          // value <= Bound
	KindGreaterThan ConstraintKind = "greater_than" // value > Bound
	KindMinLength   ConstraintKind = "min_length"   // rune count >= Bound
	KindOneOf       ConstraintKind = "one_of"       // value is one of Values
)

// Constraint is a single declarative rule evaluated against a coerced value.
type Constraint struct {
	Kind   ConstraintKind
	Bound  float64
	Values []string
}

// Min requires a numeric value greater than or equal to bound.
func Min(bound float64) Constraint {
	return Constraint{Kind: KindMin, Bound: bound}
}

// Max requires a numeric value less than or equal to bound.
func Max(bound float64) Constraint {
	return Constraint{Kind: KindMax, Bound: bound}
}

// GreaterThan requires a numeric value strictly greater than bound.
func GreaterThan(bound float64) Constraint {
	return Constraint{Kind: KindGreaterThan, Bound: bound}
}

// MinLength requires a string of at least n characters.
func MinLength(n int) Constraint {
	return Constraint{Kind: KindMinLength, Bound: float64(n)}
}

// OneOf requires a string that exactly matches one of values.
func OneOf(values ...string) Constraint {
	return Constraint{Kind: KindOneOf, Values: values}
}

// Check evaluates the constraint. On failure it returns the violation type
// and a human readable message.
func (c Constraint) Check(v any) (ok bool, typ, msg string) {
	switch c.Kind {
	case KindMin:
		n, isNum := number(v)
		if isNum && n >= c.Bound {
			return true, "", ""
		}
		return false, "greater_than_equal", "Input should be greater than or equal to " + formatBound(c.Bound)
	case KindMax:
		n, isNum := number(v)
		if isNum && n <= c.Bound {
			return true, "", ""
		}
		return false, "less_than_equal", "Input should be less than or equal to " + formatBound(c.Bound)
	case KindGreaterThan:
		n, isNum := number(v)
		if isNum && n > c.Bound {
			return true, "", ""
		}
		return false, "greater_than", "Input should be greater than " + formatBound(c.Bound)
	case KindMinLength:
		s, _ := v.(string)
		if utf8.RuneCountInString(s) >= int(c.Bound) {
			return true, "", ""
		}
		return false, "string_too_short", fmt.Sprintf("String should have at least %d characters", int(c.Bound))
	case KindOneOf:
		s, _ := v.(string)
		if slices.Contains(c.Values, s) {
			return true, "", ""
		}
		return false, "enum", "Input should be " + quoteChoices(c.Values)
	default:
		return false, "unknown_constraint", fmt.Sprintf("unknown constraint %q", c.Kind)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// quoteChoices renders "'a'", "'a' or 'b'", "'a', 'b' or 'c'".
func quoteChoices(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
