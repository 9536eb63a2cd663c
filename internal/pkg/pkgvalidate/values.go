package pkgvalidate

import "github.com/shandysiswandi/gobook/internal/pkg/pkgerror"

// Lookup returns the raw value of a parameter and whether it was supplied.
type Lookup func(p Param) (raw string, present bool)

// Values holds coerced parameter values keyed by parameter name.
type Values map[string]any

// Bind parses every declared parameter through lookup. All violations are
// collected before returning so a client sees every problem in one response.
func Bind(params []Param, lookup Lookup) (Values, error) {
	values := make(Values, len(params))

	var violations []pkgerror.Violation
	for _, p := range params {
		raw, present := lookup(p)
		v, errs := p.Parse(raw, present)
		if len(errs) > 0 {
			violations = append(violations, errs...)
			continue
		}
		if v != nil {
			values[p.Name] = v
		}
	}

	if len(violations) > 0 {
		return nil, pkgerror.NewValidation(violations...)
	}

	return values, nil
}

// Has reports whether name was bound.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Int returns the integer parameter name, or 0 when absent.
func (v Values) Int(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

// Float returns the number parameter name, or 0 when absent.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// String returns the string or enum parameter name, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}
