package pkgvalidate

import (
	"strconv"

	"github.com/shandysiswandi/gobook/internal/pkg/pkgerror"
)

// Source is where a parameter value is read from.
type Source string

const (
	InPath  Source = "path"
	InQuery Source = "query"
)

// Type is the primitive type a raw parameter is coerced into.
type Type string

const (
	TypeInteger Type = "integer" // coerced to int64
	TypeNumber  Type = "number"  // coerced to float64
	TypeString  Type = "string"  // kept as string
	TypeEnum    Type = "enum"    // string restricted by a OneOf constraint
)

// Param declares one path or query parameter.
//
// Title, Description and Example only feed generated documentation; they
// never change the validation outcome.
type Param struct {
	Name        string
	In          Source
	Type        Type
	Required    bool
	Constraints []Constraint
	Title       string
	Description string
	Example     any
}

// PathInt declares a required integer path parameter.
func PathInt(name string, constraints ...Constraint) Param {
	return Param{Name: name, In: InPath, Type: TypeInteger, Required: true, Constraints: constraints}
}

// QueryInt declares a required integer query parameter.
func QueryInt(name string, constraints ...Constraint) Param {
	return Param{Name: name, In: InQuery, Type: TypeInteger, Required: true, Constraints: constraints}
}

// QueryEnum declares a required query parameter restricted to values.
func QueryEnum(name string, values ...string) Param {
	return Param{Name: name, In: InQuery, Type: TypeEnum, Required: true, Constraints: []Constraint{OneOf(values...)}}
}

// Optional returns a copy of p that may be omitted.
func (p Param) Optional() Param {
	p.Required = false
	return p
}

// WithTitle returns a copy of p with a documentation title.
func (p Param) WithTitle(title string) Param {
	p.Title = title
	return p
}

// WithDescription returns a copy of p with a (markdown) documentation description.
func (p Param) WithDescription(description string) Param {
	p.Description = description
	return p
}

// WithExample returns a copy of p with a documentation example.
func (p Param) WithExample(example any) Param {
	p.Example = example
	return p
}

// Enum returns the allowed values of an enumeration parameter.
func (p Param) Enum() []string {
	for _, c := range p.Constraints {
		if c.Kind == KindOneOf {
			return c.Values
		}
	}
	return nil
}

// Parse coerces raw into the declared type and checks every constraint.
// present reports whether the value was supplied at all; an absent optional
// parameter yields (nil, nil).
func (p Param) Parse(raw string, present bool) (any, []pkgerror.Violation) {
	loc := []string{string(p.In), p.Name}

	if !present {
		if !p.Required {
			return nil, nil
		}
		return nil, []pkgerror.Violation{{Loc: loc, Msg: "Field required", Type: "missing"}}
	}

	value, violation, ok := p.coerce(raw)
	if !ok {
		violation.Loc = loc
		violation.Input = raw
		return nil, []pkgerror.Violation{violation}
	}

	var violations []pkgerror.Violation
	for _, c := range p.Constraints {
		if ok, typ, msg := c.Check(value); !ok {
			violations = append(violations, pkgerror.Violation{Loc: loc, Msg: msg, Type: typ, Input: raw})
		}
	}
	if len(violations) > 0 {
		return nil, violations
	}

	return value, nil
}

func (p Param) coerce(raw string) (any, pkgerror.Violation, bool) {
	switch p.Type {
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, pkgerror.Violation{
				Msg:  "Input should be a valid integer, unable to parse string as an integer",
				Type: "int_parsing",
			}, false
		}
		return n, pkgerror.Violation{}, true
	case TypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, pkgerror.Violation{
				Msg:  "Input should be a valid number, unable to parse string as a number",
				Type: "float_parsing",
			}, false
		}
		return f, pkgerror.Violation{}, true
	default:
		return raw, pkgerror.Violation{}, true
	}
}
