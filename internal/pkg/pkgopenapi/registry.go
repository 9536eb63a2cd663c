package pkgopenapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

// SchemaPrefix is where component schemas are referenced from.
const SchemaPrefix = "#/components/schemas/"

// Namer lets a type choose its component name.
type Namer interface {
	SchemaName() string
}

// FieldDescriber supplies markdown descriptions keyed by JSON field name.
type FieldDescriber interface {
	FieldDescriptions() map[string]string
}

//nolint:gochecknoglobals // reflected once
var (
	enumType      = reflect.TypeOf((*pkgvalidate.Enum)(nil)).Elem()
	namerType     = reflect.TypeOf((*Namer)(nil)).Elem()
	describerType = reflect.TypeOf((*FieldDescriber)(nil)).Elem()
)

// Registry collects component schemas in a huma map registry.
//
// Two types may share a component name only when they produce the same
// schema, which lets a request type with pointer fields and a response type
// describe one "Book".
type Registry struct {
	schemas huma.Registry
	types   map[string]reflect.Type
	done    map[reflect.Type]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: huma.NewMapRegistry(SchemaPrefix, SchemaName),
		types:   map[string]reflect.Type{},
		done:    map[reflect.Type]bool{},
	}
}

// Huma returns the underlying registry, ready to be used as the document's
// component schemas.
func (r *Registry) Huma() huma.Registry {
	return r.schemas
}

// Schemas returns the collected components.
func (r *Registry) Schemas() map[string]*huma.Schema {
	return r.schemas.Map()
}

// SchemaName names t after its SchemaName method, falling back to huma's
// default namer.
func SchemaName(t reflect.Type, hint string) string {
	t = deref(t)
	if t.Kind() != reflect.Interface && t.Implements(namerType) {
		return reflect.Zero(t).Interface().(Namer).SchemaName() //nolint:forcetypeassert // checked above
	}
	return huma.DefaultSchemaNamer(t, hint)
}

// Schema returns the schema of t. Structs and enumerations are registered as
// components and referenced.
func (r *Registry) Schema(t reflect.Type) *huma.Schema {
	t = deref(t)
	if isEnum(t) {
		return r.enum(t)
	}

	if t.Kind() == reflect.Struct {
		name := SchemaName(t, "")
		existing, ok := r.types[name]
		switch {
		case !ok:
			r.types[name] = t
		case existing != t:
			r.mustMatch(name, existing, t)
			r.schemas.RegisterTypeAlias(t, existing)
			t = existing
		}
	}

	s := r.schemas.Schema(t, true, "")
	r.complete(t)

	return s
}

func (r *Registry) mustMatch(name string, existing, t reflect.Type) {
	candidate := NewRegistry()
	candidate.Schema(t)

	want, errWant := json.Marshal(r.schemas.Map()[name])
	got, errGot := json.Marshal(candidate.Schemas()[name])
	if errWant != nil || errGot != nil || !bytes.Equal(want, got) {
		panic(fmt.Errorf("pkgopenapi: duplicate schema name %s for %s and %s", name, existing, t))
	}
}

func (r *Registry) enum(t reflect.Type) *huma.Schema {
	name := SchemaName(t, "")
	components := r.schemas.Map()
	if _, ok := components[name]; !ok {
		values := reflect.Zero(t).Interface().(pkgvalidate.Enum).Values() //nolint:forcetypeassert // checked by isEnum
		components[name] = &huma.Schema{Type: huma.TypeString, Title: name, Enum: anySlice(values)}
	}
	return &huma.Schema{Ref: SchemaPrefix + name}
}

// complete adds to a reflected struct component what huma cannot see: the
// validate rules, field titles, examples, descriptions and enum references.
func (r *Registry) complete(t reflect.Type) {
	t = deref(t)
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		r.complete(t.Elem())
		return
	case reflect.Struct:
	default:
		return
	}

	if r.done[t] {
		return
	}
	r.done[t] = true

	name := SchemaName(t, "")
	s := r.schemas.Map()[name]
	if s == nil || s.Properties == nil {
		return
	}

	var docs map[string]string
	if t.Implements(describerType) {
		docs = reflect.Zero(t).Interface().(FieldDescriber).FieldDescriptions() //nolint:forcetypeassert // checked above
	}

	s.Title = name
	s.Required = nil

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		field := pkgvalidate.JSONName(f)
		prop := s.Properties[field]
		if prop == nil || field == "" {
			continue
		}

		if ft := deref(f.Type); isEnum(ft) {
			prop = r.enum(ft)
			s.Properties[field] = prop
		}
		prop.Nullable = false

		if tag, ok := f.Tag.Lookup("title"); ok {
			prop.Title = tag
		}
		if desc, ok := docs[field]; ok {
			prop.Description = desc
		}
		if tag, ok := f.Tag.Lookup("example"); ok {
			prop.Examples = []any{exampleValue(f.Type, tag)}
		}

		rules := strings.Split(f.Tag.Get("validate"), ",")
		applyRules(prop, f.Type, rules)
		if isRequired(f, rules) {
			s.Required = append(s.Required, field)
		}

		r.complete(f.Type)
	}
}

func isEnum(t reflect.Type) bool {
	return t.Kind() == reflect.String && t.Implements(enumType)
}

func isRequired(f reflect.StructField, rules []string) bool {
	if slices.Contains(rules, "required") {
		return true
	}
	if f.Type.Kind() == reflect.Pointer {
		return false
	}
	_, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	return !slices.Contains(strings.Split(opts, ","), "omitempty")
}

// applyRules mirrors the validate rules the dispatcher enforces.
func applyRules(s *huma.Schema, t reflect.Type, rules []string) {
	isString := deref(t).Kind() == reflect.String

	for _, rule := range rules {
		name, param, ok := strings.Cut(rule, "=")
		if !ok {
			continue
		}

		n, err := strconv.ParseFloat(param, 64)
		if err != nil {
			continue
		}

		switch {
		case name == "gte", name == "min" && !isString:
			s.Minimum = &n
		case name == "lte", name == "max" && !isString:
			s.Maximum = &n
		case name == "gt":
			s.ExclusiveMinimum = &n
		case name == "lt":
			s.ExclusiveMaximum = &n
		case name == "min":
			l := int(n)
			s.MinLength = &l
		case name == "max":
			l := int(n)
			s.MaxLength = &l
		}
	}
}

func exampleValue(t reflect.Type, tag string) any {
	if deref(t).Kind() == reflect.String {
		return tag
	}

	var v any
	if err := json.Unmarshal([]byte(tag), &v); err != nil {
		return tag
	}
	return v
}

// ParamSchema builds the schema of a declared parameter from its type and
// constraints.
func ParamSchema(p pkgvalidate.Param) *huma.Schema {
	s := &huma.Schema{Title: p.Title}

	switch p.Type {
	case pkgvalidate.TypeInteger:
		s.Type = huma.TypeInteger
	case pkgvalidate.TypeNumber:
		s.Type = huma.TypeNumber
	default:
		s.Type = huma.TypeString
	}

	for _, c := range p.Constraints {
		bound := c.Bound
		switch c.Kind {
		case pkgvalidate.KindMin:
			s.Minimum = &bound
		case pkgvalidate.KindMax:
			s.Maximum = &bound
		case pkgvalidate.KindGreaterThan:
			s.ExclusiveMinimum = &bound
		case pkgvalidate.KindMinLength:
			l := int(bound)
			s.MinLength = &l
		case pkgvalidate.KindOneOf:
			s.Enum = anySlice(c.Values)
		}
	}

	return s
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
