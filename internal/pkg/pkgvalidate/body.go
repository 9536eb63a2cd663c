package pkgvalidate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgerror"
)

// Enum is implemented by closed string sets. Fields of such types can use the
// "enum" validate tag, and generated documentation lists Values.
type Enum interface {
	Values() []string
}

//nolint:gochecknoglobals // validator caches struct metadata, share a single instance
var structValidator = newStructValidator()

var errTrailingData = errors.New("unexpected data after the JSON document")

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONName)
	if err := v.RegisterValidation("enum", validateEnum); err != nil {
		panic(err)
	}
	return v
}

// JSONName returns the name a struct field is encoded under, or "" for fields
// tagged `json:"-"`.
func JSONName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String || !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(Enum)
	return ok && slices.Contains(e.Values(), field.String())
}

// Struct validates v against its `validate` tags. Violations are located
// under source ("body", "response").
func Struct(source string, v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return pkgerror.NewServer(err)
	}

	violations := make([]pkgerror.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, toViolation(source, fe))
	}

	return pkgerror.NewValidation(violations...)
}

func toViolation(source string, fe validator.FieldError) pkgerror.Violation {
	loc := []string{source}
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		loc = append(loc, strings.Split(path, ".")...)
	}

	typ, msg := describe(fe)
	violation := pkgerror.Violation{Loc: loc, Msg: msg, Type: typ}
	if typ != "missing" {
		violation.Input = fe.Value()
	}

	return violation
}

func describe(fe validator.FieldError) (typ, msg string) {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "missing", "Field required"
	case "gte":
		return "greater_than_equal", "Input should be greater than or equal to " + fe.Param()
	case "gt":
		return "greater_than", "Input should be greater than " + fe.Param()
	case "lte":
		return "less_than_equal", "Input should be less than or equal to " + fe.Param()
	case "lt":
		return "less_than", "Input should be less than " + fe.Param()
	case "min":
		if isString {
			return "string_too_short", "String should have at least " + fe.Param() + " characters"
		}
		return "greater_than_equal", "Input should be greater than or equal to " + fe.Param()
	case "max":
		if isString {
			return "string_too_long", "String should have at most " + fe.Param() + " characters"
		}
		return "less_than_equal", "Input should be less than or equal to " + fe.Param()
	case "oneof":
		return "enum", "Input should be " + quoteChoices(strings.Fields(fe.Param()))
	case "enum":
		if e, ok := fe.Value().(Enum); ok {
			return "enum", "Input should be " + quoteChoices(e.Values())
		}
		return "enum", "Input should be a valid enumeration member"
	default:
		return fe.Tag(), fmt.Sprintf("Input failed the %q rule", fe.Tag())
	}
}

// DecodeJSON decodes a single JSON document from r into dst.
//
// An empty body or a bare null is a missing-field violation and a value of
// the wrong JSON type is a type violation. Anything else that cannot be
// parsed, including data after the document, is an invalid-format error.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return missingBody()
		}
		return pkgerror.NewInvalidFormat(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return pkgerror.NewInvalidFormat(errTrailingData)
	}

	if bytes.Equal(raw, []byte("null")) {
		return missingBody()
	}

	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return pkgerror.NewInvalidFormat(err)
	}

	loc := []string{"body"}
	if typeErr.Field != "" {
		loc = append(loc, strings.Split(typeErr.Field, ".")...)
	}
	kind := jsonKind(typeErr.Type)

	return pkgerror.NewValidation(pkgerror.Violation{
		Loc:   loc,
		Msg:   "Input should be a valid " + kind,
		Type:  kind + "_type",
		Input: typeErr.Value,
	})
}

func missingBody() error {
	return pkgerror.NewValidation(pkgerror.Violation{
		Loc:  []string{"body"},
		Msg:  "Field required",
		Type: "missing",
	})
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// Shape converts v into the type of schema and validates the result.
//
// A value that already has the schema's type is validated as is. Any other
// value goes through its JSON form, so keys the schema does not declare are
// dropped and declared fields that are missing stay zero and fail validation.
func Shape(schema, v any) (any, error) {
	t := reflect.TypeOf(schema)
	if reflect.TypeOf(v) == t {
		if err := Struct("response", v); err != nil {
			return nil, err
		}
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	out := reflect.New(t)
	if err := json.Unmarshal(raw, out.Interface()); err != nil {
		return nil, pkgerror.NewServer(err)
	}

	shaped := out.Elem().Interface()
	if err := Struct("response", shaped); err != nil {
		return nil, err
	}

	return shaped, nil
}
