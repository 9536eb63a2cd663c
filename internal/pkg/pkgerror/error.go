package pkgerror

import (
	"fmt"
	"net/http"
	"strings"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (e.g., encoding or response shaping failures).
	TypeBusiness               // Business logic errors (e.g., domain rule violations).
	TypeValidation             // Validation errors (e.g., input validation failures).
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal      Code = iota // Internal or unspecified error.
	CodeInvalidFormat             // Request body could not be decoded.
	CodeInvalidInput              // A value failed coercion or a declared constraint.
	CodeNotFound                  // Resource not found.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Violation describes one rejected input value.
//
// Loc is the location of the value, starting with its source
// ("path", "query", "body") followed by the field name.
type Violation struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
	Input any      `json:"input,omitempty"`
}

// SchemaName names the violation in generated API documentation.
func (Violation) SchemaName() string {
	return "ValidationError"
}

func (v Violation) String() string {
	return strings.Join(v.Loc, ".") + ": " + v.Msg
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, a stable error code, and input violations.
type Error struct {
	err        error
	msg        string
	errType    Type
	code       Code
	violations []Violation
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if len(e.violations) > 0 {
		parts := make([]string, 0, len(e.violations))
		for _, v := range e.violations {
			parts = append(parts, v.String())
		}
		return e.msg + ": " + strings.Join(parts, "; ")
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Violations: %d, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		len(e.violations),
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Violations returns the rejected input values, if any.
func (e *Error) Violations() []Violation {
	return e.violations
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return &Error{err: err, msg: "Internal server error", errType: TypeServer, code: CodeInternal}
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return &Error{msg: msg, errType: TypeBusiness, code: code}
}

// NewInvalidInput creates a validation error wrapping err.
func NewInvalidInput(err error) error {
	return &Error{err: err, msg: "validation error", errType: TypeValidation, code: CodeInvalidInput}
}

// NewValidation creates a validation error listing every rejected value.
func NewValidation(violations ...Violation) error {
	return &Error{
		msg:        "validation error",
		errType:    TypeValidation,
		code:       CodeInvalidInput,
		violations: violations,
	}
}

// NewInvalidFormat creates a validation error for an undecodable request body.
func NewInvalidFormat(err error) error {
	return &Error{err: err, msg: "invalid request body", errType: TypeValidation, code: CodeInvalidFormat}
}
