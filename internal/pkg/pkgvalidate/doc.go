// Package pkgvalidate turns raw request input into typed, validated values.
//
// Path and query parameters are declared as Param values carrying a source,
// a primitive type and an explicit list of Constraint objects (minimum,
// maximum, exclusive minimum, minimum length, enumeration membership). Bind
// coerces and checks every declared parameter and reports all failures at
// once as a pkgerror validation error.
//
// Request and response bodies are plain structs validated with
// go-playground/validator tags; failures are translated into the same
// violation format so clients see one error shape regardless of the source.
package pkgvalidate
