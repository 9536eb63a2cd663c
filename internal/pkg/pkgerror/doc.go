// Package pkgerror defines the shared error type used across the application.
//
// It keeps error handling consistent by:
//   - Providing a structured Error type that carries a message, type, and code,
//     which can be mapped to HTTP status codes at the edge (the router).
//   - Carrying field level violations for validation failures so clients can
//     see which input was rejected and why.
package pkgerror
