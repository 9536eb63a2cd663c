// Package pkgrouter dispatches declared routes over httprouter.
//
// A Route carries everything the dispatcher needs: method, path template,
// parameter declarations, optional body and response schemas, documentation
// metadata and the handler. Parameters and bodies are validated before the
// handler runs and responses are checked against their schema before they
// are written. The package also holds the shared middleware (recovery,
// correlation ID propagation, request logging).
package pkgrouter
