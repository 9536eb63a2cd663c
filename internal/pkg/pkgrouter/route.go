package pkgrouter

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

// Handler is the application-style handler used by this router.
//
// It receives validated input and returns a response payload (JSON encoded
// unless it is a Redirect or Raw) or an error.
type Handler func(ctx context.Context, req *Request) (any, error)

// Route declares one endpoint.
//
// Path uses "{name}" placeholders. Body and Response are zero values of the
// schema types; a nil Body means the route reads no body and a nil Response
// means the result is written without shaping. Hidden routes are served but
// left out of generated documentation.
type Route struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Params      []pkgvalidate.Param
	Body        any
	Response    any
	Hidden      bool
	Handler     Handler
}

// Request is the validated input passed to a Handler.
type Request struct {
	Params pkgvalidate.Values
	Body   any
	HTTP   *http.Request
}

// Body returns the decoded request body as T.
func Body[T any](req *Request) T {
	v, _ := req.Body.(T)
	return v
}

// Redirect makes the router answer with a redirect and no body.
type Redirect struct {
	Location string
	Code     int
}

// Raw is written as is with its content type.
type Raw struct {
	ContentType string
	Body        []byte
}
