package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

//nolint:gochecknoglobals // compiled once
var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr         *httprouter.Router
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
	routes     []Route
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uid Generator) *Router {
	errorCodec := func(ctx context.Context, w http.ResponseWriter, err error) {
		var gerr *pkgerror.Error
		if !errors.As(err, &gerr) {
			slog.ErrorContext(ctx, "unexpected error", "error", err)
			writeJSON(w, ErrorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
			return
		}

		if gerr.Type() == pkgerror.TypeServer {
			slog.ErrorContext(ctx, "server error", "error", gerr.String())
		}

		writeJSON(w, ErrorResponse{Message: gerr.Msg(), Errors: gerr.Violations()}, gerr.StatusCode())
	}

	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errorCodec(r.Context(), w, pkgerror.NewBusiness("endpoint not found", pkgerror.CodeNotFound))
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, ErrorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		switch v := resp.(type) {
		case nil:
			w.WriteHeader(http.StatusNoContent)
			return
		case Redirect:
			w.Header().Set("Location", v.Location)
			w.WriteHeader(v.Code)
			return
		case Raw:
			w.Header().Set("Content-Type", v.ContentType)
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(v.Body); err != nil {
				slog.WarnContext(ctx, "server: failed to write response", "error", err)
			}
			return
		}

		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, resp, code)
	}

	ro := &Router{
		hr:         hr,
		errorCodec: errorCodec,
		encoder:    okCodec,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uid),
			middlewareLogging,
		},
	}

	ro.Register(Route{
		Method:      http.MethodGet,
		Path:        "/health",
		OperationID: "health",
		Hidden:      true,
		Handler: func(context.Context, *Request) (any, error) {
			return map[string]string{"message": "server is running well"}, nil
		},
	})

	return ro
}

// Register adds routes in order. It panics when a route declares a path
// parameter its template does not contain, or the template contains a
// placeholder with no declaration, the same way httprouter panics on
// conflicting paths.
func (r *Router) Register(routes ...Route) {
	for _, rt := range routes {
		checkPathParams(rt)
		r.routes = append(r.routes, rt)
		r.hr.Handler(rt.Method, toRouterPath(rt.Path), Chain(r.endpoint(rt), r.mws...))
	}
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	return slices.Clone(r.routes)
}

func (r *Router) endpoint(rt Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		ctx := hr.Context()

		resp, err := r.serve(w, hr, rt)
		if err != nil {
			r.errorCodec(ctx, w, err)
			return
		}

		r.encoder(ctx, w, resp)
	})
}

func (r *Router) serve(w http.ResponseWriter, hr *http.Request, rt Route) (any, error) {
	ctx := hr.Context()

	req, err := bind(w, hr, rt)
	if err != nil {
		return nil, err
	}

	resp, err := rt.Handler(ctx, req)
	if err != nil {
		return nil, err
	}

	if rt.Response == nil || resp == nil {
		return resp, nil
	}

	shaped, err := pkgvalidate.Shape(rt.Response, resp)
	if err != nil {
		slog.ErrorContext(ctx, "response does not match its schema", "route", rt.Path, "error", err)
		return nil, pkgerror.NewServer(err)
	}

	return shaped, nil
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// toRouterPath rewrites "/book/{book_id}" into httprouter's "/book/:book_id".
func toRouterPath(path string) string {
	return placeholder.ReplaceAllString(path, ":$1")
}

func checkPathParams(rt Route) {
	inTemplate := map[string]bool{}
	for _, m := range placeholder.FindAllStringSubmatch(rt.Path, -1) {
		inTemplate[m[1]] = false
	}

	for _, p := range rt.Params {
		if p.In != pkgvalidate.InPath {
			continue
		}
		if _, ok := inTemplate[p.Name]; !ok {
			panic(fmt.Sprintf("pkgrouter: %s %s declares path parameter %q missing from its template", rt.Method, rt.Path, p.Name))
		}
		inTemplate[p.Name] = true
	}

	for name, declared := range inTemplate {
		if !declared {
			panic(fmt.Sprintf("pkgrouter: %s %s has undeclared path parameter %q", rt.Method, rt.Path, name))
		}
	}
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []pkgerror.Violation `json:"errors,omitempty"`
}

// SchemaName names the error body in generated API documentation.
func (ErrorResponse) SchemaName() string {
	return "HTTPValidationError"
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
