package docs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
)

const (
	PathOpenAPIJSON = "/openapi.json"
	PathOpenAPIYAML = "/openapi.yaml"

	defaultPath    = "/docs"
	defaultTitle   = "gobook"
	defaultVersion = "0.1.0"
)

var ErrInvalidPath = errors.New("docs.path must start with / and not be the root")

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

// New documents every route registered so far, so it must run after the
// other modules. It serves the document, the reference page and a redirect
// from "/" to that page.
func New(dep Dependency) error {
	path := valueOr(dep.Config.GetString("docs.path"), defaultPath)
	if !strings.HasPrefix(path, "/") || path == "/" {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	info := huma.Info{
		Title:   valueOr(dep.Config.GetString("docs.title"), defaultTitle),
		Version: valueOr(dep.Config.GetString("docs.version"), defaultVersion),
	}

	doc := pkgopenapi.Build(info, dep.Router.Routes())

	specJSON, err := pkgopenapi.JSON(doc)
	if err != nil {
		return fmt.Errorf("encode openapi json: %w", err)
	}

	specYAML, err := pkgopenapi.YAML(doc)
	if err != nil {
		return fmt.Errorf("encode openapi yaml: %w", err)
	}

	page, err := renderPage(info.Title, PathOpenAPIYAML)
	if err != nil {
		return fmt.Errorf("render docs page: %w", err)
	}

	dep.Router.Register(
		pkgrouter.Route{
			Method:      http.MethodGet,
			Path:        "/",
			OperationID: "home",
			Hidden:      true,
			Handler:     redirect(path),
		},
		pkgrouter.Route{
			Method:      http.MethodGet,
			Path:        path,
			OperationID: "docs",
			Hidden:      true,
			Handler:     raw("text/html; charset=utf-8", page),
		},
		pkgrouter.Route{
			Method:      http.MethodGet,
			Path:        PathOpenAPIJSON,
			OperationID: "openapi_json",
			Hidden:      true,
			Handler:     raw("application/json", specJSON),
		},
		pkgrouter.Route{
			Method:      http.MethodGet,
			Path:        PathOpenAPIYAML,
			OperationID: "openapi_yaml",
			Hidden:      true,
			Handler:     raw("application/yaml", specYAML),
		},
	)

	return nil
}

func redirect(location string) pkgrouter.Handler {
	return func(context.Context, *pkgrouter.Request) (any, error) {
		return pkgrouter.Redirect{Location: location, Code: http.StatusTemporaryRedirect}, nil
	}
}

func raw(contentType string, body []byte) pkgrouter.Handler {
	return func(context.Context, *pkgrouter.Request) (any, error) {
		return pkgrouter.Raw{ContentType: contentType, Body: body}, nil
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
