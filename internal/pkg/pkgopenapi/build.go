package pkgopenapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.1.0"

// Build generates the document for routes. Hidden routes are skipped.
func Build(info huma.Info, routes []pkgrouter.Route) *huma.OpenAPI {
	reg := NewRegistry()
	doc := &huma.OpenAPI{
		OpenAPI:    Version,
		Info:       &info,
		Paths:      map[string]*huma.PathItem{},
		Components: &huma.Components{Schemas: reg.Huma()},
	}

	for _, rt := range routes {
		if rt.Hidden {
			continue
		}
		doc.AddOperation(operation(reg, rt))
	}

	return doc
}

func operation(reg *Registry, rt pkgrouter.Route) *huma.Operation {
	op := &huma.Operation{
		Method:      rt.Method,
		Path:        rt.Path,
		OperationID: rt.OperationID,
		Summary:     rt.Summary,
		Description: rt.Description,
		Tags:        rt.Tags,
		Responses:   map[string]*huma.Response{},
	}

	for _, p := range rt.Params {
		op.Parameters = append(op.Parameters, &huma.Param{
			Name:        p.Name,
			In:          string(p.In),
			Required:    p.Required,
			Description: p.Description,
			Example:     p.Example,
			Schema:      ParamSchema(p),
		})
	}

	if rt.Body != nil {
		op.RequestBody = &huma.RequestBody{
			Required: true,
			Content:  jsonContent(reg.Schema(reflect.TypeOf(rt.Body))),
		}
		op.Responses[strconv.Itoa(http.StatusBadRequest)] = &huma.Response{
			Description: "Invalid Request Body",
			Content:     jsonContent(reg.Schema(reflect.TypeOf((*pkgrouter.ErrorResponse)(nil)).Elem())),
		}
	}

	ok := &huma.Schema{}
	if rt.Response != nil {
		ok = reg.Schema(reflect.TypeOf(rt.Response))
	}
	op.Responses[strconv.Itoa(http.StatusOK)] = &huma.Response{
		Description: "Successful Response",
		Content:     jsonContent(ok),
	}

	if len(rt.Params) > 0 || rt.Body != nil {
		op.Responses[strconv.Itoa(http.StatusUnprocessableEntity)] = &huma.Response{
			Description: "Validation Error",
			Content:     jsonContent(reg.Schema(reflect.TypeOf((*pkgrouter.ErrorResponse)(nil)).Elem())),
		}
	}

	return op
}

func jsonContent(s *huma.Schema) map[string]*huma.MediaType {
	return map[string]*huma.MediaType{"application/json": {Schema: s}}
}

// JSON encodes doc as indented JSON.
func JSON(doc *huma.OpenAPI) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// YAML encodes doc as YAML.
func YAML(doc *huma.OpenAPI) ([]byte, error) {
	return doc.YAML()
}
