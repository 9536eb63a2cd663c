package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/shandysiswandi/gobook/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

type widget struct {
	ID   int64  `json:"id" validate:"gte=1"`
	Name string `json:"name" validate:"min=2"`
}

type widgetRequest struct {
	ID   *int64  `json:"id" validate:"required,gte=1"`
	Name *string `json:"name" validate:"required,min=2"`
}

func testRouter(t *testing.T) *Router {
	t.Helper()

	r := NewRouter(&staticGenerator{value: "cid"})
	r.Register(
		Route{
			Method: http.MethodGet,
			Path:   "/widget/{id}",
			Params: []pkgvalidate.Param{
				pkgvalidate.PathInt("id", pkgvalidate.Min(1)),
				pkgvalidate.QueryEnum("mode", "a", "b").Optional(),
			},
			Handler: func(_ context.Context, req *Request) (any, error) {
				return map[string]any{"id": req.Params.Int("id"), "mode": req.Params.String("mode")}, nil
			},
		},
		Route{
			Method: http.MethodPost,
			Path:   "/widget",
			Body:   widgetRequest{},
			Handler: func(_ context.Context, req *Request) (any, error) {
				in := Body[widgetRequest](req)
				return widget{ID: *in.ID, Name: *in.Name + "!"}, nil
			},
		},
		Route{
			Method:   http.MethodGet,
			Path:     "/shaped",
			Response: widget{},
			Handler: func(context.Context, *Request) (any, error) {
				return map[string]any{"id": 7, "name": "seven", "internal": true}, nil
			},
		},
		Route{
			Method:   http.MethodGet,
			Path:     "/broken",
			Response: widget{},
			Handler: func(context.Context, *Request) (any, error) {
				return widget{ID: 0, Name: "x"}, nil
			},
		},
		Route{
			Method: http.MethodGet,
			Path:   "/moved",
			Hidden: true,
			Handler: func(context.Context, *Request) (any, error) {
				return Redirect{Location: "/docs", Code: http.StatusTemporaryRedirect}, nil
			},
		},
		Route{
			Method: http.MethodGet,
			Path:   "/raw",
			Handler: func(context.Context, *Request) (any, error) {
				return Raw{ContentType: "text/plain", Body: []byte("plain")}, nil
			},
		},
		Route{
			Method: http.MethodGet,
			Path:   "/fail",
			Handler: func(context.Context, *Request) (any, error) {
				return nil, errors.New("boom")
			},
		},
		Route{
			Method: http.MethodGet,
			Path:   "/panic",
			Handler: func(context.Context, *Request) (any, error) {
				panic("boom")
			},
		},
	)

	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()

	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

func expectJSON(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	var got, exp any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	if err := json.Unmarshal([]byte(want), &exp); err != nil {
		t.Fatalf("decode expected %q: %v", want, err)
	}
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected body %s, got %s", want, rec.Body.String())
	}
}

func expectLoc(t *testing.T, v pkgerror.Violation, loc ...string) {
	t.Helper()

	if !slices.Equal(v.Loc, loc) {
		t.Fatalf("expected loc %v, got %v", loc, v.Loc)
	}
}

func TestRouterParams(t *testing.T) {
	r := testRouter(t)

	t.Run("valid", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/widget/3?mode=b", "")
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec, `{"id":3,"mode":"b"}`)
		if got := rec.Header().Get(HeaderCorrelationID); got != "cid" {
			t.Fatalf("expected correlation id cid, got %q", got)
		}
	})

	t.Run("repeated query key binds the last value", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/widget/3?mode=c&mode=a", "")
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec, `{"id":3,"mode":"a"}`)

		rec = do(r, http.MethodGet, "/widget/3?mode=a&mode=c", "")
		expectStatus(t, rec, http.StatusUnprocessableEntity)
		if v := decodeError(t, rec).Errors[0]; v.Input != "c" {
			t.Fatalf("expected input c, got %#v", v.Input)
		}
	})

	t.Run("collects every violation", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/widget/0?mode=c", "")
		expectStatus(t, rec, http.StatusUnprocessableEntity)

		resp := decodeError(t, rec)
		if resp.Message != "validation error" {
			t.Fatalf("unexpected message %q", resp.Message)
		}
		if len(resp.Errors) != 2 {
			t.Fatalf("expected 2 violations, got %+v", resp.Errors)
		}
		expectLoc(t, resp.Errors[0], "path", "id")
		if resp.Errors[0].Type != "greater_than_equal" || resp.Errors[0].Input != "0" {
			t.Fatalf("unexpected violation %+v", resp.Errors[0])
		}
		expectLoc(t, resp.Errors[1], "query", "mode")
		if resp.Errors[1].Type != "enum" {
			t.Fatalf("unexpected violation %+v", resp.Errors[1])
		}
	})

	t.Run("not an integer", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/widget/abc", "")
		expectStatus(t, rec, http.StatusUnprocessableEntity)
		if typ := decodeError(t, rec).Errors[0].Type; typ != "int_parsing" {
			t.Fatalf("expected int_parsing, got %q", typ)
		}
	})
}

func TestRouterBody(t *testing.T) {
	r := testRouter(t)

	t.Run("valid", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/widget", `{"id":1,"name":"Go","extra":1}`)
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec, `{"id":1,"name":"Go!"}`)
	})

	t.Run("constraint violations", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/widget", `{"id":0}`)
		expectStatus(t, rec, http.StatusUnprocessableEntity)

		resp := decodeError(t, rec)
		if len(resp.Errors) != 2 {
			t.Fatalf("expected 2 violations, got %+v", resp.Errors)
		}
		expectLoc(t, resp.Errors[0], "body", "id")
		expectLoc(t, resp.Errors[1], "body", "name")
		if resp.Errors[1].Type != "missing" {
			t.Fatalf("expected missing, got %q", resp.Errors[1].Type)
		}
	})

	for name, body := range map[string]string{
		"malformed":               `{"id":`,
		"malformed trailing data": `{"id":1,"name":"Go"} not json`,
		"second document":         `{"id":1,"name":"Go"}{"id":2}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(r, http.MethodPost, "/widget", body)
			expectStatus(t, rec, http.StatusBadRequest)
			if msg := decodeError(t, rec).Message; msg != "invalid request body" {
				t.Fatalf("unexpected message %q", msg)
			}
		})
	}

	for name, body := range map[string]string{"empty": "", "null": "null"} {
		t.Run(name, func(t *testing.T) {
			rec := do(r, http.MethodPost, "/widget", body)
			expectStatus(t, rec, http.StatusUnprocessableEntity)

			resp := decodeError(t, rec)
			if len(resp.Errors) != 1 {
				t.Fatalf("expected a single violation, got %+v", resp.Errors)
			}
			expectLoc(t, resp.Errors[0], "body")
		})
	}
}

func TestRouterResponses(t *testing.T) {
	r := testRouter(t)

	t.Run("shaped against schema", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/shaped", "")
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec, `{"id":7,"name":"seven"}`)
	})

	t.Run("invalid response is a server error", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/broken", "")
		expectStatus(t, rec, http.StatusInternalServerError)
		resp := decodeError(t, rec)
		if resp.Message != "Internal server error" || len(resp.Errors) != 0 {
			t.Fatalf("unexpected body %+v", resp)
		}
	})

	t.Run("redirect", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/moved", "")
		expectStatus(t, rec, http.StatusTemporaryRedirect)
		if loc := rec.Header().Get("Location"); loc != "/docs" {
			t.Fatalf("expected /docs, got %q", loc)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}
	})

	t.Run("raw", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/raw", "")
		if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if rec.Body.String() != "plain" {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("plain error", func(t *testing.T) {
		expectStatus(t, do(r, http.MethodGet, "/fail", ""), http.StatusInternalServerError)
	})

	t.Run("panic", func(t *testing.T) {
		expectStatus(t, do(r, http.MethodGet, "/panic", ""), http.StatusInternalServerError)
	})

	t.Run("health", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/health", "")
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec, `{"message":"server is running well"}`)
	})

	t.Run("not found", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/nope", "")
		expectStatus(t, rec, http.StatusNotFound)
		if msg := decodeError(t, rec).Message; msg != "endpoint not found" {
			t.Fatalf("unexpected message %q", msg)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		expectStatus(t, do(r, http.MethodDelete, "/widget", ""), http.StatusMethodNotAllowed)
	})
}

func TestRouterRoutes(t *testing.T) {
	r := testRouter(t)

	routes := r.Routes()
	if len(routes) != 9 {
		t.Fatalf("expected 9 routes, got %d", len(routes))
	}
	if routes[0].Path != "/health" || routes[1].Path != "/widget/{id}" {
		t.Fatalf("unexpected order %q %q", routes[0].Path, routes[1].Path)
	}

	routes[1].Path = "/changed"
	if got := r.Routes()[1].Path; got != "/widget/{id}" {
		t.Fatalf("expected a copy of the table, got %q", got)
	}
}

func TestRegisterPanicsOnPathMismatch(t *testing.T) {
	noop := func(context.Context, *Request) (any, error) { return nil, nil }

	expectPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}

	expectPanic("undeclared placeholder", func() {
		NewRouter(nil).Register(Route{Method: http.MethodGet, Path: "/a/{id}", Handler: noop})
	})
	expectPanic("declared parameter missing from template", func() {
		NewRouter(nil).Register(Route{
			Method:  http.MethodGet,
			Path:    "/a",
			Params:  []pkgvalidate.Param{pkgvalidate.PathInt("id")},
			Handler: noop,
		})
	})
}

func TestToRouterPath(t *testing.T) {
	for in, want := range map[string]string{
		"/book/{book_id}/with_mode": "/book/:book_id/with_mode",
		"/":                         "/",
	} {
		if got := toRouterPath(in); got != want {
			t.Fatalf("%s: expected %q, got %q", in, want, got)
		}
	}
}

func TestErrorCodecKeepsValidationDetails(t *testing.T) {
	r := NewRouter(nil)
	rec := httptest.NewRecorder()

	r.errorCodec(context.Background(), rec, pkgerror.NewValidation(pkgerror.Violation{
		Loc: []string{"query", "book_id"}, Msg: "Field required", Type: "missing",
	}))

	expectStatus(t, rec, http.StatusUnprocessableEntity)
	expectJSON(t, rec, `{"message":"validation error","errors":[{"loc":["query","book_id"],"msg":"Field required","type":"missing"}]}`)
}
