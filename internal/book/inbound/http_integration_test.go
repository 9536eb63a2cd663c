package inbound

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/shandysiswandi/gobook/internal/book/usecase"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkguid"
)

func newRouter(t *testing.T) *pkgrouter.Router {
	t.Helper()

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, usecase.New())
	return router
}

func call(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func expectOK(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

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

func decodeError(t *testing.T, rec *httptest.ResponseRecorder, code int) pkgrouter.ErrorResponse {
	t.Helper()

	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}

	var resp pkgrouter.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func validationErrors(t *testing.T, rec *httptest.ResponseRecorder) pkgrouter.ErrorResponse {
	t.Helper()

	resp := decodeError(t, rec, http.StatusUnprocessableEntity)
	if len(resp.Errors) == 0 {
		t.Fatalf("expected violations, got %s", rec.Body.String())
	}
	return resp
}

func TestGetBookByID(t *testing.T) {
	router := newRouter(t)

	for _, id := range []int64{1, 2, 42, 1 << 40} {
		rec := call(t, router, http.MethodGet, fmt.Sprintf("/book/%d", id), "")
		expectOK(t, rec, fmt.Sprintf(`{"book_id":%d}`, id))
	}

	resp := validationErrors(t, call(t, router, http.MethodGet, "/book/abc", ""))
	if v := resp.Errors[0]; !slices.Equal(v.Loc, []string{"path", "book_id"}) || v.Type != "int_parsing" {
		t.Fatalf("unexpected violation %+v", v)
	}
}

func TestGetBookByIDViaQuery(t *testing.T) {
	router := newRouter(t)

	expectOK(t, call(t, router, http.MethodGet, "/get_book?book_id=7", ""), `{"book_id":7}`)
	expectOK(t, call(t, router, http.MethodGet, "/get_book?book_id=x&book_id=8", ""), `{"book_id":8}`)

	resp := validationErrors(t, call(t, router, http.MethodGet, "/get_book", ""))
	if v := resp.Errors[0]; !slices.Equal(v.Loc, []string{"query", "book_id"}) || v.Type != "missing" {
		t.Fatalf("unexpected violation %+v", v)
	}
}

func TestGetBookByIDMix(t *testing.T) {
	router := newRouter(t)

	expectOK(t, call(t, router, http.MethodGet, "/book/3/with_mode?query_mode=author", ""),
		`{"book_id":3,"query_mode":"author"}`)
	expectOK(t, call(t, router, http.MethodGet, "/book/3/with_mode?query_mode=customer", ""),
		`{"book_id":3,"query_mode":"customer"}`)
	expectOK(t, call(t, router, http.MethodGet, "/book/3/with_mode?query_mode=author&query_mode=customer", ""),
		`{"book_id":3,"query_mode":"customer"}`)

	for _, target := range []string{
		"/book/3/with_mode?query_mode=unknown",
		"/book/3/with_mode?query_mode=Author",
		"/book/3/with_mode?query_mode=author&query_mode=unknown",
		"/book/3/with_mode",
	} {
		resp := validationErrors(t, call(t, router, http.MethodGet, target, ""))
		if loc := resp.Errors[0].Loc; !slices.Equal(loc, []string{"query", "query_mode"}) {
			t.Fatalf("%s: unexpected loc %v", target, loc)
		}
	}
}

func TestGetBookByIDWithValidation(t *testing.T) {
	router := newRouter(t)

	expectOK(t, call(t, router, http.MethodGet, "/book/1/with_validation", ""), `{"book_id":1}`)

	for _, id := range []string{"0", "-1", "-100"} {
		resp := validationErrors(t, call(t, router, http.MethodGet, "/book/"+id+"/with_validation", ""))
		if v := resp.Errors[0]; v.Type != "greater_than_equal" || v.Input != id {
			t.Fatalf("%s: unexpected violation %+v", id, v)
		}
	}
}

func TestGetBookByIDWithExtraDocument(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{
		"/book/%s/with_validation_and_some_extra_document",
		"/book/%s/with_validation_and_some_extra_documnet",
	} {
		expectOK(t, call(t, router, http.MethodGet, fmt.Sprintf(path, "5"), ""), `{"book_id":5}`)
		validationErrors(t, call(t, router, http.MethodGet, fmt.Sprintf(path, "0"), ""))
	}
}

func TestGetBookByIDWithResponseModel(t *testing.T) {
	router := newRouter(t)

	expectOK(t, call(t, router, http.MethodGet, "/book/5/with_response_model", ""),
		`{"bid":5,"name":"name of bid 5","price":39.95,"category":"cooking"}`)

	validationErrors(t, call(t, router, http.MethodGet, "/book/0/with_response_model", ""))
}

func TestCreateBook(t *testing.T) {
	router := newRouter(t)

	t.Run("appends suffix", func(t *testing.T) {
		rec := call(t, router, http.MethodPost, "/book", `{"bid":1,"name":"Go","price":10.0,"category":"comics"}`)
		expectOK(t, rec, `{"bid":1,"name":"Go suffix","price":10,"category":"comics"}`)
	})

	t.Run("ignores extra fields", func(t *testing.T) {
		rec := call(t, router, http.MethodPost, "/book", `{"bid":2,"name":"abc","price":0.5,"category":"cooking","isbn":"x"}`)
		expectOK(t, rec, `{"bid":2,"name":"abc suffix","price":0.5,"category":"cooking"}`)
	})

	t.Run("rejects every invalid field", func(t *testing.T) {
		resp := validationErrors(t, call(t, router, http.MethodPost, "/book", `{"bid":0,"name":"G","price":0,"category":"novel"}`))

		locs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			locs = append(locs, strings.Join(e.Loc, "."))
		}
		if want := []string{"body.bid", "body.name", "body.price", "body.category"}; !slices.Equal(locs, want) {
			t.Fatalf("expected %v, got %v", want, locs)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		resp := validationErrors(t, call(t, router, http.MethodPost, "/book", `{"bid":1,"name":"Go","price":1}`))
		if len(resp.Errors) != 1 {
			t.Fatalf("expected 1 violation, got %+v", resp.Errors)
		}
		if v := resp.Errors[0]; !slices.Equal(v.Loc, []string{"body", "category"}) || v.Type != "missing" {
			t.Fatalf("unexpected violation %+v", v)
		}
	})

	for name, body := range map[string]string{"empty body": "", "null body": "null"} {
		t.Run(name, func(t *testing.T) {
			resp := validationErrors(t, call(t, router, http.MethodPost, "/book", body))
			if len(resp.Errors) != 1 {
				t.Fatalf("expected 1 violation, got %+v", resp.Errors)
			}
			if v := resp.Errors[0]; !slices.Equal(v.Loc, []string{"body"}) || v.Type != "missing" {
				t.Fatalf("unexpected violation %+v", v)
			}
		})
	}

	for name, body := range map[string]string{
		"malformed json":          `{"bid":`,
		"malformed trailing data": `{"bid":1,"name":"Go","price":1,"category":"comics"} not json`,
		"second document":         `{"bid":1,"name":"Go","price":1,"category":"comics"}{"bid":2}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp := decodeError(t, call(t, router, http.MethodPost, "/book", body), http.StatusBadRequest)
			if resp.Message != "invalid request body" {
				t.Fatalf("unexpected message %q", resp.Message)
			}
		})
	}
}

func TestRoutesTable(t *testing.T) {
	routes := Routes(usecase.New())
	if len(routes) != 8 {
		t.Fatalf("expected 8 routes, got %d", len(routes))
	}

	hidden := 0
	for _, rt := range routes {
		if rt.Handler == nil {
			t.Fatalf("%s has no handler", rt.Path)
		}
		if rt.Hidden {
			hidden++
			if rt.Path != "/book/{book_id}/with_validation_and_some_extra_documnet" {
				t.Fatalf("unexpected hidden route %s", rt.Path)
			}
		}
	}
	if hidden != 1 {
		t.Fatalf("expected 1 hidden route, got %d", hidden)
	}
}
