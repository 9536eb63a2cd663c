package pkgrouter

import (
	"net/http"
	"reflect"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

const maxBodyBytes = 1 << 20

// bind reads and validates the declared parameters and body of rt.
func bind(w http.ResponseWriter, r *http.Request, rt Route) (*Request, error) {
	path := httprouter.ParamsFromContext(r.Context())
	query := r.URL.Query()

	values, err := pkgvalidate.Bind(rt.Params, func(p pkgvalidate.Param) (string, bool) {
		if p.In == pkgvalidate.InPath {
			v := path.ByName(p.Name)
			return v, v != ""
		}
		// a repeated key binds its last value
		vs := query[p.Name]
		if len(vs) == 0 {
			return "", false
		}
		return vs[len(vs)-1], true
	})
	if err != nil {
		return nil, err
	}

	req := &Request{Params: values, HTTP: r}
	if rt.Body == nil {
		return req, nil
	}

	dst := reflect.New(reflect.TypeOf(rt.Body))
	if err := pkgvalidate.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), dst.Interface()); err != nil {
		return nil, err
	}

	body := dst.Elem().Interface()
	if err := pkgvalidate.Struct("body", body); err != nil {
		return nil, err
	}
	req.Body = body

	return req, nil
}
