package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/gobook/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"

	maxCIDLength = 128
)

// normalizeCID trims v and rejects values that could split a header line.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxCIDLength {
		v = v[:maxCIDLength]
	}
	return v
}

// clientCID returns the first usable ID the client sent.
func clientCID(h http.Header) string {
	for _, name := range []string{HeaderCorrelationID, HeaderRequestID} {
		if cid := normalizeCID(h.Get(name)); cid != "" {
			return cid
		}
	}
	return ""
}

func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := clientCID(r.Header)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
