package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// withLowercasePath routes the request by its lower-cased path. The original
// URL is left untouched. Must be installed with chi's Use so that it runs
// before route matching.
func withLowercasePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			path := r.URL.RawPath
			if path == "" {
				path = r.URL.Path
			}
			rctx.RoutePath = strings.ToLower(path)
		}

		next.ServeHTTP(w, r)
	})
}
