package middleware

import (
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/router"
)

// CORS unconditionally stamps permissive cross-origin headers onto the response
// on the way out, overwriting whatever the handler may have set under the same
// names.
func CORS() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(request *http.Request) *http.Response {
			return next(request).
				WithHeader("Access-Control-Allow-Origin", "*").
				WithHeader("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		}
	}
}
