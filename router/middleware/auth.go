package middleware

import (
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/router"
)

// RequireAuth delegates only if the predicate accepts the request; otherwise it
// short-circuits with 401, and neither the handler nor anything wrapped deeper
// ever sees the request.
func RequireAuth(predicate func(*http.Request) bool) router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(request *http.Request) *http.Response {
			if !predicate(request) {
				return http.New(status.Unauthorized).
					WithText("Authentication required")
			}

			return next(request)
		}
	}
}
