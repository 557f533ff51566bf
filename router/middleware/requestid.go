package middleware

import (
	"github.com/dchest/uniuri"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/router"
)

const requestIDLength = 16

// RequestID stamps every response with a freshly generated X-Request-Id header,
// overwriting one set by the handler.
func RequestID() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(request *http.Request) *http.Response {
			return next(request).
				WithHeader("X-Request-Id", uniuri.NewLen(requestIDLength))
		}
	}
}
