// Package middleware provides ready-made middlewares for the router.
package middleware

import (
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/router"
	"go.uber.org/zap"
)

// LogRequests records the method and URI before delegating, and the resulting
// status code after.
func LogRequests(log *zap.Logger) router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(request *http.Request) *http.Response {
			log.Info("request",
				zap.String("method", request.Method.String()),
				zap.String("uri", request.URI),
			)

			response := next(request)

			log.Info("response",
				zap.Uint16("status", uint16(response.Code)),
			)

			return response
		}
	}
}
