package router

import (
	"testing"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/status"
	"github.com/stretchr/testify/require"
)

func probe(name string, trace *[]string) Middleware {
	return func(next Handler) Handler {
		return func(request *http.Request) *http.Response {
			*trace = append(*trace, name+" in")
			response := next(request)
			*trace = append(*trace, name+" out")

			return response
		}
	}
}

func TestCompose(t *testing.T) {
	t.Run("no middlewares", func(t *testing.T) {
		handler := Compose(respondOK)
		require.Equal(t, status.OK, handler(getRequest("/")).Code)
	})

	t.Run("first listed is outermost", func(t *testing.T) {
		var trace []string

		handler := Compose(func(*http.Request) *http.Response {
			trace = append(trace, "handler")
			return http.OK()
		}, probe("A", &trace), probe("B", &trace))

		handler(getRequest("/"))

		require.Equal(t, []string{"A in", "B in", "handler", "B out", "A out"}, trace)
	})

	t.Run("short-circuiting skips everything inside", func(t *testing.T) {
		var trace []string

		block := func(Handler) Handler {
			return func(*http.Request) *http.Response {
				trace = append(trace, "blocked")
				return http.New(status.Forbidden)
			}
		}

		handler := Compose(func(*http.Request) *http.Response {
			trace = append(trace, "handler")
			return http.OK()
		}, probe("A", &trace), block, probe("B", &trace))

		resp := handler(getRequest("/"))

		require.Equal(t, status.Forbidden, resp.Code)
		require.Equal(t, []string{"A in", "blocked", "A out"}, trace)
	})
}
