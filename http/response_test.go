package http

import (
	"errors"
	"testing"

	"github.com/lumen-web/lumen/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilder(t *testing.T) {
	t.Run("constructors default the status text", func(t *testing.T) {
		require.Equal(t, status.Status("OK"), OK().Status)
		require.Equal(t, status.Status("Bad Request"), BadRequest().Status)
		require.Equal(t, status.Status("Not Found"), NotFound().Status)
		require.Equal(t, status.Status("Internal Server Error"), InternalServerError().Status)
	})

	t.Run("fluent chain", func(t *testing.T) {
		resp := OK().
			WithHeader("X-First", "1").
			WithHeader("X-Second", "2").
			WithText("hello")

		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "1", resp.Headers.Value("X-First"))
		require.Equal(t, "2", resp.Headers.Value("X-Second"))
		require.Equal(t, "text/plain", resp.Headers.Value("Content-Type"))
		require.Equal(t, "hello", string(resp.Body))
	})

	t.Run("header overwrite", func(t *testing.T) {
		resp := OK().
			WithHeader("X-Value", "old").
			WithHeader("X-Value", "new")

		require.Equal(t, 1, resp.Headers.Len())
		require.Equal(t, "new", resp.Headers.Value("X-Value"))
	})

	t.Run("html", func(t *testing.T) {
		resp := OK().WithHTML("<h1>Welcome</h1>")
		require.Equal(t, "text/html", resp.Headers.Value("Content-Type"))
		require.Equal(t, "<h1>Welcome</h1>", string(resp.Body))
	})

	t.Run("json", func(t *testing.T) {
		resp := OK().JSON(&struct {
			Name string `json:"name"`
		}{Name: "lumen"})

		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "application/json", resp.Headers.Value("Content-Type"))
		require.JSONEq(t, `{"name":"lumen"}`, string(resp.Body))
	})

	t.Run("unknown code", func(t *testing.T) {
		resp := New(status.Code(999))
		require.Equal(t, status.Status("Unknown Status Code"), resp.Status)
	})

	t.Run("error", func(t *testing.T) {
		resp := OK().WithError(errors.New("boom"))
		require.Equal(t, status.InternalServerError, resp.Code)
		require.Equal(t, "boom", string(resp.Body))

		resp = OK().WithError(nil)
		require.Equal(t, status.OK, resp.Code)
	})
}
