package lumen

import (
	"testing"

	"github.com/lumen-web/lumen/combinator"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/router"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	r := router.New().Get("/ping", func(*http.Request) *http.Response {
		return http.OK().WithText("pong")
	})

	t.Run("parse and dispatch", func(t *testing.T) {
		resp, err := Process(r, []byte("GET /ping HTTP/1.1\r\nHost: h\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "pong", string(resp.Body))
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := Process(r, []byte("GET /nowhere HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, status.NotFound, resp.Code)
	})

	t.Run("malformed input answers 400", func(t *testing.T) {
		resp, err := Process(r, []byte("NONSENSE\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, status.BadRequest, resp.Code)
	})

	t.Run("truncated input is final for this grammar", func(t *testing.T) {
		// the request grammar reports truncation through its Invalid* kinds,
		// so it gets answered rather than returned for a retry
		resp, err := Process(r, []byte("GET /ping HTTP/1.1\r\nHost: h"))
		require.NoError(t, err)
		require.Equal(t, status.BadRequest, resp.Code)
		require.Equal(t, combinator.InvalidHeader.Error(), string(resp.Body))
	})
}
