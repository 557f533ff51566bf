package middleware

import (
	"testing"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
	"github.com/lumen-web/lumen/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func getRequest(headers *kv.Storage) *http.Request {
	return http.NewRequest(http.RequestLine{
		Method: method.GET,
		URI:    "/ping",
		Proto:  proto.HTTP11,
	}, headers, nil)
}

func respondOK(*http.Request) *http.Response {
	return http.OK()
}

func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := router.Compose(respondOK, LogRequests(zap.New(core)))

	handler(getRequest(kv.New()))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "request", entries[0].Message)
	require.Equal(t, "GET", entries[0].ContextMap()["method"])
	require.Equal(t, "/ping", entries[0].ContextMap()["uri"])
	require.Equal(t, "response", entries[1].Message)
	require.EqualValues(t, status.OK, entries[1].ContextMap()["status"])
}

func TestCORS(t *testing.T) {
	t.Run("adds headers", func(t *testing.T) {
		handler := router.Compose(respondOK, CORS())

		resp := handler(getRequest(kv.New()))
		require.Equal(t, "*", resp.Headers.Value("Access-Control-Allow-Origin"))
		require.Equal(t, "GET, POST, PUT, DELETE", resp.Headers.Value("Access-Control-Allow-Methods"))
	})

	t.Run("overwrites existing values", func(t *testing.T) {
		handler := router.Compose(func(*http.Request) *http.Response {
			return http.OK().WithHeader("Access-Control-Allow-Origin", "https://example.com")
		}, CORS())

		resp := handler(getRequest(kv.New()))
		require.Equal(t, "*", resp.Headers.Value("Access-Control-Allow-Origin"))
	})
}

func TestRequireAuth(t *testing.T) {
	authorized := func(request *http.Request) bool {
		return request.Headers.Has("Authorization")
	}

	invoked := false
	handler := router.Compose(func(*http.Request) *http.Response {
		invoked = true
		return http.OK()
	}, RequireAuth(authorized))

	t.Run("rejected", func(t *testing.T) {
		resp := handler(getRequest(kv.New()))
		require.Equal(t, status.Unauthorized, resp.Code)
		require.Equal(t, "Authentication required", string(resp.Body))
		require.False(t, invoked, "the terminal handler must not run")
	})

	t.Run("passed through", func(t *testing.T) {
		resp := handler(getRequest(kv.New().Set("Authorization", "Bearer token")))
		require.Equal(t, status.OK, resp.Code)
		require.True(t, invoked)
	})
}

func TestRequestID(t *testing.T) {
	handler := router.Compose(respondOK, RequestID())

	first := handler(getRequest(kv.New())).Headers.Value("X-Request-Id")
	second := handler(getRequest(kv.New())).Headers.Value("X-Request-Id")

	require.Len(t, first, requestIDLength)
	require.Len(t, second, requestIDLength)
	require.NotEqual(t, first, second)
}
