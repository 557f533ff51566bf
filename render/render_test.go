package render

import (
	"testing"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("status line, headers, blank line, body", func(t *testing.T) {
		resp := http.OK().
			WithHeader("Content-Type", "text/plain").
			WithHeader("X-Request-Id", "abc").
			WithBody([]byte("hello"))

		wire := Response(proto.HTTP11, resp)

		require.Equal(t,
			"HTTP/1.1 200 OK\r\n"+
				"Content-Type: text/plain\r\n"+
				"X-Request-Id: abc\r\n"+
				"\r\n"+
				"hello",
			string(wire),
		)
	})

	t.Run("no headers, no body", func(t *testing.T) {
		wire := Response(proto.HTTP10, http.NotFound())
		require.Equal(t, "HTTP/1.0 404 Not Found\r\n\r\n", string(wire))
	})
}
