package http

import (
	"math"

	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// RequestLine is the first line of an HTTP/1.1 request: method, target and
// protocol version.
type RequestLine struct {
	Method method.Method
	URI    string
	Proto  proto.Proto
}

// Request represents a fully parsed HTTP request. It is plain immutable data:
// no I/O hides behind any of its fields, so sharing it between goroutines
// requires no coordination as long as nobody writes.
type Request struct {
	RequestLine
	// Headers holds non-normalized header pairs. Lookup is byte-exact, so a
	// client sending "content-length" won't be seen by ContentLength. That's
	// intentional: no case folding happens anywhere in this core.
	Headers Headers
	// Body is everything past the header block, verbatim. It is NOT validated
	// against Content-Length.
	Body []byte
}

func NewRequest(line RequestLine, headers Headers, body []byte) *Request {
	return &Request{
		RequestLine: line,
		Headers:     headers,
		Body:        body,
	}
}

// Header returns the value of the named header, looked up byte-exact.
func (r *Request) Header(key string) (value string, found bool) {
	return r.Headers.Get(key)
}

// ContentLength returns the value of the Content-Length header, or 0 if the
// header is missing or its value isn't a plain unsigned decimal number. A
// signed value, even "+1", silently yields 0 as well, and so does a number
// too large for an int.
func (r *Request) ContentLength() (n int) {
	value, found := r.Headers.Get("Content-Length")
	if !found || len(value) == 0 {
		return 0
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0
		}

		if n > (math.MaxInt-9)/10 {
			return 0
		}

		n = n*10 + int(c-'0')
	}

	return n
}
