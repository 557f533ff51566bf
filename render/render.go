// Package render serializes response values into their HTTP/1.1 wire form.
// The core itself never writes bytes anywhere; a connection layer calls this
// and ships the result.
package render

import (
	"strconv"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/proto"
)

const crlf = "\r\n"

// Response renders the response: status line first, then one line per header,
// a blank line, and finally the raw body bytes.
func Response(protocol proto.Proto, resp *http.Response) []byte {
	buff := make([]byte, 0, estimate(protocol, resp))

	buff = append(buff, protocol.String()...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(resp.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, resp.Status...)
	buff = append(buff, crlf...)

	for key, value := range resp.Headers.Iter() {
		buff = append(buff, key...)
		buff = append(buff, ": "...)
		buff = append(buff, value...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)

	return append(buff, resp.Body...)
}

func estimate(protocol proto.Proto, resp *http.Response) int {
	size := len(protocol.String()) + len(" 999 ") + len(resp.Status) + 2*len(crlf)

	for key, value := range resp.Headers.Iter() {
		size += len(key) + len(": ") + len(value) + len(crlf)
	}

	return size + len(resp.Body)
}
