// Package lumen is an HTTP/1.1 request-processing core: a parser-combinator
// based request parser, an immutable router with path parameters, and
// middleware composition. It performs no I/O of its own; a connection layer
// feeds it complete request buffers and ships the response bytes back.
package lumen

import (
	"errors"

	"github.com/lumen-web/lumen/combinator"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/parser"
	"github.com/lumen-web/lumen/router"
)

// Process parses a raw request buffer and dispatches it through the router.
//
// An IncompleteRequest parse failure is returned as the error: the buffer may
// still become parseable once more bytes arrive, and only the caller can wait
// for them. Any other parse failure is final, so it is answered right away
// with a 400 carrying the failure text. Handler panics are already isolated by
// Router.Handle, so the returned response is total for complete buffers.
func Process(r router.Router, raw []byte) (*http.Response, error) {
	request, err := parser.Parse(raw)
	if err != nil {
		if errors.Is(err, combinator.IncompleteRequest) {
			return nil, err
		}

		return http.BadRequest().WithText(err.Error()), nil
	}

	return r.Handle(request), nil
}
