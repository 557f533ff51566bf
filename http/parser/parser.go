// Package parser implements the HTTP/1.1 request grammar on top of the
// combinator engine. Each exported constructor returns a ready-to-run parser;
// Parse glues them together into the full request pipeline.
package parser

import (
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/lumen-web/lumen/combinator"
	"github.com/lumen-web/lumen/http"
	methods "github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/kv"
)

const preallocHeaders = 8

// Method matches one of the nine method tokens, byte-exact. Anything else,
// including a differently-cased token, fails.
func Method() combinator.Parser[methods.Method] {
	lit := func(token string, m methods.Method) combinator.Parser[methods.Method] {
		return combinator.Map(combinator.Literal(token), func(string) methods.Method {
			return m
		})
	}

	return combinator.Choice(
		lit("GET", methods.GET),
		lit("POST", methods.POST),
		lit("HEAD", methods.HEAD),
		lit("PUT", methods.PUT),
		lit("DELETE", methods.DELETE),
		lit("OPTIONS", methods.OPTIONS),
		lit("TRACE", methods.TRACE),
		lit("CONNECT", methods.CONNECT),
		lit("PATCH", methods.PATCH),
	)
}

// URI takes everything up to the first whitespace byte. An empty match fails
// with InvalidURI, so a doubled separator space in the request line is caught
// here rather than silently swallowed.
func URI() combinator.Parser[string] {
	return func(input string) (string, string, error) {
		i := 0
		for i < len(input) && !combinator.IsSpace(input[i]) {
			i++
		}

		if i == 0 {
			return "", input, combinator.InvalidURI
		}

		return input[:i], input[i:], nil
	}
}

// Version matches the HTTP/1.0 or HTTP/1.1 literal.
func Version() combinator.Parser[proto.Proto] {
	lit := func(token string, p proto.Proto) combinator.Parser[proto.Proto] {
		return combinator.Map(combinator.Literal(token), func(string) proto.Proto {
			return p
		})
	}

	return combinator.Choice(
		lit("HTTP/1.0", proto.HTTP10),
		lit("HTTP/1.1", proto.HTTP11),
	)
}

// RequestLine matches `method SP uri SP version CRLF`, with exactly one space
// between the tokens. The first failing sub-parser's error is propagated as-is.
func RequestLine() combinator.Parser[http.RequestLine] {
	sp := combinator.Literal(" ")
	crlf := combinator.Literal("\r\n")

	return func(input string) (http.RequestLine, string, error) {
		m, rest, err := Method()(input)
		if err != nil {
			return http.RequestLine{}, input, err
		}

		if _, rest, err = sp(rest); err != nil {
			return http.RequestLine{}, input, err
		}

		uri, rest, err := URI()(rest)
		if err != nil {
			return http.RequestLine{}, input, err
		}

		if _, rest, err = sp(rest); err != nil {
			return http.RequestLine{}, input, err
		}

		version, rest, err := Version()(rest)
		if err != nil {
			return http.RequestLine{}, input, err
		}

		if _, rest, err = crlf(rest); err != nil {
			return http.RequestLine{}, input, err
		}

		return http.RequestLine{Method: m, URI: uri, Proto: version}, rest, nil
	}
}

// Header matches a single `name: value CRLF` field line. The name is everything
// before the first colon; leading whitespace in the value is skipped, except a
// CR, so an empty value terminated right away by CRLF stays empty.
func Header() combinator.Parser[kv.Pair] {
	return func(input string) (kv.Pair, string, error) {
		name, rest, err := combinator.TakeUntil(':')(input)
		if err != nil {
			return kv.Pair{}, input, combinator.InvalidHeader
		}

		// skip the colon itself
		rest = rest[1:]

		i := 0
		for i < len(rest) && combinator.IsSpace(rest[i]) && rest[i] != '\r' {
			i++
		}
		rest = rest[i:]

		end := strings.Index(rest, "\r\n")
		if end == -1 {
			return kv.Pair{}, input, combinator.InvalidHeader
		}

		return kv.Pair{Key: name, Value: rest[:end]}, rest[end+2:], nil
	}
}

// Headers matches the whole header block, up to and including the empty CRLF
// line terminating it. Duplicate names overwrite the earlier value: the last
// write wins.
func Headers() combinator.Parser[http.Headers] {
	return func(input string) (http.Headers, string, error) {
		headers := kv.NewPrealloc(preallocHeaders)

		for {
			if strings.HasPrefix(input, "\r\n") {
				return headers, input[2:], nil
			}

			pair, rest, err := Header()(input)
			if err != nil {
				return nil, input, err
			}

			headers.Set(pair.Key, pair.Value)
			input = rest
		}
	}
}

// Parse parses a complete request held in raw: request line, header block, and
// everything past the header block verbatim as the body. The body is a view
// into raw, not a copy, and it is not checked against Content-Length.
func Parse(raw []byte) (*http.Request, error) {
	line, rest, err := RequestLine()(uf.B2S(raw))
	if err != nil {
		return nil, err
	}

	headers, rest, err := Headers()(rest)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(line, headers, uf.S2B(rest)), nil
}
