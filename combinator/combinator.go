// Package combinator implements a small parser-combinator engine. A parser is a
// pure function over an immutable string view; combinators build bigger parsers
// out of smaller ones. The engine knows nothing about HTTP.
package combinator

import "strings"

// Parser consumes a prefix of input and returns the parsed value along with the
// unconsumed rest. On failure the returned rest is the original input: a failed
// parser never consumes, so the caller is free to retry an alternative against
// the very same view (Choice relies on this).
type Parser[T any] func(input string) (value T, rest string, err error)

// Pair is the product of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// OneChar consumes exactly one byte. Empty input fails with IncompleteRequest,
// as a single byte of anything would have succeeded.
func OneChar() Parser[byte] {
	return func(input string) (byte, string, error) {
		if len(input) == 0 {
			return 0, input, IncompleteRequest
		}

		return input[0], input[1:], nil
	}
}

// Satisfy consumes one byte if it passes the predicate, otherwise fails with
// MalformedRequest without consuming anything.
func Satisfy(predicate func(byte) bool) Parser[byte] {
	return func(input string) (byte, string, error) {
		c, rest, err := OneChar()(input)
		if err != nil {
			return 0, input, err
		}

		if !predicate(c) {
			return 0, input, MalformedRequest
		}

		return c, rest, nil
	}
}

// Literal succeeds iff the input starts with target, byte-for-byte, and consumes
// exactly len(target) bytes.
func Literal(target string) Parser[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, target) {
			return "", input, MalformedRequest
		}

		return target, input[len(target):], nil
	}
}

// Sequence runs pa, then pb on the remainder. Either failure is propagated
// unchanged.
func Sequence[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (Pair[A, B], string, error) {
		a, rest, err := pa(input)
		if err != nil {
			return Pair[A, B]{}, input, err
		}

		b, rest, err := pb(rest)
		if err != nil {
			return Pair[A, B]{}, input, err
		}

		return Pair[A, B]{First: a, Second: b}, rest, nil
	}
}

// Choice tries each parser in the given order against the same original input
// and returns the first success. Exhausting all alternatives fails with
// MalformedRequest. Order is a meaningful tie-break for overlapping grammars:
// list the more specific alternative first.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		for _, p := range parsers {
			value, rest, err := p(input)
			if err == nil {
				return value, rest, nil
			}
		}

		var none T

		return none, input, MalformedRequest
	}
}

// Map transforms a successful value with f, leaving errors untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (B, string, error) {
		a, rest, err := p(input)
		if err != nil {
			var none B

			return none, input, err
		}

		return f(a), rest, nil
	}
}

// Many applies p until it fails and returns all collected values, possibly none.
// It never fails itself.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var values []T

		for {
			value, rest, err := p(input)
			if err != nil {
				return values, input, nil
			}

			values = append(values, value)
			input = rest
		}
	}
}

// Many1 is Many requiring at least one success. Zero successes fail with
// whatever error the first application produced.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		first, rest, err := p(input)
		if err != nil {
			return nil, input, err
		}

		more, rest, _ := Many(p)(rest)

		return append([]T{first}, more...), rest, nil
	}
}

// Spaces consumes a maximal, possibly empty run of whitespace bytes and yields
// the consumed run. It always succeeds.
func Spaces() Parser[string] {
	return func(input string) (string, string, error) {
		i := 0
		for i < len(input) && IsSpace(input[i]) {
			i++
		}

		return input[:i], input[i:], nil
	}
}

// TakeUntil splits the input at the first occurrence of the delimiter. The
// delimiter itself is not consumed: the rest starts right at it. If the
// delimiter never occurs, it fails with IncompleteRequest, as it may still
// arrive with more bytes.
func TakeUntil(delimiter byte) Parser[string] {
	return func(input string) (string, string, error) {
		pos := strings.IndexByte(input, delimiter)
		if pos == -1 {
			return "", input, IncompleteRequest
		}

		return input[:pos], input[pos:], nil
	}
}

// IsSpace reports whether c is one of the whitespace bytes the engine
// recognizes: space, horizontal tab, CR or LF.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
