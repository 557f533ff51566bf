package router

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// PathPattern is a route pattern compiled into a matcher plus the ordered list
// of parameter names it emits. Compilation happens once, at registration time;
// matching is pure and safe for concurrent use.
//
// Pattern syntax:
//   - `:name` matches one or more bytes excluding '/' and captures them as name
//   - `*name` matches the remainder of the path, including '/', and terminates
//     the pattern; any text after it is ignored
//   - everything else matches byte-for-byte
//
// Only '.', '?' and '+' are escaped in literal segments. Other regexp
// metacharacters used literally in a pattern will be misinterpreted by the
// underlying matcher.
type PathPattern struct {
	pattern string
	re      *regexp.Regexp
	params  []string
}

// CompilePattern compiles the pattern string. The error is only ever non-nil
// for patterns whose literal text breaks the underlying matcher.
func CompilePattern(pattern string) (*PathPattern, error) {
	var (
		expr   strings.Builder
		params []string
	)

	expr.WriteByte('^')

	segments := strings.Split(pattern, "/")
	for i, segment := range segments {
		if i > 0 {
			expr.WriteByte('/')
		}

		if strings.HasPrefix(segment, "*") {
			// the wildcard swallows the rest of the path, so whatever follows
			// it in the pattern is dead text
			params = append(params, segment[1:])
			expr.WriteString("(.*)")
			break
		}

		if strings.HasPrefix(segment, ":") {
			params = append(params, segment[1:])
			expr.WriteString("([^/]+)")
			continue
		}

		writeLiteral(&expr, segment)
	}

	expr.WriteByte('$')

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, errors.Wrapf(err, "compile route pattern %q", pattern)
	}

	return &PathPattern{
		pattern: pattern,
		re:      re,
		params:  params,
	}, nil
}

// MustCompilePattern is CompilePattern, panicking on error.
func MustCompilePattern(pattern string) *PathPattern {
	compiled, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}

	return compiled
}

// Match matches the full path against the pattern. It never matches partially:
// either the whole path fits and the captured parameters are returned, or
// ok is false.
func (p *PathPattern) Match(path string) (params map[string]string, ok bool) {
	groups := p.re.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}

	params = make(map[string]string, len(p.params))
	for i, name := range p.params {
		if i+1 < len(groups) {
			params[name] = groups[i+1]
		}
	}

	return params, true
}

// Pattern returns the original pattern string.
func (p *PathPattern) Pattern() string {
	return p.pattern
}

func writeLiteral(expr *strings.Builder, segment string) {
	for i := 0; i < len(segment); i++ {
		switch c := segment[i]; c {
		case '.', '?', '+':
			expr.WriteByte('\\')
			expr.WriteByte(c)
		default:
			expr.WriteByte(c)
		}
	}
}
