package routes

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RestParam is the parameter name holding the remainder matched by a
// trailing "*" or ":name*" segment.
const RestParam = "*"

var (
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrMissingParam   = errors.New("missing route parameter")
)

type segmentKind uint8

const (
	static      segmentKind = iota // literal text
	param                          // :name, exactly one segment
	optional                       // :name?, zero or one segment
	zeroOrMore                     // :name*, one segment plus any remainder
	wildcard                       // *, any remainder
)

type segment struct {
	kind  segmentKind
	value string
}

// Pattern is a parsed route pattern in the path syntax used by the route
// table: "/user/:userslug", "/chats/:roomid?", "/uid/:uid*", "/me/*".
// Modified segments (?, *) are only accepted in the last position.
type Pattern struct {
	raw      string
	segments []segment
}

// ParsePattern parses and validates a route pattern.
func ParsePattern(raw string) (Pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return Pattern{}, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, raw)
	}

	p := Pattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	parts := strings.Split(raw[1:], "/")
	names := make(map[string]bool, len(parts))

	for i, part := range parts {
		last := i == len(parts)-1
		seg, err := parseSegment(part)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, raw, err)
		}
		if seg.kind != static && seg.kind != param && !last {
			return Pattern{}, fmt.Errorf("%w: %q: %q must be the last segment", ErrInvalidPattern, raw, part)
		}
		if seg.kind != static && seg.kind != wildcard {
			if names[seg.value] {
				return Pattern{}, fmt.Errorf("%w: %q: duplicate parameter %q", ErrInvalidPattern, raw, seg.value)
			}
			names[seg.value] = true
		}
		p.segments = append(p.segments, seg)
	}

	return p, nil
}

func parseSegment(part string) (segment, error) {
	switch {
	case part == "":
		return segment{}, errors.New("empty segment")
	case part == "*":
		return segment{kind: wildcard}, nil
	case strings.HasPrefix(part, ":"):
		name := part[1:]
		kind := param
		switch {
		case strings.HasSuffix(name, "?"):
			kind, name = optional, strings.TrimSuffix(name, "?")
		case strings.HasSuffix(name, "*"):
			kind, name = zeroOrMore, strings.TrimSuffix(name, "*")
		}
		if !validName(name) {
			return segment{}, fmt.Errorf("invalid parameter name %q", name)
		}
		return segment{kind: kind, value: name}, nil
	case strings.ContainsAny(part, "{}*:"):
		return segment{}, fmt.Errorf("unsupported character in %q", part)
	default:
		return segment{kind: static, value: part}, nil
	}
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// String returns the pattern as written.
func (p Pattern) String() string {
	return p.raw
}

// Params lists the pattern's parameter names in order.
func (p Pattern) Params() []string {
	var names []string
	for _, s := range p.segments {
		if s.kind != static && s.kind != wildcard {
			names = append(names, s.value)
		}
	}
	return names
}

// Expand translates the pattern into the chi patterns that together match
// the same paths. Optional and zero-or-more segments need two chi patterns.
func (p Pattern) Expand() []string {
	var b strings.Builder
	var tail segment
	hasTail := false

	for _, s := range p.segments {
		switch s.kind {
		case static:
			b.WriteString("/" + s.value)
		case param:
			b.WriteString("/{" + s.value + "}")
		default:
			tail, hasTail = s, true
		}
	}

	base := b.String()
	if !hasTail {
		return []string{orRoot(base)}
	}

	switch tail.kind {
	case optional:
		return []string{orRoot(base), base + "/{" + tail.value + "}"}
	case zeroOrMore:
		return []string{base + "/{" + tail.value + "}", base + "/{" + tail.value + "}/*"}
	default:
		return []string{base + "/*"}
	}
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// Expand parses raw and returns its chi patterns.
func Expand(raw string) ([]string, error) {
	p, err := ParsePattern(raw)
	if err != nil {
		return nil, err
	}
	return p.Expand(), nil
}

// Fill builds a concrete path from the pattern. Required parameters must be
// present in params; an optional parameter left empty is omitted. The
// remainder of a trailing "*" or ":name*" segment is read from
// params[RestParam] as already-escaped path text (see EscapedRest) and is
// appended unchanged. Parameter values are path-escaped.
func (p Pattern) Fill(params map[string]string) (string, error) {
	var b strings.Builder
	for _, s := range p.segments {
		switch s.kind {
		case static:
			b.WriteString("/" + s.value)
		case param, zeroOrMore:
			v := params[s.value]
			if v == "" {
				return "", fmt.Errorf("%w: %q in %q", ErrMissingParam, s.value, p.raw)
			}
			b.WriteString("/" + url.PathEscape(v))
		case optional:
			if v := params[s.value]; v != "" {
				b.WriteString("/" + url.PathEscape(v))
			}
		}
		if s.kind == zeroOrMore || s.kind == wildcard {
			if rest := strings.Trim(params[RestParam], "/"); rest != "" {
				b.WriteString("/" + rest)
			}
		}
	}
	return orRoot(b.String()), nil
}

// Path parses raw and fills it with params.
func Path(raw string, params map[string]string) (string, error) {
	p, err := ParsePattern(raw)
	if err != nil {
		return "", err
	}
	return p.Fill(params)
}

// Param returns the value of a named path parameter, or "" when the matched
// route has no such parameter (an omitted optional segment, for example).
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// EscapedRest returns Rest in escaped path form. chi matches against
// URL.RawPath when it is set and URL.Path otherwise, so the remainder is
// escaped here only in the second case.
func EscapedRest(r *http.Request) string {
	rest := Rest(r)
	if rest == "" || r.URL.RawPath != "" {
		return rest
	}
	parts := strings.Split(rest, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// Rest returns the remainder matched by a trailing "*" or ":name*" segment,
// without a leading slash. It is "" when nothing followed.
func Rest(r *http.Request) string {
	return chi.URLParam(r, RestParam)
}
