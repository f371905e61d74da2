// Package uri parses and renders spring:// addresses.
//
// A spring URI names a route through the network followed by an optional
// resource path and query:
//
//	spring://cci.esusx.uk/album/2016?token=abc
//
// The authority is an ordered, dot-separated label list read left to right;
// the right-most label may be a geographic top-level code. Resource segments
// follow the authority, and everything after the first '?' is kept as the
// raw query string.
package uri

import (
	"errors"
	"strings"
)

// ErrInvalidFormat reports input that is not a spring URI at all: a missing
// or foreign scheme. Field-level problems do not exist at this layer; any
// label text is carried as-is.
var ErrInvalidFormat = errors.New("invalid uri format")

const scheme = "spring://"

// URI is a parsed spring address.
type URI struct {
	route []string
	gtn   string
	res   []string
	query string
}

// Parse strictly requires the spring:// scheme, then splits the remainder
// into authority labels, resource segments (empty segments dropped) and the
// raw query.
func Parse(s string) (*URI, error) {
	if !strings.HasPrefix(s, scheme) {
		return nil, ErrInvalidFormat
	}
	rest := s[len(scheme):]

	var query string
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		query = rest[i+1:]
		rest = rest[:i]
	}

	segments := strings.Split(rest, "/")
	res := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		res = append(res, seg)
	}

	route := strings.Split(segments[0], ".")
	gtn := ""
	if route[len(route)-1] == "uk" {
		gtn = "uk"
	}

	return &URI{route: route, gtn: gtn, res: res, query: query}, nil
}

// Route is the ordered label list of the authority.
func (u *URI) Route() []string { return u.route }

// GTN is the geographic top-level code, or "" when the route has none.
func (u *URI) GTN() string { return u.gtn }

// Res is the ordered resource path segments.
func (u *URI) Res() []string { return u.res }

// Query is the raw query string without its leading '?'.
func (u *URI) Query() string { return u.query }

// String reconstructs the URI. Parsing the result yields an equal URI.
func (u *URI) String() string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString(strings.Join(u.route, "."))
	for _, seg := range u.res {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(seg)
	}
	if len(u.query) > 0 {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	return b.String()
}

// QueryMap splits the query on '&', then each element at its first '='.
// Elements without '=' map to the empty string. A URI with no query yields
// nil.
func (u *URI) QueryMap() map[string]string {
	if u.query == "" {
		return nil
	}
	m := make(map[string]string)
	for _, kv := range strings.Split(u.query, "&") {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			m[kv[:i]] = kv[i+1:]
		} else {
			m[kv] = ""
		}
	}
	return m
}

// QueryParam looks a single key up in QueryMap.
func (u *URI) QueryParam(param string) (string, bool) {
	m := u.QueryMap()
	if m == nil {
		return "", false
	}
	v, ok := m[param]
	return v, ok
}
