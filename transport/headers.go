package transport

import (
	"net"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ExtractHeader finds a single header in a raw header block. The match is
// case-sensitive, lines with malformed field names are skipped, and the
// returned value is trimmed. The first occurrence wins.
func ExtractHeader(name, block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSuffix(line, "\r")
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		field := line[:i]
		if !httpguts.ValidHeaderFieldName(field) {
			continue
		}
		if field == name {
			return strings.TrimSpace(line[i+1:]), true
		}
	}
	return "", false
}

// ContentLength reads the Content-Length header out of a raw header block.
func ContentLength(block string) (int, bool) {
	v, ok := ExtractHeader("Content-Length", block)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// forwardedFor extracts the originating client IP a proxy recorded. The
// de-facto X-Forwarded-For is consulted first, then the standard Forwarded
// header's for= parameter, then X-Real-IP. An unparseable value is treated
// as absent.
func forwardedFor(block string) (net.IP, bool) {
	if v, ok := ExtractHeader("X-Forwarded-For", block); ok {
		// The header may chain proxies; the left-most entry is the client.
		first := strings.TrimSpace(strings.Split(v, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip, true
		}
	}
	if v, ok := ExtractHeader("Forwarded", block); ok {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ';' || r == ',' }) {
			part = strings.TrimSpace(part)
			if !strings.HasPrefix(strings.ToLower(part), "for=") {
				continue
			}
			val := strings.Trim(part[len("for="):], `"`)
			if ip := net.ParseIP(val); ip != nil {
				return ip, true
			}
		}
	}
	if v, ok := ExtractHeader("X-Real-IP", block); ok {
		if ip := net.ParseIP(strings.TrimSpace(v)); ip != nil {
			return ip, true
		}
	}
	return nil, false
}
