// Package transport wraps protocol messages in their HTTP/1.x envelope and
// carries them over a deliberately minimal single-shot TCP client.
//
// The envelope is fixed: requests are a plain-text POST with an exact
// Content-Length; responses are a 200 with Connection: Closed. Unwrapping
// splits at the first blank line and hands the trimmed body to the protocol
// parser. The one piece of caller state this layer touches is the remote
// address of an incoming request, which is rewritten when a proxy recorded
// the real client in a forwarding header.
//
// The outbound client does one request and reads one response — no
// keep-alive, no redirects, no retries, no timeouts of its own. Callers own
// deadlines through the context; anything smarter belongs a layer up.
package transport

import (
	"fmt"
	"net"
	"strings"
	"unicode/utf8"

	"github.com/springdvs/spring-go/protocol"
)

// DefaultPath is the request path used when none is configured.
const DefaultPath = "spring"

const (
	userAgent = "SpringDVS/0.3"
	server    = "SpringDVS/0.3"
)

// WrapRequest emits the HTTP request envelope around body. An empty path
// falls back to DefaultPath.
func WrapRequest(body []byte, host, path string) []byte {
	if path == "" {
		path = DefaultPath
	}
	header := fmt.Sprintf(
		"POST /%s HTTP/1.0\r\nHost: %s\r\nUser-Agent: %s\r\nContent-Type: text/plain\r\nContent-Length: %d\r\n\r\n",
		path, host, userAgent, len(body))
	return append([]byte(header), body...)
}

// WrapResponse emits the HTTP response envelope around body.
func WrapResponse(body []byte) []byte {
	header := fmt.Sprintf(
		"HTTP/1.1 200 OK\r\nServer: %s\r\nContent-Type: text/plain\r\nConnection: Closed\r\nContent-Length: %d\r\n\r\n",
		server, len(body))
	return append([]byte(header), body...)
}

// UnwrapRequest strips the HTTP envelope from an incoming request and
// parses the body as a protocol message.
//
// remote is the caller's socket address as the listener saw it. When the
// headers carry a forwarding header recorded by a proxy, the returned
// address is rewritten to the forwarded client IP on port 80; otherwise
// remote comes back unchanged. This is the only caller state the transport
// layer mutates.
func UnwrapRequest(b []byte, remote net.Addr) (*protocol.Message, net.Addr, error) {
	if !utf8.Valid(b) {
		return nil, remote, ErrInvalidBytes
	}
	head, body, found := strings.Cut(string(b), "\r\n\r\n")
	if !found {
		return nil, remote, ErrInvalidFormat
	}

	if ip, ok := forwardedFor(head); ok {
		remote = &net.TCPAddr{IP: ip, Port: 80}
	}

	msg, err := protocol.ParseMessage([]byte(strings.TrimSpace(body)))
	if err != nil {
		return nil, remote, fmt.Errorf("%w: %v", ErrInvalidConversion, err)
	}
	return msg, remote, nil
}

// UnwrapResponse strips the HTTP envelope from a response buffer, returning
// the body with surrounding whitespace trimmed.
func UnwrapResponse(b []byte) ([]byte, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidBytes
	}
	_, body, found := strings.Cut(string(b), "\r\n\r\n")
	if !found {
		return nil, ErrInvalidFormat
	}
	return []byte(strings.TrimSpace(body)), nil
}
