package transport

import (
	"bytes"
	"context"
	"io"
	"net"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/springdvs/spring-go/node"
	"github.com/springdvs/spring-go/protocol"
)

// readSize is how much the client pulls from the socket per read. The
// response head is expected to fit in the first read.
const readSize = 4096

// Dialer opens the TCP stream the client writes its one request to.
// net.Dialer satisfies it; tests plug in an in-memory pipe.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Outbound is the single-shot HTTP client.
//
// One call to Request opens a connection, writes the wrapped request, reads
// one response and closes the connection. Fixed-length bodies are read
// until the declared Content-Length is met; chunked bodies are reassembled
// chunk by chunk. Every I/O failure collapses to ErrNoResponse — the caller
// learns that no response arrived, the log learns why.
type Outbound struct {
	dialer Dialer
	port   int
	path   string
	log    *zap.Logger
}

// NewOutbound builds a client with the given options applied over the
// defaults: net.Dialer, port 80, DefaultPath, no logging.
func NewOutbound(opts ...Option) *Outbound {
	o := &Outbound{
		dialer: &net.Dialer{},
		port:   80,
		path:   DefaultPath,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Request sends body to address, wrapped for host, and returns the response
// body with headers stripped and trailing whitespace trimmed.
//
// The context's deadline, if any, is applied to the connection; there is no
// other timeout and no retry at this layer.
func (o *Outbound) Request(ctx context.Context, body []byte, address, host string) ([]byte, error) {
	target := net.JoinHostPort(address, strconv.Itoa(o.port))

	conn, err := o.dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		o.log.Debug("dial failed", zap.String("target", target), zap.Error(err))
		return nil, ErrNoResponse
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(WrapRequest(body, host, o.path)); err != nil {
		o.log.Debug("write failed", zap.String("target", target), zap.Error(err))
		return nil, ErrNoResponse
	}

	buf := make([]byte, readSize)
	n, err := conn.Read(buf)
	if n == 0 {
		o.log.Debug("empty response", zap.String("target", target), zap.Error(err))
		return nil, ErrNoResponse
	}
	buf = buf[:n]

	i := bytes.Index(buf, []byte("\r\n\r\n"))
	if i < 0 {
		o.log.Debug("response head incomplete", zap.String("target", target))
		return nil, ErrNoResponse
	}
	head := string(buf[:i])
	rest := buf[i+4:]

	if length, ok := ContentLength(head); ok {
		out, err := o.readFixed(conn, rest, length)
		if err != nil {
			o.log.Debug("fixed-length read failed", zap.String("target", target), zap.Error(err))
			return nil, ErrNoResponse
		}
		return bytes.TrimRight(out, " \t\r\n"), nil
	}

	if _, ok := ExtractHeader("Transfer-Encoding", head); ok {
		out, err := o.readChunked(conn, rest)
		if err != nil {
			o.log.Debug("chunked read failed", zap.String("target", target), zap.Error(err))
			return nil, ErrNoResponse
		}
		return bytes.TrimRight(out, " \t\r\n"), nil
	}

	o.log.Debug("response declared no body length", zap.String("target", target))
	return nil, ErrNoResponse
}

// RequestNode performs one message exchange with a node and parses the
// reply.
func (o *Outbound) RequestNode(ctx context.Context, msg *protocol.Message, n *node.Node) (*protocol.Message, error) {
	body, err := o.Request(ctx, msg.Bytes(), n.Address(), n.HostName())
	if err != nil {
		return nil, err
	}
	reply, err := protocol.ParseMessage(body)
	if err != nil {
		return nil, ErrInvalidConversion
	}
	return reply, nil
}

// readFixed completes a Content-Length body: whatever of it arrived with
// the head is kept, the remainder is read off the socket until the declared
// length is met.
func (o *Outbound) readFixed(conn net.Conn, got []byte, length int) ([]byte, error) {
	body := append([]byte(nil), got...)
	for len(body) < length {
		more, err := readMore(conn)
		if err != nil {
			return nil, err
		}
		body = append(body, more...)
	}
	if len(body) > length {
		body = body[:length]
	}
	return body, nil
}

// readChunked reassembles a Transfer-Encoding: chunked body. Each
// iteration needs a hex size line, that many bytes and the trailing CRLF;
// the loop reads further from the socket whenever the buffered data runs
// short. A zero-size chunk ends the body.
func (o *Outbound) readChunked(conn net.Conn, got []byte) ([]byte, error) {
	buf := append([]byte(nil), got...)
	var out []byte

	for {
		// Pull until the size line is complete.
		var line []byte
		for {
			if i := bytes.Index(buf, []byte("\r\n")); i >= 0 {
				line = buf[:i]
				buf = buf[i+2:]
				break
			}
			more, err := readMore(conn)
			if err != nil {
				return nil, err
			}
			buf = append(buf, more...)
		}

		size, err := strconv.ParseUint(strings.TrimSpace(string(line)), 16, 32)
		if err != nil {
			return nil, ErrInvalidConversion
		}
		if size == 0 {
			return out, nil
		}

		// Pull until the chunk and its trailing CRLF are buffered.
		for uint64(len(buf)) < size+2 {
			more, err := readMore(conn)
			if err != nil {
				return nil, err
			}
			buf = append(buf, more...)
		}

		out = append(out, buf[:size]...)
		buf = buf[size+2:]
	}
}

func readMore(conn net.Conn) ([]byte, error) {
	chunk := make([]byte, readSize)
	n, err := conn.Read(chunk)
	if n > 0 {
		return chunk[:n], nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}
