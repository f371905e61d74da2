package transport

import "errors"

// Transport failures. The transport layer is the only place lower-level
// errors (sockets, text decoding) are caught; they surface as one of these
// instead of leaking through.
var (
	// ErrInvalidBytes reports input that is not valid text.
	ErrInvalidBytes = errors.New("invalid bytes")

	// ErrInvalidFormat reports an envelope with no header/body split.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidConversion reports a body that did not convert to a
	// protocol message.
	ErrInvalidConversion = errors.New("invalid conversion")

	// ErrOutOfBounds reports a declared length that the actual content
	// cannot satisfy.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNoResponse is the single result every outbound I/O failure
	// collapses to: the request produced nothing usable. The client does
	// not retry.
	ErrNoResponse = errors.New("no response")
)
