// Package protocol implements the text request/response grammar spoken
// between spring nodes.
//
// A message is a single whole buffer: a command token followed by its
// payload, or a response whose first token is the numeric code. Parsing is
// strict; a message either constructs fully valid or fails with the
// formats.ParseFailure kind of the first violated rule. Rendering mirrors
// the grammar exactly, so any message the parser accepts round-trips:
//
//	m, _ := protocol.ParseMessage([]byte("update spring state enabled"))
//	m.String() // "update spring state enabled"
//
// The content of each command is a tagged union; consumers dispatch on the
// command and then type-switch on the content variant.
package protocol

import (
	"strings"
	"unicode/utf8"

	"github.com/springdvs/spring-go/formats"
	"github.com/springdvs/spring-go/uri"
)

// Message is the top-level protocol unit.
type Message struct {
	Cmd     CmdType
	Content MessageContent
}

// ParseMessage parses one whole message buffer.
//
// The first whitespace-separated token picks the form: a purely numeric
// token makes the buffer a response; anything else must be a known command
// whose payload is the remainder of the buffer after one space.
func ParseMessage(b []byte) (*Message, error) {
	if !utf8.Valid(b) {
		return nil, formats.ConversionError
	}
	s := string(b)
	if s == "" {
		return nil, formats.ConversionError
	}

	first := s
	payload := ""
	if i := strings.IndexByte(s, ' '); i >= 0 {
		first = s[:i]
		payload = s[i+1:]
	}

	if numeric(first) {
		cr, err := ParseContentResponse(s)
		if err != nil {
			return nil, err
		}
		return &Message{Cmd: CmdResponse, Content: cr}, nil
	}

	cmd, ok := CmdTypeFromToken(strings.ToLower(first))
	if !ok {
		return nil, formats.InvalidCommand
	}
	if payload == "" {
		return nil, formats.InvalidContentFormat
	}

	var content MessageContent
	var err error
	switch cmd {
	case CmdRegister:
		content, err = parseRegistration(payload)
	case CmdUnregister:
		content, err = parseNodeSingle(payload)
	case CmdInfo:
		content, err = parseInfoRequest(payload)
	case CmdUpdate:
		content, err = parseNodeProperty(payload)
	case CmdResolve, CmdService:
		content, err = parseURI(payload)
	}
	if err != nil {
		return nil, err
	}
	return &Message{Cmd: cmd, Content: content}, nil
}

// String renders the message in its canonical wire form.
func (m *Message) String() string {
	if m.Cmd == CmdResponse {
		return m.Content.String()
	}
	return m.Cmd.Token() + " " + m.Content.String()
}

// Bytes renders the message for the wire.
func (m *Message) Bytes() []byte { return []byte(m.String()) }

// numeric reports whether s is a non-empty run of ASCII digits.
func numeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseRegistration reads double ";" role ";" service ";" token. The token
// is opaque and may itself contain semicolons; everything after the third
// separator belongs to it.
func parseRegistration(payload string) (MessageContent, error) {
	parts := strings.Split(payload, ";")
	if len(parts) < 4 {
		return nil, formats.InvalidContentFormat
	}
	token := strings.Join(parts[3:], ";")
	if parts[1] == "" || parts[2] == "" || token == "" {
		return nil, formats.InvalidContentFormat
	}

	double, err := formats.ParseNodeDouble(parts[0])
	if err != nil {
		return nil, err
	}
	role, ok := formats.NodeRoleFromToken(strings.ToLower(parts[1]))
	if !ok {
		return nil, formats.InvalidRole
	}
	service, ok := formats.NodeServiceFromToken(strings.ToLower(parts[2]))
	if !ok {
		return nil, formats.InvalidService
	}

	return ContentRegistration{
		Double:  double,
		Role:    role,
		Service: service,
		Token:   token,
	}, nil
}

func parseNodeSingle(payload string) (MessageContent, error) {
	single, err := formats.ParseNodeSingle(payload)
	if err != nil {
		return nil, err
	}
	return ContentNodeSingle{Single: single}, nil
}

// parseInfoRequest reads "network" or "node" followed by a property query.
func parseInfoRequest(payload string) (MessageContent, error) {
	first := payload
	rest := ""
	if i := strings.IndexByte(payload, ' '); i >= 0 {
		first = payload[:i]
		rest = payload[i+1:]
	}

	switch strings.ToLower(first) {
	case "network":
		if rest != "" {
			return nil, formats.InvalidContentFormat
		}
		return ContentInfoRequest{Info: InfoNetwork{}}, nil
	case "node":
		if rest == "" {
			return nil, formats.InvalidContentFormat
		}
		prop, err := parseNodeProperty(rest)
		if err != nil {
			return nil, err
		}
		return ContentInfoRequest{Info: InfoNode{Property: prop}}, nil
	}
	return nil, formats.InvalidContentFormat
}

func parseURI(payload string) (MessageContent, error) {
	u, err := uri.Parse(payload)
	if err != nil {
		return nil, formats.InvalidContentFormat
	}
	return ContentURI{URI: u}, nil
}
