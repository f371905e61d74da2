package protocol

import (
	"strconv"
	"strings"

	"github.com/springdvs/spring-go/formats"
	"github.com/springdvs/spring-go/uri"
)

// MessageContent is the tagged payload of a Message. Exactly one variant
// exists per content shape the grammar admits; dispatch is an exhaustive
// type switch on the tag.
type MessageContent interface {
	isMessageContent()
	String() string
}

// ContentRegistration is the register payload:
// double ";" role ";" service ";" token.
type ContentRegistration struct {
	Double  formats.NodeDouble
	Role    formats.NodeRole
	Service formats.NodeService
	Token   string
}

// ContentNodeSingle is a bare springname payload.
type ContentNodeSingle struct {
	Single formats.NodeSingle
}

// ContentInfoRequest is the info payload: a network listing request or a
// node property query.
type ContentInfoRequest struct {
	Info InfoContent
}

// ContentNodeProperty addresses one property of one node, optionally with a
// value to set. It is the update payload and the node arm of info.
type ContentNodeProperty struct {
	Spring   string
	Property NodeProperty
}

// ContentURI is a resolve or service payload.
type ContentURI struct {
	URI *uri.URI
}

// ContentResponse is the response form: code, declared content length and a
// tagged response payload.
//
// Len holds whatever length the peer declared when the message was parsed;
// rendering recomputes it from the content and never consults the stored
// value.
type ContentResponse struct {
	Code    Response
	Len     uint32
	Content ResponseContent
}

func (ContentRegistration) isMessageContent() {}
func (ContentNodeSingle) isMessageContent()   {}
func (ContentInfoRequest) isMessageContent()  {}
func (ContentNodeProperty) isMessageContent() {}
func (ContentURI) isMessageContent()          {}
func (ContentResponse) isMessageContent()     {}

func (c ContentRegistration) String() string {
	return c.Double.String() + ";" + c.Role.Token() + ";" + c.Service.Token() + ";" + c.Token
}

func (c ContentNodeSingle) String() string { return c.Single.String() }

func (c ContentInfoRequest) String() string { return c.Info.String() }

func (c ContentNodeProperty) String() string {
	return c.Spring + " " + c.Property.String()
}

func (c ContentURI) String() string { return c.URI.String() }

// String renders the response: the bare code for empty content, otherwise
// code, recomputed length, payload tag and payload.
func (c ContentResponse) String() string {
	body := c.Content.render()
	if body == "" {
		return c.Code.Code()
	}
	return c.Code.Code() + " " + strconv.Itoa(len(body)) + " " + body
}

// InfoContent is the tagged union inside an info request.
type InfoContent interface {
	isInfoContent()
	String() string
}

// InfoNetwork requests the network listing.
type InfoNetwork struct{}

// InfoNode requests a property of a named node.
type InfoNode struct {
	Property ContentNodeProperty
}

func (InfoNetwork) isInfoContent() {}
func (InfoNode) isInfoContent()    {}

func (InfoNetwork) String() string { return "network" }

func (i InfoNode) String() string { return "node " + i.Property.String() }

// ResponseContent is the tagged union inside a response.
type ResponseContent interface {
	isResponseContent()
	// render emits "tag SP payload", or "" for empty content.
	render() string
}

// ResponseEmpty is a response with no payload; it renders as the bare code.
type ResponseEmpty struct{}

// ContentNetwork is a network listing: quad entries joined by semicolons,
// every entry terminated by one.
type ContentNetwork struct {
	Nodes []formats.NodeQuad
}

// ContentNodeInfo is a keyed node description payload.
type ContentNodeInfo struct {
	Info formats.NodeInfo
}

// ContentServiceText is an opaque service-layer payload.
type ContentServiceText struct {
	Text string
}

func (ResponseEmpty) isResponseContent()      {}
func (ContentNetwork) isResponseContent()     {}
func (ContentNodeInfo) isResponseContent()    {}
func (ContentServiceText) isResponseContent() {}

func (ResponseEmpty) render() string { return "" }

func (c ContentNetwork) render() string { return "network " + c.String() }

func (c ContentNodeInfo) render() string { return "node " + c.Info.String() }

func (c ContentServiceText) render() string { return "service/text " + c.Text }

// String renders the listing with its trailing semicolon.
func (c ContentNetwork) String() string {
	var b strings.Builder
	for _, q := range c.Nodes {
		b.WriteString(q.String())
		b.WriteByte(';')
	}
	return b.String()
}

func (c ContentNodeInfo) String() string { return c.Info.String() }

// ParseContentNetwork parses a semicolon-separated quad list. Empty elements
// (including the one after the conventional trailing semicolon) are skipped;
// a malformed entry fails the whole listing.
func ParseContentNetwork(s string) (ContentNetwork, error) {
	parts := strings.Split(s, ";")
	nodes := make([]formats.NodeQuad, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		q, err := formats.ParseNodeQuad(p)
		if err != nil {
			return ContentNetwork{}, err
		}
		nodes = append(nodes, q)
	}
	return ContentNetwork{Nodes: nodes}, nil
}

// ParseContentResponse parses a full response buffer: a code, then
// optionally a declared length, a payload tag and the payload.
func ParseContentResponse(s string) (ContentResponse, error) {
	codeTok := s
	rest := ""
	if i := strings.IndexByte(s, ' '); i >= 0 {
		codeTok = s[:i]
		rest = s[i+1:]
	}

	n, err := strconv.ParseUint(codeTok, 10, 32)
	if err != nil {
		return ContentResponse{}, formats.InvalidContentFormat
	}
	code, ok := ResponseFromCode(uint32(n))
	if !ok {
		return ContentResponse{}, formats.InvalidContentFormat
	}

	if rest == "" {
		return ContentResponse{Code: code, Content: ResponseEmpty{}}, nil
	}

	lenTok := rest
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		lenTok = rest[:i]
		rest = rest[i+1:]
	} else {
		rest = ""
	}
	declared, err := strconv.ParseUint(lenTok, 10, 32)
	if err != nil {
		return ContentResponse{}, formats.InvalidContentFormat
	}

	tag := rest
	payload := ""
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		tag = rest[:i]
		payload = rest[i+1:]
	}
	if payload == "" {
		return ContentResponse{}, formats.InvalidContentFormat
	}

	var content ResponseContent
	switch tag {
	case "network":
		nw, err := ParseContentNetwork(payload)
		if err != nil {
			return ContentResponse{}, err
		}
		content = nw
	case "node":
		info, err := formats.ParseNodeInfo(payload)
		if err != nil {
			return ContentResponse{}, err
		}
		content = ContentNodeInfo{Info: info}
	case "service/text":
		content = ContentServiceText{Text: payload}
	default:
		return ContentResponse{}, formats.InvalidContentFormat
	}

	return ContentResponse{
		Code:    code,
		Len:     uint32(declared),
		Content: content,
	}, nil
}
