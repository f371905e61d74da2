package protocol

import "strconv"

// CmdType identifies the top-level form of a message. Requests carry one of
// the six command tokens; a purely numeric first token marks a response.
type CmdType int

const (
	CmdResponse CmdType = iota
	CmdRegister
	CmdUnregister
	CmdInfo
	CmdUpdate
	CmdResolve
	CmdService
)

// CmdTypeFromToken maps a wire token to its command. CmdResponse has no
// token; it is recognised by the numeric form of the first token instead.
func CmdTypeFromToken(s string) (CmdType, bool) {
	switch s {
	case "register":
		return CmdRegister, true
	case "unregister":
		return CmdUnregister, true
	case "info":
		return CmdInfo, true
	case "update":
		return CmdUpdate, true
	case "resolve":
		return CmdResolve, true
	case "service":
		return CmdService, true
	}
	return CmdResponse, false
}

// Token returns the wire token for the command, or "" for CmdResponse.
func (c CmdType) Token() string {
	switch c {
	case CmdRegister:
		return "register"
	case CmdUnregister:
		return "unregister"
	case CmdInfo:
		return "info"
	case CmdUpdate:
		return "update"
	case CmdResolve:
		return "resolve"
	case CmdService:
		return "service"
	}
	return ""
}

func (c CmdType) String() string { return c.Token() }

// Response is a protocol response code. The numeric values are part of the
// wire format and never change.
type Response int

const (
	NetspaceError       Response = 101
	NetspaceDuplication Response = 102
	NetworkError        Response = 103
	MalformedContent    Response = 104
	Ok                  Response = 200
)

// ResponseFromCode maps a decimal code to its response value.
func ResponseFromCode(code uint32) (Response, bool) {
	switch Response(code) {
	case NetspaceError, NetspaceDuplication, NetworkError, MalformedContent, Ok:
		return Response(code), true
	}
	return 0, false
}

// Code returns the fixed decimal string for the response.
func (r Response) Code() string { return strconv.Itoa(int(r)) }

func (r Response) String() string { return r.Code() }
