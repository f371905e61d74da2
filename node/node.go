// Package node holds the node aggregate: the in-memory shape that every
// wire form of node identity converts to and from.
//
// A node is assembled either directly from its fields or by parsing any of
// the five text forms; fields the source form does not carry stay at their
// defaults. Exports run the other way: a node renders to a form only when
// every field that form requires is populated.
//
// One wire-format quirk is preserved deliberately: the hostname field may
// carry a resource suffix ("host/some/path"), and construction splits it at
// the first slash into hostname and resource.
package node

import (
	"strings"

	"github.com/springdvs/spring-go/formats"
	"github.com/springdvs/spring-go/protocol"
)

// Node is the aggregate entity a netspace stores and the protocol layer
// exchanges.
type Node struct {
	springname string
	hostname   string
	address    string

	service formats.NodeService
	state   formats.NodeState
	role    formats.NodeRole

	resource string
	key      string
}

// New builds a node from explicit fields. A slash in host splits it into
// hostname and resource, with the leading slash stripped.
func New(spring, host, address string, service formats.NodeService, state formats.NodeState, role formats.NodeRole) *Node {
	hostname := host
	resource := ""
	if i := strings.IndexByte(host, '/'); i >= 0 {
		hostname = host[:i]
		resource = host[i+1:]
	}
	return &Node{
		springname: spring,
		hostname:   hostname,
		address:    address,
		service:    service,
		state:      state,
		role:       role,
		resource:   resource,
	}
}

// Parse dispatches on the shape of s: a colon anywhere selects the keyed
// info form, otherwise the comma arity selects single, double, triple or
// quad. Anything else is a conversion error.
func Parse(s string) (*Node, error) {
	if strings.ContainsRune(s, ':') {
		info, err := formats.ParseNodeInfo(s)
		if err != nil {
			return nil, err
		}
		return New(info.Spring, info.Host, info.Address, info.Service, info.State, info.Role), nil
	}

	switch len(strings.Split(s, ",")) {
	case 1:
		t, err := formats.ParseNodeSingle(s)
		if err != nil {
			return nil, err
		}
		return New(t.Spring, "", "", formats.ServiceUndefined, formats.StateUnspecified, formats.RoleUndefined), nil
	case 2:
		t, err := formats.ParseNodeDouble(s)
		if err != nil {
			return nil, err
		}
		return New(t.Spring, t.Host, "", formats.ServiceUndefined, formats.StateUnspecified, formats.RoleUndefined), nil
	case 3:
		t, err := formats.ParseNodeTriple(s)
		if err != nil {
			return nil, err
		}
		return New(t.Spring, t.Host, t.Address, formats.ServiceUndefined, formats.StateUnspecified, formats.RoleUndefined), nil
	case 4:
		t, err := formats.ParseNodeQuad(s)
		if err != nil {
			return nil, err
		}
		return New(t.Spring, t.Host, t.Address, t.Service, formats.StateUnspecified, formats.RoleUndefined), nil
	}
	return nil, formats.ConversionError
}

// ParseList parses a semicolon-separated node list leniently: entries that
// do not parse are skipped rather than failing the list. Resolvers use this
// on network listings assembled by many peers.
func ParseList(list string) []*Node {
	var nodes []*Node
	for _, entry := range strings.Split(list, ";") {
		if entry == "" {
			continue
		}
		n, err := Parse(entry)
		if err != nil {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func (n *Node) SpringName() string { return n.springname }

func (n *Node) HostName() string { return n.hostname }

func (n *Node) Address() string { return n.address }

func (n *Node) Service() formats.NodeService { return n.service }

func (n *Node) State() formats.NodeState { return n.state }

func (n *Node) Role() formats.NodeRole { return n.role }

// Resource is the path suffix split off the hostname at construction.
func (n *Node) Resource() string { return n.resource }

// Key is the opaque credential the node registered with.
func (n *Node) Key() string { return n.key }

func (n *Node) UpdateService(service formats.NodeService) { n.service = service }

func (n *Node) UpdateState(state formats.NodeState) { n.state = state }

func (n *Node) UpdateRole(role formats.NodeRole) { n.role = role }

func (n *Node) UpdateKey(key string) { n.key = key }

// Single exports the one-field form; absent when the springname is empty.
func (n *Node) Single() (formats.NodeSingle, bool) {
	if n.springname == "" {
		return formats.NodeSingle{}, false
	}
	return formats.NodeSingle{Spring: n.springname}, true
}

// Double exports the two-field form; absent unless springname and hostname
// are both populated.
func (n *Node) Double() (formats.NodeDouble, bool) {
	if n.springname == "" || n.hostname == "" {
		return formats.NodeDouble{}, false
	}
	return formats.NodeDouble{Spring: n.springname, Host: n.hostname}, true
}

// Triple exports the three-field form; absent unless springname, hostname
// and address are populated.
func (n *Node) Triple() (formats.NodeTriple, bool) {
	if n.springname == "" || n.hostname == "" || n.address == "" {
		return formats.NodeTriple{}, false
	}
	return formats.NodeTriple{Spring: n.springname, Host: n.hostname, Address: n.address}, true
}

// Quad exports the four-field form; absent unless springname, hostname,
// address and service are populated.
func (n *Node) Quad() (formats.NodeQuad, bool) {
	if n.springname == "" || n.hostname == "" || n.address == "" || n.service == formats.ServiceUndefined {
		return formats.NodeQuad{}, false
	}
	return formats.NodeQuad{
		Spring:  n.springname,
		Host:    n.hostname,
		Address: n.address,
		Service: n.service,
	}, true
}

// Info exports the keyed form; absent unless springname, hostname and
// address are populated. Enum fields render only when defined.
func (n *Node) Info() (formats.NodeInfo, bool) {
	if n.springname == "" || n.hostname == "" || n.address == "" {
		return formats.NodeInfo{}, false
	}
	return formats.NodeInfo{
		Spring:  n.springname,
		Host:    n.hostname,
		Address: n.address,
		Service: n.service,
		State:   n.state,
		Role:    n.role,
	}, true
}

// InfoProperty exports a keyed form carrying only the requested property,
// or every field for PropertyAll.
func (n *Node) InfoProperty(prop protocol.NodeProperty) formats.NodeInfo {
	switch prop.(type) {
	case protocol.PropertyAll:
		return formats.NodeInfo{
			Spring:  n.springname,
			Host:    n.hostname,
			Address: n.address,
			Service: n.service,
			State:   n.state,
			Role:    n.role,
		}
	case protocol.PropertyHostname:
		return formats.NodeInfo{Spring: n.springname, Host: n.hostname}
	case protocol.PropertyAddress:
		return formats.NodeInfo{Spring: n.springname, Address: n.address}
	case protocol.PropertyState:
		return formats.NodeInfo{Spring: n.springname, State: n.state}
	case protocol.PropertyService:
		return formats.NodeInfo{Spring: n.springname, Service: n.service}
	case protocol.PropertyRole:
		return formats.NodeInfo{Spring: n.springname, Role: n.role}
	}
	return formats.NodeInfo{Spring: n.springname}
}
