package formats

// NodeRole is the position a node occupies in the network topology.
type NodeRole int

const (
	RoleUndefined NodeRole = iota
	RoleHub
	RoleOrg
	RoleHybrid
)

// NodeRoleFromToken maps a wire token to its role. The empty token and any
// unknown token report false; RoleUndefined has no token of its own.
func NodeRoleFromToken(s string) (NodeRole, bool) {
	switch s {
	case "hub":
		return RoleHub, true
	case "org":
		return RoleOrg, true
	case "hybrid":
		return RoleHybrid, true
	}
	return RoleUndefined, false
}

// Token returns the wire token for the role, or "" for RoleUndefined.
func (r NodeRole) Token() string {
	switch r {
	case RoleHub:
		return "hub"
	case RoleOrg:
		return "org"
	case RoleHybrid:
		return "hybrid"
	}
	return ""
}

func (r NodeRole) String() string { return r.Token() }

// NodeService is the service layer a node speaks on its advertised address.
type NodeService int

const (
	ServiceUndefined NodeService = iota
	ServiceDvsp
	ServiceHTTP
)

// NodeServiceFromToken maps a wire token to its service.
func NodeServiceFromToken(s string) (NodeService, bool) {
	switch s {
	case "dvsp":
		return ServiceDvsp, true
	case "http":
		return ServiceHTTP, true
	}
	return ServiceUndefined, false
}

// Token returns the wire token for the service, or "" for ServiceUndefined.
func (s NodeService) Token() string {
	switch s {
	case ServiceDvsp:
		return "dvsp"
	case ServiceHTTP:
		return "http"
	}
	return ""
}

func (s NodeService) String() string { return s.Token() }

// NodeState is the registration state of a node as the netspace records it.
type NodeState int

const (
	StateUnspecified NodeState = iota
	StateEnabled
	StateDisabled
	StateUnresponsive
)

// NodeStateFromToken maps a wire token to its state.
func NodeStateFromToken(s string) (NodeState, bool) {
	switch s {
	case "enabled":
		return StateEnabled, true
	case "disabled":
		return StateDisabled, true
	case "unresponsive":
		return StateUnresponsive, true
	}
	return StateUnspecified, false
}

// Token returns the wire token for the state, or "" for StateUnspecified.
func (s NodeState) Token() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	case StateUnresponsive:
		return "unresponsive"
	}
	return ""
}

func (s NodeState) String() string { return s.Token() }
