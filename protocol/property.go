package protocol

import (
	"strings"

	"github.com/springdvs/spring-go/formats"
)

// NodeProperty selects a node field in an info query or an update. The
// valued variants carry an optional value: nil asks for the field, non-nil
// sets it.
type NodeProperty interface {
	isNodeProperty()
	String() string
}

// PropertyAll selects every field.
type PropertyAll struct{}

// PropertyHostname selects the hostname field.
type PropertyHostname struct{}

// PropertyAddress selects the address field.
type PropertyAddress struct{}

// PropertyState selects the state field; Value set means "set to".
type PropertyState struct {
	Value *formats.NodeState
}

// PropertyService selects the service field; Value set means "set to".
type PropertyService struct {
	Value *formats.NodeService
}

// PropertyRole selects the role field; Value set means "set to".
type PropertyRole struct {
	Value *formats.NodeRole
}

func (PropertyAll) isNodeProperty()      {}
func (PropertyHostname) isNodeProperty() {}
func (PropertyAddress) isNodeProperty()  {}
func (PropertyState) isNodeProperty()    {}
func (PropertyService) isNodeProperty()  {}
func (PropertyRole) isNodeProperty()     {}

func (PropertyAll) String() string      { return "all" }
func (PropertyHostname) String() string { return "hostname" }
func (PropertyAddress) String() string  { return "address" }

func (p PropertyState) String() string {
	if p.Value == nil {
		return "state"
	}
	return "state " + p.Value.Token()
}

func (p PropertyService) String() string {
	if p.Value == nil {
		return "service"
	}
	return "service " + p.Value.Token()
}

func (p PropertyRole) String() string {
	if p.Value == nil {
		return "role"
	}
	return "role " + p.Value.Token()
}

// parseNodeProperty reads the springname [property [value]] form. One token
// selects every field; two select a single field as a query; three carry a
// value to set. A value on a field that cannot take one, or a fourth token,
// is a format error.
func parseNodeProperty(payload string) (ContentNodeProperty, error) {
	toks := strings.Split(payload, " ")
	if len(toks) < 1 || len(toks) > 3 {
		return ContentNodeProperty{}, formats.InvalidContentFormat
	}

	spring := strings.ToLower(toks[0])
	if !formats.ValidSpringName(spring) {
		return ContentNodeProperty{}, formats.InvalidNaming
	}

	if len(toks) == 1 {
		return ContentNodeProperty{Spring: spring, Property: PropertyAll{}}, nil
	}

	value := ""
	if len(toks) == 3 {
		value = strings.ToLower(toks[2])
		if value == "" {
			return ContentNodeProperty{}, formats.InvalidContentFormat
		}
	}

	if toks[1] == "" {
		return ContentNodeProperty{}, formats.InvalidContentFormat
	}

	var prop NodeProperty
	switch strings.ToLower(toks[1]) {
	case "all":
		if value != "" {
			return ContentNodeProperty{}, formats.InvalidContentFormat
		}
		prop = PropertyAll{}
	case "hostname":
		if value != "" {
			return ContentNodeProperty{}, formats.InvalidContentFormat
		}
		prop = PropertyHostname{}
	case "address":
		if value != "" {
			return ContentNodeProperty{}, formats.InvalidContentFormat
		}
		prop = PropertyAddress{}
	case "state":
		if value == "" {
			prop = PropertyState{}
		} else {
			state, ok := formats.NodeStateFromToken(value)
			if !ok {
				return ContentNodeProperty{}, formats.InvalidState
			}
			prop = PropertyState{Value: &state}
		}
	case "service":
		if value == "" {
			prop = PropertyService{}
		} else {
			service, ok := formats.NodeServiceFromToken(value)
			if !ok {
				return ContentNodeProperty{}, formats.InvalidService
			}
			prop = PropertyService{Value: &service}
		}
	case "role":
		if value == "" {
			prop = PropertyRole{}
		} else {
			role, ok := formats.NodeRoleFromToken(value)
			if !ok {
				return ContentNodeProperty{}, formats.InvalidRole
			}
			prop = PropertyRole{Value: &role}
		}
	default:
		return ContentNodeProperty{}, formats.InvalidProperty
	}

	return ContentNodeProperty{Spring: spring, Property: prop}, nil
}
