package node

import (
	"errors"
	"testing"

	"github.com/springdvs/spring-go/formats"
	"github.com/springdvs/spring-go/protocol"
)

func TestParse_Single(t *testing.T) {
	n, err := Parse("foobar")
	if err != nil {
		t.Fatalf("Parse(foobar) error = %v, want nil", err)
	}
	if n.SpringName() != "foobar" {
		t.Errorf("SpringName() = %q, want foobar", n.SpringName())
	}
	if n.HostName() != "" || n.Address() != "" {
		t.Errorf("unfilled fields not empty: host=%q address=%q", n.HostName(), n.Address())
	}
}

func TestParse_Double(t *testing.T) {
	n, err := Parse("foobar,barfoo")
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if n.SpringName() != "foobar" || n.HostName() != "barfoo" {
		t.Errorf("got spring=%q host=%q", n.SpringName(), n.HostName())
	}
}

func TestParse_Triple(t *testing.T) {
	n, err := Parse("foobar,barfoo,127.3.4.5")
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if n.Address() != "127.3.4.5" {
		t.Errorf("Address() = %q, want 127.3.4.5", n.Address())
	}
}

func TestParse_Quad(t *testing.T) {
	n, err := Parse("foobar,barfoo,127.3.4.5,http")
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if n.Service() != formats.ServiceHTTP {
		t.Errorf("Service() = %v, want http", n.Service())
	}
	if n.State() != formats.StateUnspecified {
		t.Errorf("State() = %v, want unspecified", n.State())
	}
}

func TestParse_Info(t *testing.T) {
	n, err := Parse("spring:foobar,host:barfoo,address:127.3.4.5,role:hybrid")
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if n.SpringName() != "foobar" || n.HostName() != "barfoo" || n.Address() != "127.3.4.5" {
		t.Errorf("got %q %q %q", n.SpringName(), n.HostName(), n.Address())
	}
	if n.Role() != formats.RoleHybrid {
		t.Errorf("Role() = %v, want hybrid", n.Role())
	}
}

func TestParse_InfoFail(t *testing.T) {
	if _, err := Parse("spring:foobar,hosting:barfoo"); !errors.Is(err, formats.InvalidProperty) {
		t.Errorf("unknown key error = %v, want InvalidProperty", err)
	}
	if _, err := Parse("spring:foobar,hostbarfoo,address:127.3.4.5"); !errors.Is(err, formats.InvalidContentFormat) {
		t.Errorf("colonless element error = %v, want InvalidContentFormat", err)
	}
}

func TestParse_ArityFail(t *testing.T) {
	if _, err := Parse("a,b,1.2.3.4,http,extra"); !errors.Is(err, formats.ConversionError) {
		t.Errorf("arity 5 error = %v, want ConversionError", err)
	}
}

func TestNew_SplitsResource(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		wantHost string
		wantRes  string
	}{
		{"no resource", "barfoo", "barfoo", ""},
		{"simple", "barfoo/res", "barfoo", "res"},
		{"nested", "barfoo/res/deep", "barfoo", "res/deep"},
		{"trailing slash", "barfoo/", "barfoo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New("foo", tt.host, "127.0.0.1", formats.ServiceUndefined, formats.StateUnspecified, formats.RoleUndefined)
			if n.HostName() != tt.wantHost {
				t.Errorf("HostName() = %q, want %q", n.HostName(), tt.wantHost)
			}
			if n.Resource() != tt.wantRes {
				t.Errorf("Resource() = %q, want %q", n.Resource(), tt.wantRes)
			}
		})
	}
}

const fullInfo = "spring:foobar,host:barfoo,address:127.3.4.5,role:hybrid,state:enabled,service:http"

// canonicalInfo is fullInfo rendered back out in the stable field order.
const canonicalInfo = "spring:foobar,host:barfoo,address:127.3.4.5,service:http,state:enabled,role:hybrid"

func TestExports_Present(t *testing.T) {
	n, err := Parse(fullInfo)
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}

	single, ok := n.Single()
	if !ok || single.Spring != "foobar" {
		t.Errorf("Single() = %+v, %v", single, ok)
	}
	double, ok := n.Double()
	if !ok || double.Host != "barfoo" {
		t.Errorf("Double() = %+v, %v", double, ok)
	}
	triple, ok := n.Triple()
	if !ok || triple.Address != "127.3.4.5" {
		t.Errorf("Triple() = %+v, %v", triple, ok)
	}
	quad, ok := n.Quad()
	if !ok || quad.Service != formats.ServiceHTTP {
		t.Errorf("Quad() = %+v, %v", quad, ok)
	}
	info, ok := n.Info()
	if !ok || info.State != formats.StateEnabled || info.Role != formats.RoleHybrid {
		t.Errorf("Info() = %+v, %v", info, ok)
	}
}

func TestExports_Absent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		chk  func(n *Node) bool
	}{
		{"single needs spring", "host:barfoo,address:127.3.4.5", func(n *Node) bool { _, ok := n.Single(); return ok }},
		{"double needs host", "spring:foobar,address:127.3.4.5", func(n *Node) bool { _, ok := n.Double(); return ok }},
		{"triple needs address", "spring:foobar,host:barfoo", func(n *Node) bool { _, ok := n.Triple(); return ok }},
		{"quad needs service", "spring:foobar,host:barfoo,address:127.3.4.5", func(n *Node) bool { _, ok := n.Quad(); return ok }},
		{"info needs address", "spring:foobar,role:hybrid,state:enabled", func(n *Node) bool { _, ok := n.Info(); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.in, err)
			}
			if tt.chk(n) {
				t.Error("export present, want absent")
			}
		})
	}
}

func TestInfoProperty(t *testing.T) {
	n, err := Parse(fullInfo)
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}

	tests := []struct {
		name string
		prop protocol.NodeProperty
		want string
	}{
		{"all", protocol.PropertyAll{}, canonicalInfo},
		{"hostname", protocol.PropertyHostname{}, "spring:foobar,host:barfoo"},
		{"address", protocol.PropertyAddress{}, "spring:foobar,address:127.3.4.5"},
		{"state", protocol.PropertyState{}, "spring:foobar,state:enabled"},
		{"service", protocol.PropertyService{}, "spring:foobar,service:http"},
		{"role", protocol.PropertyRole{}, "spring:foobar,role:hybrid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.InfoProperty(tt.prop).String(); got != tt.want {
				t.Errorf("InfoProperty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetters(t *testing.T) {
	n, err := Parse("foobar,barfoo,127.3.4.5")
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	n.UpdateService(formats.ServiceDvsp)
	n.UpdateState(formats.StateEnabled)
	n.UpdateRole(formats.RoleOrg)
	n.UpdateKey("secret")

	if n.Service() != formats.ServiceDvsp || n.State() != formats.StateEnabled || n.Role() != formats.RoleOrg {
		t.Errorf("setters not applied: %v %v %v", n.Service(), n.State(), n.Role())
	}
	if n.Key() != "secret" {
		t.Errorf("Key() = %q, want secret", n.Key())
	}
}

func TestParseList(t *testing.T) {
	nodes := ParseList("foo,bar,127.0.0.1,dvsp;bar,foo,127.0.0.2,http;")
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[0].SpringName() != "foo" || nodes[1].SpringName() != "bar" {
		t.Errorf("got %q, %q", nodes[0].SpringName(), nodes[1].SpringName())
	}
}

func TestParseList_SkipsMalformed(t *testing.T) {
	nodes := ParseList("foo,bar,127.0.0.1,dvsp;not_valid!;bar,foo,127.0.0.2,http;")
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
}

func TestFullInfo_RoundTrip(t *testing.T) {
	n, err := Parse(fullInfo)
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	info, ok := n.Info()
	if !ok {
		t.Fatal("Info() absent, want present")
	}
	if info.String() != canonicalInfo {
		t.Errorf("round trip produced %q, want %q", info.String(), canonicalInfo)
	}
}
