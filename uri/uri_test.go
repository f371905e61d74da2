package uri

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_Route(t *testing.T) {
	u, err := Parse("spring://cci.esusx.uk")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	want := []string{"cci", "esusx", "uk"}
	if !reflect.DeepEqual(u.Route(), want) {
		t.Errorf("Route() = %v, want %v", u.Route(), want)
	}
	if u.GTN() != "uk" {
		t.Errorf("GTN() = %q, want %q", u.GTN(), "uk")
	}
}

func TestParse_NoGTN(t *testing.T) {
	u, err := Parse("spring://cci.esusx")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(u.Route()) != 2 {
		t.Fatalf("len(Route()) = %d, want 2", len(u.Route()))
	}
	if u.GTN() != "" {
		t.Errorf("GTN() = %q, want empty", u.GTN())
	}
}

func TestParse_Resources(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "spring://cci.esusx.uk/res", []string{"res"}},
		{"nested", "spring://cci.esusx.uk/res1/res2", []string{"res1", "res2"}},
		{"empty segments dropped", "spring://cci.esusx.uk//res/", []string{"res"}},
		{"none", "spring://cci.esusx.uk", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.in, err)
			}
			if !reflect.DeepEqual(u.Res(), tt.want) {
				t.Errorf("Res() = %v, want %v", u.Res(), tt.want)
			}
		})
	}
}

func TestParse_Query(t *testing.T) {
	u, err := Parse("spring://cci.esusx.uk/res?order=desc&page=2&flag")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if u.Query() != "order=desc&page=2&flag" {
		t.Errorf("Query() = %q", u.Query())
	}

	m := u.QueryMap()
	want := map[string]string{"order": "desc", "page": "2", "flag": ""}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("QueryMap() = %v, want %v", m, want)
	}

	v, ok := u.QueryParam("order")
	if !ok || v != "desc" {
		t.Errorf("QueryParam(order) = %q, %v, want desc, true", v, ok)
	}
	if _, ok := u.QueryParam("missing"); ok {
		t.Error("QueryParam(missing) ok = true, want false")
	}
}

func TestParse_NoQueryYieldsNilMap(t *testing.T) {
	u, err := Parse("spring://cci.esusx.uk")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if u.QueryMap() != nil {
		t.Errorf("QueryMap() = %v, want nil", u.QueryMap())
	}
}

func TestParse_SchemeRequired(t *testing.T) {
	for _, in := range []string{"", "cci.esusx.uk", "http://cci.esusx.uk", "spring:/cci"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	inputs := []string{
		"spring://cci.esusx.uk",
		"spring://cci.esusx",
		"spring://cci.esusx.uk/res",
		"spring://cci.esusx.uk/res1/res2?order=desc&page=2",
		"spring://greenman.esusx.uk/album/2016?token=abc",
	}
	for _, in := range inputs {
		u, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v, want nil", in, err)
		}
		if u.String() != in {
			t.Errorf("String() = %q, want %q", u.String(), in)
		}
		again, err := Parse(u.String())
		if err != nil {
			t.Fatalf("re-Parse(%q) error = %v, want nil", u.String(), err)
		}
		if !reflect.DeepEqual(again, u) {
			t.Errorf("re-parse of %q differs: %+v vs %+v", in, again, u)
		}
	}
}
