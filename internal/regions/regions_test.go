package regions

import (
	"testing"

	"phonelink_backend/platform/validator"
)

func TestRegistryContainsKnownRegions(t *testing.T) {
	r := NewRegistry()
	for _, code := range []string{"US", "NL", "gb", " de "} {
		if !r.Contains(code) {
			t.Fatalf("expected %q to be supported", code)
		}
	}
	for _, code := range []string{"", "XX", "USA", "1"} {
		if r.Contains(code) {
			t.Fatalf("expected %q to be rejected", code)
		}
	}
}

func TestRegistryNamesAndCallingCodes(t *testing.T) {
	r := NewRegistry()
	nl, ok := r.Lookup("nl")
	if !ok {
		t.Fatal("expected NL in registry")
	}
	if nl.Name != "Netherlands" || nl.CallingCode != 31 {
		t.Fatalf("unexpected region %+v", nl)
	}
}

func TestRegistrySortedByName(t *testing.T) {
	all := NewRegistry().All()
	if len(all) < 200 {
		t.Fatalf("expected the full region list, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("registry not sorted at %d: %q > %q", i, all[i-1].Name, all[i].Name)
		}
	}
}

func TestRegionCodeValidationTag(t *testing.T) {
	val := validator.New()
	if err := val.RegisterValidation(ValidationTag, NewRegistry().ValidateRegionCode); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := val.Var("nl", ValidationTag); err != nil {
		t.Fatalf("expected nl to pass, got %v", err)
	}
	if err := val.Var("ZZ", ValidationTag); err == nil {
		t.Fatal("expected ZZ to fail")
	}
}
