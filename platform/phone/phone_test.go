package phone

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
)

func TestParseKeepsRawInputAndFormats(t *testing.T) {
	number, err := Parse("+1 650-253-0000", "")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !IsValid(number) {
		t.Fatal("expected number to be valid")
	}
	if got := Format(number, phonenumbers.E164); got != "+16502530000" {
		t.Fatalf("expected E164 +16502530000, got %s", got)
	}
	if number.GetRawInput() != "+1 650-253-0000" {
		t.Fatalf("expected raw input to be retained, got %q", number.GetRawInput())
	}
}

func TestParseUsesLowercaseRegion(t *testing.T) {
	number, err := Parse("(650) 253-0000", "us")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := Format(number, phonenumbers.E164); got != "+16502530000" {
		t.Fatalf("expected E164 +16502530000, got %s", got)
	}
}

func TestIsValidNil(t *testing.T) {
	if IsValid(nil) {
		t.Fatal("nil number must not be valid")
	}
}

func TestExampleNumberFallsBack(t *testing.T) {
	if ExampleNumber("") == nil {
		t.Fatal("expected fallback example number")
	}
	nl := ExampleNumber("nl")
	if nl == nil || nl.GetCountryCode() != 31 {
		t.Fatalf("expected Dutch example number, got %v", nl)
	}
}

func TestSupportedRegionsSorted(t *testing.T) {
	regions := SupportedRegions()
	if len(regions) < 200 {
		t.Fatalf("expected the full region list, got %d", len(regions))
	}
	for i := 1; i < len(regions); i++ {
		if regions[i-1] > regions[i] {
			t.Fatalf("regions not sorted at %d: %s > %s", i, regions[i-1], regions[i])
		}
	}
}
