// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ExampleRegion is used for example numbers when no region is configured.
const ExampleRegion = "US"

// Parse parses raw, human-entered input against the default region while
// keeping the raw input on the returned number. An empty region lets the
// library rely on a leading '+' and country calling code.
func Parse(input, region string) (*phonenumbers.PhoneNumber, error) {
	return phonenumbers.ParseAndKeepRawInput(input, strings.ToUpper(region))
}

// IsValid reports whether the parsed number is a real, assignable number.
func IsValid(number *phonenumbers.PhoneNumber) bool {
	return number != nil && phonenumbers.IsValidNumber(number)
}

// Format renders the number in the given library format.
func Format(number *phonenumbers.PhoneNumber, format phonenumbers.PhoneNumberFormat) string {
	return phonenumbers.Format(number, format)
}

// ExampleNumber returns the library's example fixed-line number for a region.
// Falls back to ExampleRegion when region is empty or unsupported.
func ExampleNumber(region string) *phonenumbers.PhoneNumber {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region != "" {
		if number := phonenumbers.GetExampleNumber(region); number != nil {
			return number
		}
	}
	return phonenumbers.GetExampleNumber(ExampleRegion)
}

// SupportedRegions returns the library's supported region codes, sorted.
func SupportedRegions() []string {
	supported := phonenumbers.GetSupportedRegions()
	regions := make([]string, 0, len(supported))
	for code := range supported {
		regions = append(regions, code)
	}
	sort.Strings(regions)
	return regions
}
