// Package regions lists the regions the phone number library can format,
// with English display names for the admin region picker.
package regions

import (
	"sort"
	"strings"

	"phonelink_backend/platform/phone"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ValidationTag is the validator tag bound to Registry.ValidateRegionCode.
const ValidationTag = "region_code"

// Region is one selectable default region.
type Region struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CallingCode int    `json:"callingCode"`
}

// Registry is an immutable, name-sorted list of supported regions.
type Registry struct {
	list   []Region
	byCode map[string]Region
}

// NewRegistry builds the registry from the library metadata.
func NewRegistry() *Registry {
	namer := display.English.Regions()
	codes := phone.SupportedRegions()

	r := &Registry{
		list:   make([]Region, 0, len(codes)),
		byCode: make(map[string]Region, len(codes)),
	}
	for _, code := range codes {
		region := Region{
			Code:        code,
			Name:        code,
			CallingCode: phonenumbers.GetCountryCodeForRegion(code),
		}
		if tag, err := language.ParseRegion(code); err == nil {
			if name := namer.Name(tag); name != "" {
				region.Name = name
			}
		}
		r.list = append(r.list, region)
		r.byCode[code] = region
	}

	sort.SliceStable(r.list, func(i, j int) bool {
		if r.list[i].Name == r.list[j].Name {
			return r.list[i].Code < r.list[j].Code
		}
		return r.list[i].Name < r.list[j].Name
	})
	return r
}

// All returns a copy of the registry in display order.
func (r *Registry) All() []Region {
	return append([]Region(nil), r.list...)
}

// Lookup returns the region for a code in any letter case.
func (r *Registry) Lookup(code string) (Region, bool) {
	region, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return region, ok
}

// Contains reports whether code is a supported region.
func (r *Registry) Contains(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

// ValidateRegionCode is a validator.Func for the region_code tag.
func (r *Registry) ValidateRegionCode(fl validator.FieldLevel) bool {
	return r.Contains(fl.Field().String())
}
