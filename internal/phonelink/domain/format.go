// Package domain holds the phone link value types shared by the resolver,
// the renderer and the settings store.
package domain

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Format is a phone number rendering style. The numeric values are the ones
// persisted by the settings store.
type Format int

const (
	FormatE164 Format = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

// DefaultFormat is used when no valid format has been stored.
const DefaultFormat = FormatInternational

// formatTokens maps upper-cased shortcode tokens to formats.
var formatTokens = map[string]Format{
	"E164":          FormatE164,
	"E.164":         FormatE164,
	"INT":           FormatInternational,
	"INTERNATIONAL": FormatInternational,
	"DOMESTIC":      FormatNational,
	"NATIONAL":      FormatNational,
	"RFC 3966":      FormatRFC3966,
	"RFC-3966":      FormatRFC3966,
	"RFC3966":       FormatRFC3966,
}

// ParseFormatToken matches a shortcode format token case-insensitively.
func ParseFormatToken(token string) (Format, bool) {
	f, ok := formatTokens[strings.ToUpper(token)]
	return f, ok
}

// Valid reports whether f is one of the four known styles.
func (f Format) Valid() bool {
	return f >= FormatE164 && f <= FormatRFC3966
}

// String returns the canonical token for f.
func (f Format) String() string {
	switch f {
	case FormatE164:
		return "E164"
	case FormatInternational:
		return "INTERNATIONAL"
	case FormatNational:
		return "NATIONAL"
	case FormatRFC3966:
		return "RFC3966"
	default:
		return "UNKNOWN"
	}
}

// Label is the human-facing name shown in the admin format picker.
func (f Format) Label() string {
	switch f {
	case FormatE164:
		return "E.164"
	case FormatInternational:
		return "International"
	case FormatNational:
		return "National"
	case FormatRFC3966:
		return "RFC 3966"
	default:
		return "Unknown"
	}
}

// Library converts f to the phone number library's format constant.
// Unknown values render as the default format.
func (f Format) Library() phonenumbers.PhoneNumberFormat {
	switch f {
	case FormatE164:
		return phonenumbers.E164
	case FormatNational:
		return phonenumbers.NATIONAL
	case FormatRFC3966:
		return phonenumbers.RFC3966
	default:
		return phonenumbers.INTERNATIONAL
	}
}

// AllFormats lists the styles in stored-value order.
func AllFormats() []Format {
	return []Format{FormatE164, FormatInternational, FormatNational, FormatRFC3966}
}
