package service

import (
	"strings"

	"phonelink_backend/internal/phonelink/domain"
)

// inputSource extracts the number to render from an invocation.
type inputSource struct {
	name    string
	extract func(inv domain.Invocation) (string, bool)
}

// inputSources are tried in order; the first hit wins.
var inputSources = []inputSource{
	{name: "content", extract: func(inv domain.Invocation) (string, bool) {
		if inv.Content == nil || *inv.Content == "" {
			return "", false
		}
		return *inv.Content, true
	}},
	{name: "positional", extract: func(inv domain.Invocation) (string, bool) {
		if len(inv.Positional) == 0 {
			return "", false
		}
		return inv.Positional[0], true
	}},
	{name: "number", extract: func(inv domain.Invocation) (string, bool) {
		if inv.Number == nil {
			return "", false
		}
		return *inv.Number, true
	}},
}

// Resolve merges shortcode attributes with the stored settings. It never
// fails: anything missing or unrecognized falls through to settings.
func Resolve(inv domain.Invocation, settings domain.Settings) domain.EffectiveParameters {
	return domain.EffectiveParameters{
		Input:   resolveInput(inv),
		Region:  resolveRegion(inv.Region, settings),
		Format:  resolveFormat(inv.Format, settings),
		Linkify: resolveLinkify(inv.Linkify, settings),
	}
}

// resolveInput returns "" when no source matches so the library reports
// the problem instead of the render silently succeeding.
func resolveInput(inv domain.Invocation) string {
	for _, src := range inputSources {
		if value, ok := src.extract(inv); ok {
			return value
		}
	}
	return ""
}

func resolveRegion(attr *string, settings domain.Settings) *string {
	if attr != nil {
		region := strings.ToUpper(*attr)
		return &region
	}
	return settings.RegionPtr()
}

func resolveFormat(attr *string, settings domain.Settings) domain.Format {
	if attr != nil {
		if f, ok := domain.ParseFormatToken(*attr); ok {
			return f
		}
	}
	return settings.Format
}

func resolveLinkify(attr *string, settings domain.Settings) bool {
	if attr == nil {
		return settings.Linkify
	}
	switch strings.ToUpper(*attr) {
	case "YES", "TRUE", "1":
		return true
	case "NO", "FALSE", "0":
		return false
	default:
		return settings.Linkify
	}
}
