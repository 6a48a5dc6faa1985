package domain

import (
	"strconv"
	"strings"
)

// linkifyToken is the only raw value that enables linkify on save.
const linkifyToken = "true"

// Settings is the plugin-wide default configuration. An empty Region means
// no default region is configured.
type Settings struct {
	Region  string `json:"region" yaml:"region"`
	Format  Format `json:"format" yaml:"format"`
	Linkify bool   `json:"linkify" yaml:"linkify"`
}

// DefaultSettings returns the record created on first access.
func DefaultSettings() Settings {
	return Settings{
		Region:  "",
		Format:  DefaultFormat,
		Linkify: true,
	}
}

// RegionPtr returns the region as an optional value.
func (s Settings) RegionPtr() *string {
	if s.Region == "" {
		return nil
	}
	region := s.Region
	return &region
}

// Raw converts s back to the submitted form representation.
func (s Settings) Raw() RawSettings {
	linkify := "false"
	if s.Linkify {
		linkify = linkifyToken
	}
	return RawSettings{
		Region:  s.Region,
		Format:  strconv.Itoa(int(s.Format)),
		Linkify: linkify,
	}
}

// RawSettings is a settings submission before normalization.
type RawSettings struct {
	Region  string
	Format  string
	Linkify string
}

// Normalize applies the save-time coercion rules. It never fails, and
// normalizing an already normalized record yields the same record.
func Normalize(raw RawSettings) Settings {
	return Settings{
		Region:  NormalizeRegion(raw.Region),
		Format:  normalizeFormat(raw.Format),
		Linkify: raw.Linkify == linkifyToken,
	}
}

// NormalizeRegion keeps the first two characters upper-cased and resets the
// value to empty unless they are two ASCII letters.
func NormalizeRegion(region string) string {
	if len(region) > 2 {
		region = region[:2]
	}
	region = strings.ToUpper(region)
	if len(region) != 2 || !isUpperASCII(region[0]) || !isUpperASCII(region[1]) {
		return ""
	}
	return region
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func normalizeFormat(raw string) Format {
	f := Format(leadingInt(raw))
	if !f.Valid() {
		return DefaultFormat
	}
	return f
}

// leadingInt reads an optionally signed integer prefix, ignoring leading
// whitespace. Input without digits yields 0.
func leadingInt(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow; any huge value is out of range anyway
		return -1
	}
	return sign * n
}
