package transport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"phonelink_backend/internal/phonelink/domain"
)

// RawValue is a settings field exactly as submitted. JSON strings, numbers
// and booleans are all accepted and kept in their textual form so that
// normalization sees what an HTML form would have posted.
type RawValue string

// UnmarshalJSON accepts a string, number, boolean or null.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
	case string(data) == "true" || string(data) == "false":
		*v = RawValue(data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported settings value %s", data)
		}
		*v = RawValue(n.String())
	}
	return nil
}

// UnmarshalParam binds a form or query value.
func (v *RawValue) UnmarshalParam(param string) error {
	*v = RawValue(param)
	return nil
}

// SaveSettingsRequest is the admin settings form.
type SaveSettingsRequest struct {
	Region  RawValue `json:"region" form:"region" validate:"max=64"`
	Format  RawValue `json:"format" form:"format" validate:"max=64"`
	Linkify RawValue `json:"linkify" form:"linkify" validate:"max=64"`
}

// Raw returns the submission for normalization.
func (r SaveSettingsRequest) Raw() domain.RawSettings {
	return domain.RawSettings{
		Region:  string(r.Region),
		Format:  string(r.Format),
		Linkify: string(r.Linkify),
	}
}

// SettingsResponse is the stored settings as shown in the admin screen.
type SettingsResponse struct {
	Region      string `json:"region"`
	Format      int    `json:"format"`
	FormatToken string `json:"formatToken"`
	FormatLabel string `json:"formatLabel"`
	Linkify     bool   `json:"linkify"`
}

// NewSettingsResponse maps stored settings to the response shape.
func NewSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Region:      s.Region,
		Format:      int(s.Format),
		FormatToken: s.Format.String(),
		FormatLabel: s.Format.Label(),
		Linkify:     s.Linkify,
	}
}
