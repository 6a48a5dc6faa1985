// Package service resolves phone shortcodes against the stored settings and
// renders them through the phone number library.
package service

import (
	"context"
	"strings"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/internal/phonelink/transport"
	"phonelink_backend/internal/shortcode"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/phone"

	"github.com/nyaruka/phonenumbers"
)

// Tag is the shortcode name handled by this service.
const Tag = "phone"

// SettingsReader provides the stored defaults.
type SettingsReader interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// Service renders phone shortcodes.
type Service struct {
	settings SettingsReader
	renderer *Renderer
	log      *logger.Logger
}

// New creates a new phone link service.
func New(settings SettingsReader, log *logger.Logger) *Service {
	return &Service{
		settings: settings,
		renderer: NewRenderer(log),
		log:      log,
	}
}

// RenderShortcode renders a single invocation against the current settings.
func (s *Service) RenderShortcode(ctx context.Context, inv domain.Invocation) string {
	settings := s.loadSettings(ctx)
	return s.renderer.Render(Resolve(inv, settings))
}

// ExpandContent replaces every phone shortcode in content. Settings are read
// once for the whole document.
func (s *Service) ExpandContent(ctx context.Context, content string) string {
	if !strings.Contains(content, "["+Tag) {
		return content
	}
	settings := s.loadSettings(ctx)
	return shortcode.Expand(content, Tag, func(sc shortcode.Shortcode) string {
		return s.renderer.Render(Resolve(InvocationFromShortcode(sc), settings))
	})
}

// Preview renders the library's example number for region in every format,
// as shown next to the admin format picker. An empty region uses the stored
// one.
func (s *Service) Preview(ctx context.Context, region string) transport.PreviewResponse {
	region = domain.NormalizeRegion(region)
	if region == "" {
		region = s.loadSettings(ctx).Region
	}

	input := ""
	if example := phone.ExampleNumber(region); example != nil {
		input = phone.Format(example, phonenumbers.INTERNATIONAL)
	}

	var regionPtr *string
	if region != "" {
		regionPtr = &region
	}

	examples := make([]transport.FormatExample, 0, 4)
	for _, f := range domain.AllFormats() {
		examples = append(examples, transport.FormatExample{
			Format: int(f),
			Token:  f.String(),
			Label:  f.Label(),
			Example: s.renderer.Render(domain.EffectiveParameters{
				Input:  input,
				Region: regionPtr,
				Format: f,
			}),
		})
	}

	return transport.PreviewResponse{Region: region, Examples: examples}
}

// InvocationFromShortcode maps parsed shortcode attributes onto an invocation.
func InvocationFromShortcode(sc shortcode.Shortcode) domain.Invocation {
	return domain.Invocation{
		Content:    sc.Content,
		Positional: sc.Attrs.Positional,
		Number:     sc.Attrs.Ptr("number"),
		Region:     sc.Attrs.Ptr("region"),
		Format:     sc.Attrs.Ptr("format"),
		Linkify:    sc.Attrs.Ptr("linkify"),
	}
}

// loadSettings falls back to defaults when the store is unavailable so a
// render never fails.
func (s *Service) loadSettings(ctx context.Context) domain.Settings {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if s.log != nil {
			s.log.WithContext(ctx).Error("failed to load phone settings, using defaults", "error", err)
		}
		return domain.DefaultSettings()
	}
	return settings
}
