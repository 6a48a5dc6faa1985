package service

import (
	"fmt"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/phone"
	"phonelink_backend/platform/sanitize"

	"github.com/nyaruka/phonenumbers"
)

const linkClass = "phone_link"

// Renderer formats resolved parameters into text or an anchor.
type Renderer struct {
	log *logger.Logger
}

// NewRenderer creates a renderer that reports failures to log.
func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{log: log}
}

// Render never fails. Input that does not parse or validate is logged and
// returned unchanged so authors never see broken markup.
func (r *Renderer) Render(params domain.EffectiveParameters) string {
	number, err := phone.Parse(params.Input, params.RegionCode())
	if err != nil {
		r.reportFailure(err, params)
		return params.Input
	}
	if !phone.IsValid(number) {
		r.reportFailure(ErrInvalidNumber, params)
		return params.Input
	}

	if !params.Linkify {
		return phone.Format(number, params.Format.Library())
	}
	return linkify(number, params.Format)
}

// linkify builds the anchor; text and target come from the same number and
// the target is the bare E164 form.
func linkify(number *phonenumbers.PhoneNumber, format domain.Format) string {
	text := sanitize.Escape(phone.Format(number, format.Library()))
	target := sanitize.Escape(phone.Format(number, phonenumbers.E164))
	return fmt.Sprintf(`<a class="%s" title="%s" href="%s">%s</a>`, linkClass, text, target, text)
}

func (r *Renderer) reportFailure(err error, params domain.EffectiveParameters) {
	if r.log == nil {
		return
	}
	region := regionToken(params.Region)
	r.log.PhoneFormatFailed(Translate(err, params.Input, params.Region), Classify(err).String(), params.Input, region)
}
