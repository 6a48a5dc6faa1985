package service

import (
	"bytes"
	"strings"
	"testing"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/phone"
)

const googleNumber = "+1 650-253-0000"

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(logger.NewWithWriter("development", &buf)), &buf
}

func TestRenderPlainFormats(t *testing.T) {
	r, _ := newTestRenderer()
	want := map[domain.Format]string{
		domain.FormatE164:          "+16502530000",
		domain.FormatInternational: "+1 650-253-0000",
		domain.FormatNational:      "(650) 253-0000",
		domain.FormatRFC3966:       "tel:+1-650-253-0000",
	}
	for f, expected := range want {
		got := r.Render(domain.EffectiveParameters{Input: googleNumber, Format: f})
		if got != expected {
			t.Fatalf("%v: expected %q, got %q", f, expected, got)
		}
	}
}

func TestRenderPlainMatchesLibrary(t *testing.T) {
	r, _ := newTestRenderer()
	region := "NL"
	for _, input := range []string{"010 123 4567", "+31 6 12345678", "0612345678"} {
		number, err := phone.Parse(input, region)
		if err != nil || !phone.IsValid(number) {
			t.Fatalf("fixture %q should be a valid Dutch number", input)
		}
		for _, f := range domain.AllFormats() {
			got := r.Render(domain.EffectiveParameters{Input: input, Region: &region, Format: f})
			if want := phone.Format(number, f.Library()); got != want {
				t.Fatalf("%q as %v: expected %q, got %q", input, f, want, got)
			}
		}
	}
}

func TestRenderLinkifyUsesE164Target(t *testing.T) {
	r, _ := newTestRenderer()
	region := "US"
	got := r.Render(domain.EffectiveParameters{
		Input:   googleNumber,
		Region:  &region,
		Format:  domain.FormatInternational,
		Linkify: true,
	})
	want := `<a class="phone_link" title="+1 650-253-0000" href="+16502530000">+1 650-253-0000</a>`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = r.Render(domain.EffectiveParameters{Input: "(650) 253-0000", Region: &region, Format: domain.FormatNational, Linkify: true})
	want = `<a class="phone_link" title="(650) 253-0000" href="+16502530000">(650) 253-0000</a>`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRenderFailuresReturnRawInput(t *testing.T) {
	us := "US"
	cases := []struct {
		name   string
		params domain.EffectiveParameters
		kind   string
	}{
		{"not a number", domain.EffectiveParameters{Input: "not a number", Region: &us, Linkify: true}, "not_a_number"},
		{"no region for national input", domain.EffectiveParameters{Input: "650-253-0000", Format: domain.FormatE164}, "invalid_country_code"},
		{"fails validation", domain.EffectiveParameters{Input: "+44 1234", Format: domain.FormatRFC3966, Linkify: true}, "invalid_number"},
		{"empty input", domain.EffectiveParameters{Input: "", Region: &us}, "not_a_number"},
		{"markup is not escaped on fallback", domain.EffectiveParameters{Input: "<b>call us</b>", Region: &us, Linkify: true}, "not_a_number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, buf := newTestRenderer()
			got := r.Render(tc.params)
			if got != tc.params.Input {
				t.Fatalf("expected raw input %q, got %q", tc.params.Input, got)
			}
			if !strings.Contains(buf.String(), "phone_format_failed") {
				t.Fatalf("expected a diagnostic log entry, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), "kind="+tc.kind) {
				t.Fatalf("expected kind %s in log, got %q", tc.kind, buf.String())
			}
		})
	}
}

func TestRenderOverlongInputIsReturnedVerbatim(t *testing.T) {
	r, buf := newTestRenderer()
	us := "US"
	input := strings.Repeat("1", 300)

	got := r.Render(domain.EffectiveParameters{Input: input, Region: &us, Linkify: true})
	if got != input {
		t.Fatalf("expected raw input back, got %q", got)
	}
	if !strings.Contains(buf.String(), "input too long to be a phone number") {
		t.Fatalf("expected too-long diagnostic, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kind=too_long") {
		t.Fatalf("expected too_long kind, got %q", buf.String())
	}
}

func TestRenderFailureLogMentionsInputAndRegion(t *testing.T) {
	r, buf := newTestRenderer()
	us := "US"
	r.Render(domain.EffectiveParameters{Input: "not a number", Region: &us})

	out := buf.String()
	if !strings.Contains(out, "input did not look like a phone number [not a number US]") {
		t.Fatalf("expected translated detail in log, got %q", out)
	}
	if !strings.Contains(out, "region=US") {
		t.Fatalf("expected resolved region in log, got %q", out)
	}
}

func TestRenderFailureLogUsesNullForMissingRegion(t *testing.T) {
	r, buf := newTestRenderer()
	r.Render(domain.EffectiveParameters{Input: "650-253-0000"})
	if !strings.Contains(buf.String(), "[650-253-0000 null]") {
		t.Fatalf("expected null region token, got %q", buf.String())
	}
}

func TestRenderWithoutLogger(t *testing.T) {
	r := NewRenderer(nil)
	if got := r.Render(domain.EffectiveParameters{Input: "nope"}); got != "nope" {
		t.Fatalf("expected raw input, got %q", got)
	}
}
