// Package sanitize provides output escaping for generated markup.
package sanitize

import "html"

// Escape makes s safe for use as HTML text or a quoted attribute value.
func Escape(s string) string {
	return html.EscapeString(s)
}
