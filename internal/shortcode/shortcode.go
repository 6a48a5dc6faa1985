// Package shortcode finds bracket shortcodes such as
// [phone region="nl"]020 123 4567[/phone] in page content and parses their
// attributes.
package shortcode

import (
	"regexp"
	"strings"
)

// attrPattern matches, in order: name="v", name='v', name=v, "v", 'v', v.
var attrPattern = regexp.MustCompile(`([\w-]+)\s*=\s*"([^"]*)"(?:\s|$)|([\w-]+)\s*=\s*'([^']*)'(?:\s|$)|([\w-]+)\s*=\s*([^\s'"]+)(?:\s|$)|"([^"]*)"(?:\s|$)|'([^']*)'(?:\s|$)|(\S+)(?:\s|$)`)

var spaceReplacer = strings.NewReplacer("\u00a0", " ", "\u200b", " ")

// Attributes holds named attributes (lower-cased names) and unnamed values
// in the order they appeared.
type Attributes struct {
	Named      map[string]string
	Positional []string
}

// Get returns a named attribute and whether it was present.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a.Named[strings.ToLower(name)]
	return v, ok
}

// Ptr returns a named attribute, or nil when absent.
func (a Attributes) Ptr(name string) *string {
	v, ok := a.Get(name)
	if !ok {
		return nil
	}
	return &v
}

// Shortcode is one parsed occurrence.
type Shortcode struct {
	Tag   string
	Attrs Attributes
	// Content is nil for self-closing tags and tags without a closing tag.
	Content *string
	// Raw is the exact source text of the occurrence.
	Raw string
}

// ParseAttributes parses the text between the tag name and the closing
// bracket.
func ParseAttributes(text string) Attributes {
	attrs := Attributes{Named: map[string]string{}}
	text = spaceReplacer.Replace(text)

	for _, m := range attrPattern.FindAllStringSubmatch(text, -1) {
		switch {
		case m[1] != "":
			attrs.Named[strings.ToLower(m[1])] = m[2]
		case m[3] != "":
			attrs.Named[strings.ToLower(m[3])] = m[4]
		case m[5] != "":
			attrs.Named[strings.ToLower(m[5])] = m[6]
		case strings.HasPrefix(strings.TrimSpace(m[0]), `"`):
			attrs.Positional = append(attrs.Positional, m[7])
		case strings.HasPrefix(strings.TrimSpace(m[0]), `'`):
			attrs.Positional = append(attrs.Positional, m[8])
		default:
			attrs.Positional = append(attrs.Positional, m[9])
		}
	}
	return attrs
}

// Expand replaces every occurrence of tag in content with fn's result.
// Escaped occurrences ([[tag]]) are emitted literally with one bracket
// pair removed.
func Expand(content, tag string, fn func(Shortcode) string) string {
	open := "[" + tag
	if !strings.Contains(content, open) {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	i := 0
	for {
		j := strings.Index(content[i:], open)
		if j < 0 {
			b.WriteString(content[i:])
			return b.String()
		}
		start := i + j
		sc, end, ok := scan(content, start, tag)
		if !ok {
			next := start + len(open)
			b.WriteString(content[i:next])
			i = next
			continue
		}

		if start > 0 && content[start-1] == '[' && end < len(content) && content[end] == ']' {
			b.WriteString(content[i : start-1])
			b.WriteString(sc.Raw)
			i = end + 1
			continue
		}

		b.WriteString(content[i:start])
		b.WriteString(fn(sc))
		i = end
	}
}

// Find returns every unescaped occurrence of tag in content.
func Find(content, tag string) []Shortcode {
	var found []Shortcode
	Expand(content, tag, func(sc Shortcode) string {
		found = append(found, sc)
		return sc.Raw
	})
	return found
}

// scan parses the shortcode starting at content[start] ('['). It returns
// the index just past the occurrence.
func scan(content string, start int, tag string) (Shortcode, int, bool) {
	nameEnd := start + 1 + len(tag)
	if nameEnd < len(content) && isNameChar(content[nameEnd]) {
		return Shortcode{}, 0, false
	}

	closeBracket := strings.IndexByte(content[nameEnd:], ']')
	if closeBracket < 0 {
		return Shortcode{}, 0, false
	}
	closeBracket += nameEnd

	attrText := content[nameEnd:closeBracket]
	selfClosing := strings.HasSuffix(attrText, "/")
	if selfClosing {
		attrText = strings.TrimSuffix(attrText, "/")
	}

	sc := Shortcode{Tag: tag, Attrs: ParseAttributes(attrText)}
	end := closeBracket + 1

	if !selfClosing {
		closing := "[/" + tag + "]"
		if k := strings.Index(content[end:], closing); k >= 0 {
			body := content[end : end+k]
			sc.Content = &body
			end += k + len(closing)
		}
	}

	sc.Raw = content[start:end]
	return sc, end, true
}

func isNameChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
