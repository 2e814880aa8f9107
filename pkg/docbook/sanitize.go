package docbook

import (
	"strings"

	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

// markerToken opens every insertion point marker. Rendered text must never
// carry it, or the output merge would find a marker inside a unit.
const (
	markerToken  = "@@protoc_insertion_point("
	brokenMarker = "@&#64;protoc_insertion_point("
)

// Escape replaces the XML special characters with entities. Bytes outside
// printable 7-bit ASCII become a single space, except newline, carriage
// return and tab which are kept. Insertion point tokens are broken with a
// character reference.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\n', '\r', '\t':
			b.WriteByte(c)
		default:
			if c < 0x20 || c >= 0x7F {
				c = ' '
			}
			b.WriteByte(c)
		}
	}

	return strings.ReplaceAll(b.String(), markerToken, brokenMarker)
}

// Paragraphize wraps text in <para> tags, starting a new paragraph at every
// blank line. Whitespace-only text yields an empty string.
func Paragraphize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return "<para>" + strings.ReplaceAll(text, "\n\n", "</para>\n<para>") + "</para>"
}

// FormatComment renders a node comment as escaped paragraphs
func FormatComment(c schema.Comment) string {
	return Paragraphize(Escape(c.Text()))
}
