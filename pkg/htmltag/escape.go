package htmltag

import "strings"

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces the markup-significant characters <, > and & with their
// entity forms. Quote characters are intentionally left alone; the escape
// set mirrors the serializer contract, not a full sanitizer.
func Escape(value string) string {
	return markupEscaper.Replace(value)
}
