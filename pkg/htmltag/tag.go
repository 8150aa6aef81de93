// Package htmltag serializes single HTML elements from a tag name, an
// ordered attribute list, and optional content nodes. It is the low-level
// seam the builder package writes through; callers that need a different
// serialization strategy can substitute their own implementation behind the
// builder's ElementSerializer interface.
package htmltag

import "strings"

// Attr is a single name/value attribute pair. Attribute order is owned by
// the caller and preserved verbatim during serialization.
type Attr struct {
	Name  string
	Value string
}

// EscapeMode selects the character set escaped during serialization.
type EscapeMode int

const (
	// EscapeNone writes attribute values and content verbatim.
	EscapeNone EscapeMode = iota
	// EscapeMarkup escapes the markup-significant characters <, > and &.
	EscapeMarkup
)

// Tag is an ephemeral element value: serialized immediately, never retained.
type Tag struct {
	Name    string
	Attrs   []Attr
	Content []string
}

// Void elements render self-closing and never carry content.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// Render serializes the tag. Attribute values and content nodes are escaped
// according to mode; attribute names and the tag name are written verbatim.
func (t Tag) Render(mode EscapeMode) string {
	name := strings.TrimSpace(t.Name)

	var builder strings.Builder
	builder.Grow(len(name) + len(t.Attrs)*16 + 16)

	builder.WriteByte('<')
	builder.WriteString(name)
	for _, attr := range t.Attrs {
		if attr.Name == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr.Name)
		builder.WriteString(`="`)
		builder.WriteString(escapeValue(attr.Value, mode))
		builder.WriteByte('"')
	}

	if _, void := voidElements[name]; void {
		builder.WriteString(" />")
		return builder.String()
	}

	builder.WriteByte('>')
	for _, node := range t.Content {
		builder.WriteString(escapeValue(node, mode))
	}
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return builder.String()
}

func escapeValue(value string, mode EscapeMode) string {
	if mode == EscapeMarkup {
		return Escape(value)
	}
	return value
}
