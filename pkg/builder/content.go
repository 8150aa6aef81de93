package builder

// Content is the tagged link-content variant: either a single text node or
// a fragment of pre-rendered child nodes. The explicit split replaces the
// string-or-list coercion a dynamic helper layer would rely on.
type Content struct {
	text     string
	parts    []string
	fragment bool
}

// Text wraps a single text node.
func Text(value string) Content {
	return Content{text: value}
}

// Fragment wraps pre-rendered markup parts that are concatenated as child
// nodes in order.
func Fragment(parts ...string) Content {
	return Content{parts: parts, fragment: true}
}

// IsEmpty reports whether the content carries nothing renderable.
func (c Content) IsEmpty() bool {
	if c.fragment {
		for _, part := range c.parts {
			if part != "" {
				return false
			}
		}
		return true
	}
	return c.text == ""
}

// nodes returns the child nodes, passing fragment parts through sanitize
// when configured.
func (c Content) nodes(sanitize func(string) string) []string {
	if !c.fragment {
		return []string{c.text}
	}
	out := make([]string, 0, len(c.parts))
	for _, part := range c.parts {
		if sanitize != nil {
			part = sanitize(part)
		}
		out = append(out, part)
	}
	return out
}
