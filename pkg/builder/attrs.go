package builder

import (
	"slices"
	"strings"

	"github.com/goliatone/go-taghelper/pkg/htmltag"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// Option key popped before serialization to toggle entity escaping.
const escapeHTMLKey = "escape_html"

// attrsFromOptions flattens an option map into an ordered attribute list.
// Leading keys come first in the given order when present; the remainder is
// sorted lexicographically so output stays deterministic.
func attrsFromOptions(opts tagopts.Options, leading ...string) []htmltag.Attr {
	attrs := make([]htmltag.Attr, 0, len(opts))
	seen := make(map[string]struct{}, len(leading))

	for _, name := range leading {
		value, ok := opts[name]
		if !ok {
			continue
		}
		seen[name] = struct{}{}
		attrs = append(attrs, htmltag.Attr{Name: name, Value: tagopts.ValueString(value)})
	}

	rest := make([]string, 0, len(opts))
	for name := range opts {
		if _, ok := seen[name]; ok {
			continue
		}
		rest = append(rest, name)
	}
	slices.Sort(rest)

	for _, name := range rest {
		attrs = append(attrs, htmltag.Attr{Name: name, Value: tagopts.ValueString(opts[name])})
	}
	return attrs
}

func popEscapeMode(opts tagopts.Options, fallback htmltag.EscapeMode) htmltag.EscapeMode {
	if opts.PopBool(escapeHTMLKey, fallback == htmltag.EscapeMarkup) {
		return htmltag.EscapeMarkup
	}
	return htmltag.EscapeNone
}

var newlineStripper = strings.NewReplacer("\r", "", "\n", "")

func stripNewlines(markup string) string {
	return newlineStripper.Replace(markup)
}
