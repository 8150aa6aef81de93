// Package sanitize cleans caller-supplied markup fragments before they are
// embedded as link content. The policy allows inline phrasing elements only;
// anything block-level or scriptable is stripped.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// Fragment sanitizes a markup fragment with the inline policy. Empty or
// whitespace-only input yields an empty string.
func Fragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(inlineSanitizer().Sanitize(trimmed))
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"a", "abbr", "b", "bdi", "br", "cite", "code", "em", "i", "kbd",
			"mark", "q", "s", "small", "span", "strong", "sub", "sup", "u",
			"img",
		)

		policy.AllowAttrs("href", "title", "rel").OnElements("a")
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span", "code", "mark")
		policy.AllowStandardURLs()

		inlinePolicy = policy
	})
	return inlinePolicy
}
