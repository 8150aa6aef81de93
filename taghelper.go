// Package taghelper generates small HTML markup fragments (images, links,
// form inputs, selects, date pickers) from structured option data. The root
// package re-exports the builder types and exposes convenience functions
// bound to a shared default builder; construct a builder.Builder directly
// when you need a custom serializer, clock, or fragment sanitizer.
package taghelper

import (
	"github.com/goliatone/go-taghelper/pkg/builder"
	"github.com/goliatone/go-taghelper/pkg/sanitize"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// Options maps attribute names to values; explicit entries override builder
// defaults during the merge.
type Options = tagopts.Options

// Content is the tagged link-content variant.
type Content = builder.Content

// OptionEntry describes one <option> inside a select.
type OptionEntry = builder.OptionEntry

// Entries feeds SelectTag with structured option entries.
type Entries = builder.Entries

// Markup feeds SelectTag with pre-built option markup.
type Markup = builder.Markup

// SelectSource is the tagged variant feeding SelectTag.
type SelectSource = builder.SelectSource

// Re-exported error sentinels; match with errors.Is.
var (
	ErrMissingArgument = builder.ErrMissingArgument
	ErrUsageConflict   = builder.ErrUsageConflict
)

// Text wraps a single text node as link content.
func Text(value string) Content {
	return builder.Text(value)
}

// Fragment wraps pre-rendered markup parts as link content.
func Fragment(parts ...string) Content {
	return builder.Fragment(parts...)
}

// NewBuilder exposes the builder constructor from the root package.
func NewBuilder(options ...builder.Option) *builder.Builder {
	return builder.New(options...)
}

// SanitizeFragment cleans caller-supplied markup with the inline policy.
func SanitizeFragment(raw string) string {
	return sanitize.Fragment(raw)
}

var defaultBuilder = builder.New()

// ImageTag renders an <img> fragment with the default builder.
func ImageTag(src string, opts Options) (string, error) {
	return defaultBuilder.ImageTag(src, opts)
}

// LinkTo renders an anchor fragment with the default builder.
func LinkTo(content Content, opts Options) (string, error) {
	return defaultBuilder.LinkTo(content, opts)
}

// TextFieldTag renders a text <input> fragment with the default builder.
func TextFieldTag(name string, opts Options) (string, error) {
	return defaultBuilder.TextFieldTag(name, opts)
}

// SelectTag renders a <select> fragment with the default builder.
func SelectTag(name string, source SelectSource, htmlOpts Options) (string, error) {
	return defaultBuilder.SelectTag(name, source, htmlOpts)
}

// OptionsForSelect renders <option> markup with the default builder.
func OptionsForSelect(entries []OptionEntry, selected []string) string {
	return defaultBuilder.OptionsForSelect(entries, selected)
}

// DateSelectTag renders day/month/year selects with the default builder.
func DateSelectTag(name string, opts Options) (string, error) {
	return defaultBuilder.DateSelectTag(name, opts)
}
