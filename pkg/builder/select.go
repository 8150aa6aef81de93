package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-taghelper/pkg/htmltag"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// OptionEntry describes one <option> inside a select: the visible title,
// the submitted value, and any residual attributes.
type OptionEntry struct {
	Title string
	Value string
	Attrs tagopts.Options
}

// SelectSource is the tagged variant feeding SelectTag: either a list of
// entries rendered through OptionsForSelect, or pre-built option markup
// embedded verbatim.
type SelectSource interface {
	optionMarkup(b *Builder, htmlOpts tagopts.Options) string
}

// Entries renders its members via OptionsForSelect, consuming the value key
// of the select's html options as the selected value list.
type Entries []OptionEntry

func (e Entries) optionMarkup(b *Builder, htmlOpts tagopts.Options) string {
	var selected []string
	if value, ok := htmlOpts.Pop("value"); ok {
		selected = tagopts.StringList(value)
	}
	return b.OptionsForSelect(e, selected)
}

// Markup embeds caller-built option markup without modification.
type Markup string

func (m Markup) optionMarkup(*Builder, tagopts.Options) string {
	return string(m)
}

// SelectTag builds a <select> element around the supplied source. name is
// required; id defaults to the name. Unlike the other builders the output
// keeps its newlines, so entry markup stays one option per line.
func (b *Builder) SelectTag(name string, source SelectSource, htmlOpts tagopts.Options) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("builder: select requires a name: %w", ErrMissingArgument)
	}

	merged := tagopts.Merge(tagopts.Options{
		"name": name,
		"id":   name,
	}, htmlOpts)

	var inner string
	if source != nil {
		inner = source.optionMarkup(b, merged)
	}

	tag := htmltag.Tag{
		Name:    "select",
		Attrs:   attrsFromOptions(merged, "name", "id"),
		Content: []string{inner},
	}
	return b.serializer.Serialize(tag, htmltag.EscapeNone), nil
}

// OptionsForSelect serializes entries into <option> markup, one element per
// line. An entry is marked selected="true" when its value is a member of
// the selected list; membership is always tested against a list, never a
// single scalar.
func (b *Builder) OptionsForSelect(entries []OptionEntry, selected []string) string {
	var builder strings.Builder
	for _, entry := range entries {
		opts := entry.Attrs.Clone()
		if opts == nil {
			opts = tagopts.Options{}
		}
		opts["value"] = entry.Value
		if slices.Contains(selected, entry.Value) {
			opts["selected"] = "true"
		}

		tag := htmltag.Tag{
			Name:    "option",
			Attrs:   attrsFromOptions(opts, "value", "selected"),
			Content: []string{entry.Title},
		}
		builder.WriteString(b.serializer.Serialize(tag, htmltag.EscapeMarkup))
		builder.WriteByte('\n')
	}
	return builder.String()
}
