package builder

import (
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-taghelper/internal/jscript"
	"github.com/goliatone/go-taghelper/pkg/htmltag"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// ImageTag builds an <img> element. The alt attribute defaults to the
// source filename without its extension; entity escaping is on unless the
// escape_html option disables it. Explicit options override defaults.
func (b *Builder) ImageTag(src string, opts tagopts.Options) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("builder: image tag requires a source path: %w", ErrMissingArgument)
	}

	merged := tagopts.Merge(tagopts.Options{
		"src":         src,
		"alt":         altFromSource(src),
		escapeHTMLKey: true,
	}, opts)
	mode := popEscapeMode(merged, htmltag.EscapeMarkup)

	tag := htmltag.Tag{Name: "img", Attrs: attrsFromOptions(merged, "src", "alt")}
	return stripNewlines(b.serializer.Serialize(tag, mode)), nil
}

func altFromSource(src string) string {
	base := path.Base(src)
	return strings.TrimSuffix(base, path.Ext(base))
}

// LinkTo builds an anchor element around the supplied content. href
// defaults to "#"; escaping is off unless escape_html enables it. The
// confirm, popup, method, and url options are popped and folded into an
// onclick handler; popup and method together are a usage error. Boolean
// attributes are normalized before serialization and href always leads the
// attribute list.
func (b *Builder) LinkTo(content Content, opts tagopts.Options) (string, error) {
	if content.IsEmpty() {
		return "", fmt.Errorf("builder: link requires content: %w", ErrMissingArgument)
	}

	_, hrefProvided := opts["href"]

	merged := tagopts.Merge(tagopts.Options{"href": "#"}, opts)
	mode := popEscapeMode(merged, htmltag.EscapeNone)

	spec := jscript.Spec{HrefProvided: hrefProvided}
	if value, ok := merged.PopString("confirm"); ok {
		spec.Confirm = value
	}
	if value, ok := merged.PopString("method"); ok {
		spec.Method = value
	}
	if value, ok := merged.Pop("popup"); ok {
		spec.Popup = jscript.PopupFrom(value)
	}
	if value, ok := merged.PopString("url"); ok {
		spec.URL = value
	}

	if spec.Popup != nil && spec.Method != "" {
		return "", fmt.Errorf("builder: popup and method cannot be combined on a link: %w", ErrUsageConflict)
	}
	if handler := jscript.Onclick(spec); handler != "" {
		merged["onclick"] = handler
	}

	tagopts.NormalizeBooleans(merged)

	tag := htmltag.Tag{
		Name:    "a",
		Attrs:   attrsFromOptions(merged, "href"),
		Content: content.nodes(b.sanitizer),
	}
	return stripNewlines(b.serializer.Serialize(tag, mode)), nil
}

// TextFieldTag builds a text <input>. name is required; id defaults to the
// name and type to "text".
func (b *Builder) TextFieldTag(name string, opts tagopts.Options) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("builder: text field requires a name: %w", ErrMissingArgument)
	}

	merged := tagopts.Merge(tagopts.Options{
		"name": name,
		"id":   name,
		"type": "text",
	}, opts)

	tag := htmltag.Tag{Name: "input", Attrs: attrsFromOptions(merged, "name", "id", "type")}
	return stripNewlines(b.serializer.Serialize(tag, htmltag.EscapeNone)), nil
}
