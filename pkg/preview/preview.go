// Package preview wraps generated fragments in a standalone HTML page so
// output can be inspected in a browser without further tooling.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

const defaultPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ title }}</title>
</head>
<body>
{% for fragment in fragments %}  <div class="fragment">{{ fragment|safe }}</div>
{% endfor %}</body>
</html>
`

// Option configures the preview engine before construction.
type Option func(*config)

type config struct {
	pageTemplate string
}

// WithPageTemplate replaces the built-in page template. The template
// receives a title string and a fragments list.
func WithPageTemplate(content string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(content) != "" {
			cfg.pageTemplate = content
		}
	}
}

// Engine renders preview pages from a parsed pongo2 template set.
type Engine struct {
	set  *pongo2.TemplateSet
	page *pongo2.Template
}

// New constructs an Engine, parsing the page template up front.
func New(options ...Option) (*Engine, error) {
	cfg := &config{pageTemplate: defaultPageTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("taghelper", pongo2.DefaultLoader)
	page, err := set.FromString(cfg.pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: parse page template: %w", err)
	}
	return &Engine{set: set, page: page}, nil
}

// RenderPage assembles the fragments into a full page.
func (e *Engine) RenderPage(title string, fragments []string) (string, error) {
	if e == nil || e.page == nil {
		return "", errors.New("preview: engine is nil")
	}

	var buf bytes.Buffer
	err := e.page.ExecuteWriter(pongo2.Context{
		"title":     title,
		"fragments": fragments,
	}, &buf)
	if err != nil {
		return "", fmt.Errorf("preview: execute page template: %w", err)
	}
	return buf.String(), nil
}
