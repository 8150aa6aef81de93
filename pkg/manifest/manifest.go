// Package manifest parses YAML documents that declare a list of tags to
// generate, giving CLI and test callers a structured input surface over the
// builder API.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-taghelper/pkg/builder"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// Tag kinds accepted by a manifest document.
const (
	KindImage      = "image"
	KindLink       = "link"
	KindTextField  = "text_field"
	KindSelect     = "select"
	KindDateSelect = "date_select"
)

// Tag declares one fragment to generate. Kind selects the builder; the
// remaining fields feed its arguments. Options map straight onto the
// builder's option map.
type Tag struct {
	Kind     string         `yaml:"kind"`
	Src      string         `yaml:"src,omitempty"`
	Text     string         `yaml:"text,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Entries  []OptionEntry  `yaml:"entries,omitempty"`
	Selected []string       `yaml:"selected,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// OptionEntry mirrors builder.OptionEntry for YAML decoding.
type OptionEntry struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
}

// Document is a parsed manifest.
type Document struct {
	Tags []Tag `yaml:"tags"`
}

// Fragment pairs a rendered markup string with the tag that produced it.
type Fragment struct {
	Kind string
	Name string
	HTML string
}

// Load parses and validates manifest YAML.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	if len(doc.Tags) == 0 {
		return nil, fmt.Errorf("manifest: document declares no tags")
	}
	for i, tag := range doc.Tags {
		if err := validateKind(tag.Kind); err != nil {
			return nil, fmt.Errorf("manifest: tag %d: %w", i, err)
		}
	}
	return &doc, nil
}

// LoadFile reads and parses a manifest from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Load(data)
}

func validateKind(kind string) error {
	switch strings.TrimSpace(kind) {
	case KindImage, KindLink, KindTextField, KindSelect, KindDateSelect:
		return nil
	case "":
		return fmt.Errorf("missing tag kind")
	default:
		return fmt.Errorf("unknown tag kind %q", kind)
	}
}

// Render generates a fragment for every declared tag, in document order.
func (d *Document) Render(gen *builder.Builder) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(d.Tags))
	for i, tag := range d.Tags {
		html, err := renderTag(gen, tag)
		if err != nil {
			return nil, fmt.Errorf("manifest: tag %d (%s): %w", i, tag.Kind, err)
		}
		fragments = append(fragments, Fragment{Kind: tag.Kind, Name: tag.Name, HTML: html})
	}
	return fragments, nil
}

func renderTag(gen *builder.Builder, tag Tag) (string, error) {
	opts := tagopts.Options(tag.Options)

	switch strings.TrimSpace(tag.Kind) {
	case KindImage:
		return gen.ImageTag(tag.Src, opts)
	case KindLink:
		return gen.LinkTo(builder.Text(tag.Text), opts)
	case KindTextField:
		return gen.TextFieldTag(tag.Name, opts)
	case KindSelect:
		entries := make(builder.Entries, 0, len(tag.Entries))
		for _, entry := range tag.Entries {
			entries = append(entries, builder.OptionEntry{Title: entry.Title, Value: entry.Value})
		}
		htmlOpts := opts.Clone()
		if len(tag.Selected) > 0 {
			if htmlOpts == nil {
				htmlOpts = tagopts.Options{}
			}
			htmlOpts["value"] = tag.Selected
		}
		return gen.SelectTag(tag.Name, entries, htmlOpts)
	case KindDateSelect:
		return gen.DateSelectTag(tag.Name, opts)
	default:
		return "", fmt.Errorf("unknown tag kind %q", tag.Kind)
	}
}
