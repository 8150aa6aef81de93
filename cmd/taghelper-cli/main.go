package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-taghelper/pkg/builder"
	"github.com/goliatone/go-taghelper/pkg/manifest"
	"github.com/goliatone/go-taghelper/pkg/preview"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

func main() {
	manifestPath := flag.String("manifest", "", "tag manifest path (YAML)")
	output := flag.String("output", "", "output file (stdout if empty)")
	wrap := flag.Bool("preview", false, "wrap fragments in a preview page")
	title := flag.String("title", "taghelper preview", "preview page title")
	interactive := flag.Bool("interactive", false, "build tags from prompts instead of a manifest")
	flag.Parse()

	gen := builder.New()

	var fragments []string
	var err error
	switch {
	case *interactive:
		fragments, err = runInteractive(gen)
	case *manifestPath != "":
		fragments, err = renderManifest(gen, *manifestPath)
	default:
		log.Fatalf("either -manifest or -interactive is required")
	}
	if err != nil {
		log.Fatalf("Failed to generate tags: %v", err)
	}

	out := strings.Join(fragments, "\n") + "\n"
	if *wrap {
		engine, err := preview.New()
		if err != nil {
			log.Fatalf("Failed to build preview engine: %v", err)
		}
		out, err = engine.RenderPage(*title, fragments)
		if err != nil {
			log.Fatalf("Failed to render preview page: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", *output)
	} else {
		fmt.Print(out)
	}
}

func renderManifest(gen *builder.Builder, path string) ([]string, error) {
	doc, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	rendered, err := doc.Render(gen)
	if err != nil {
		return nil, err
	}
	fragments := make([]string, 0, len(rendered))
	for _, fragment := range rendered {
		fragments = append(fragments, fragment.HTML)
	}
	return fragments, nil
}

func runInteractive(gen *builder.Builder) ([]string, error) {
	var fragments []string
	for {
		fragment, err := promptTag(gen)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)

		again := true
		if err := survey.AskOne(&survey.Confirm{Message: "Add another tag?", Default: false}, &again); err != nil {
			return nil, err
		}
		if !again {
			return fragments, nil
		}
	}
}

func promptTag(gen *builder.Builder) (string, error) {
	var kind string
	prompt := &survey.Select{
		Message: "Tag kind:",
		Options: []string{
			manifest.KindImage,
			manifest.KindLink,
			manifest.KindTextField,
			manifest.KindSelect,
			manifest.KindDateSelect,
		},
	}
	if err := survey.AskOne(prompt, &kind); err != nil {
		return "", err
	}

	switch kind {
	case manifest.KindImage:
		src, err := askInput("Image source path:")
		if err != nil {
			return "", err
		}
		return gen.ImageTag(src, nil)
	case manifest.KindLink:
		text, err := askInput("Link text:")
		if err != nil {
			return "", err
		}
		href, err := askInput("Link href (empty for #):")
		if err != nil {
			return "", err
		}
		opts := tagopts.Options{}
		if href != "" {
			opts["href"] = href
		}
		return gen.LinkTo(builder.Text(text), opts)
	case manifest.KindTextField:
		name, err := askInput("Field name:")
		if err != nil {
			return "", err
		}
		return gen.TextFieldTag(name, nil)
	case manifest.KindSelect:
		name, err := askInput("Select name:")
		if err != nil {
			return "", err
		}
		raw, err := askInput("Entries (title=value, comma separated):")
		if err != nil {
			return "", err
		}
		return gen.SelectTag(name, parseEntries(raw), nil)
	case manifest.KindDateSelect:
		name, err := askInput("Date select name:")
		if err != nil {
			return "", err
		}
		return gen.DateSelectTag(name, nil)
	}
	return "", fmt.Errorf("unsupported tag kind %q", kind)
}

func askInput(message string) (string, error) {
	var out string
	if err := survey.AskOne(&survey.Input{Message: message}, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func parseEntries(raw string) builder.Entries {
	var entries builder.Entries
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		title, value, found := strings.Cut(pair, "=")
		if !found {
			value = title
		}
		entries = append(entries, builder.OptionEntry{
			Title: strings.TrimSpace(title),
			Value: strings.TrimSpace(value),
		})
	}
	return entries
}
