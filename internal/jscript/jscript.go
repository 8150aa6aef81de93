// Package jscript generates the inline onclick handlers the link builder
// attaches for confirm/popup/method options. The patterns are fixed, so the
// snippets are assembled from plain string templates rather than any kind of
// JS AST.
package jscript

import "strings"

// Popup describes a window.open request. A nil *Popup means no popup was
// requested; Windowed selects the named two-argument form.
type Popup struct {
	Name     string
	Features string
	Windowed bool
}

// PopupFrom normalises the raw option value for popup. Lists with at least
// two entries select the windowed form; any other truthy value selects the
// plain form.
func PopupFrom(value any) *Popup {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		return &Popup{}
	case []string:
		return popupFromList(v)
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return popupFromList(list)
	case string:
		if v == "" {
			return nil
		}
		return &Popup{}
	default:
		return &Popup{}
	}
}

func popupFromList(list []string) *Popup {
	if len(list) >= 2 {
		return &Popup{Name: list[0], Features: list[1], Windowed: true}
	}
	return &Popup{}
}

// Spec carries the popped link options that feed onclick resolution.
// HrefProvided records whether the caller set href explicitly; together with
// a non-empty URL it switches the method form action away from this.href.
type Spec struct {
	Confirm      string
	Method       string
	Popup        *Popup
	URL          string
	HrefProvided bool
}

// Onclick resolves the handler for the supplied spec. An empty string means
// no handler was requested and any pre-existing onclick should be kept.
// Popup/method conflicts are rejected by the caller before resolution.
func Onclick(spec Spec) string {
	switch {
	case spec.Confirm != "" && spec.Popup != nil:
		return confirmGuard(spec.Confirm, popupSnippet(spec.Popup))
	case spec.Confirm != "" && spec.Method != "":
		return confirmGuard(spec.Confirm, methodSnippet(spec))
	case spec.Confirm != "":
		return "return confirm('" + EscapeJavascript(spec.Confirm) + "');"
	case spec.Method != "":
		return methodSnippet(spec) + " return false;"
	case spec.Popup != nil:
		return popupSnippet(spec.Popup) + " return false;"
	default:
		return ""
	}
}

func confirmGuard(message, snippet string) string {
	return "if (confirm('" + EscapeJavascript(message) + "')) { " + snippet + " }; return false;"
}

func popupSnippet(popup *Popup) string {
	if popup.Windowed {
		return "window.open(this.href, '" + EscapeJavascript(popup.Name) + "', '" + EscapeJavascript(popup.Features) + "');"
	}
	return "window.open(this.href);"
}

// methodSnippet builds a hidden POST form and submits it. Non-post logical
// methods ride along in a hidden _method input so servers can recover the
// real verb from an HTML-compatible POST.
func methodSnippet(spec Spec) string {
	action := "this.href"
	if spec.HrefProvided && spec.URL != "" {
		action = "'" + EscapeJavascript(spec.URL) + "'"
	}

	var builder strings.Builder
	builder.WriteString("var f = document.createElement('form'); f.style.display = 'none'; ")
	builder.WriteString("this.parentNode.appendChild(f); f.method = 'POST'; f.action = ")
	builder.WriteString(action)
	builder.WriteString(";")
	if spec.Method != "post" {
		builder.WriteString(" var m = document.createElement('input'); m.setAttribute('type', 'hidden'); ")
		builder.WriteString("m.setAttribute('name', '_method'); m.setAttribute('value', '")
		builder.WriteString(EscapeJavascript(spec.Method))
		builder.WriteString("'); f.appendChild(m);")
	}
	builder.WriteString(" f.submit();")
	return builder.String()
}

// EscapeJavascript makes a string safe enough to embed inside a
// single-quoted JS literal: backslashes are doubled, closing tags broken,
// newlines collapsed to \n, and quote characters stripped. Best-effort
// only; this is not a security boundary.
func EscapeJavascript(value string) string {
	out := strings.ReplaceAll(value, `\`, `\\`)
	out = strings.ReplaceAll(out, "</", `<\/`)
	out = strings.ReplaceAll(out, "\r\n", `\n`)
	out = strings.ReplaceAll(out, "\r", `\n`)
	out = strings.ReplaceAll(out, "\n", `\n`)
	out = strings.ReplaceAll(out, `"`, "")
	out = strings.ReplaceAll(out, "'", "")
	return out
}
