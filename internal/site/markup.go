package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// inline renders the short markup strings profiles carry (hero chips,
// bullets). Raw HTML passes through as written.
var inline = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Markup renders s as inline HTML. A lone wrapping paragraph is removed so
// the result can sit inside a chip or list item.
func Markup(s string) template.HTML {
	var buf bytes.Buffer
	if err := inline.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}

func markupAll(items []string) []template.HTML {
	out := make([]template.HTML, len(items))
	for i, s := range items {
		out[i] = Markup(s)
	}
	return out
}
