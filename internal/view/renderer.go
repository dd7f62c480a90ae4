// Package view turns presentation state and a content snapshot into the
// portfolio page.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ScriptName is the client script's path inside Static.
const ScriptName = "app.js"

// Static returns the embedded client assets.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	conv *converter.Converter
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	script, err := staticFS.ReadFile("static/" + ScriptName)
	if err != nil {
		return nil, fmt.Errorf("view: read script: %w", err)
	}
	funcs := template.FuncMap{
		"script":   func() template.JS { return template.JS(script) },
		"external": isExternal,
	}
	tmpl, err := template.New("portfolio").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Renderer{tmpl: tmpl, conv: conv}, nil
}

// Render writes the HTML page for m.
func (r *Renderer) Render(w io.Writer, m Model) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", m); err != nil {
		return fmt.Errorf("view: render: %w", err)
	}
	return nil
}

// Markdown renders m without its client script and converts the result to
// Markdown.
func (r *Renderer) Markdown(m Model) (string, error) {
	m.Options.OmitScript = true
	var buf bytes.Buffer
	if err := r.Render(&buf, m); err != nil {
		return "", err
	}
	md, err := r.conv.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("view: markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

func isExternal(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
