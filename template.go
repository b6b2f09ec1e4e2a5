package resume2pdf

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// The default LaTeX template ships embedded so the library works without an
// asset directory. Delimiters are << >> because {{ }} is LaTeX syntax.

//go:embed templates/resume.tex.tmpl
var defaultTemplateText string

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// texRenderer renders a RenderContext into a complete LaTeX document.
type texRenderer struct {
	tmpl *template.Template
}

// newTexRenderer parses the template at path, or the embedded default when
// path is empty.
func newTexRenderer(path string) (*texRenderer, error) {
	text := defaultTemplateText
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderTex, err)
		}
		text = string(raw)
	}

	tmpl, err := template.New("resume").Delims("<<", ">>").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderTex, err)
	}
	return &texRenderer{tmpl: tmpl}, nil
}

// Render produces the LaTeX source for ctx.
func (r *texRenderer) Render(ctx RenderContext) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTex, err)
	}
	return b.String(), nil
}

// RenderLaTeX renders ctx with the embedded default template.
func RenderLaTeX(ctx RenderContext) (string, error) {
	r, err := newTexRenderer("")
	if err != nil {
		return "", err
	}
	return r.Render(ctx)
}
