package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages lists every template the renderer knows.
var Pages = []string{"home", "compose", "post", "about", "contact"}

var ErrTemplateNotFound = errors.New("template not found")

// RenderError reports a template that failed to execute, most often
// because a binding it references was not supplied.
type RenderError struct {
	Page string
	Err  error
}

func (e *RenderError) Error() string { return "render " + e.Page + ": " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

const excerptLength = 100

func templateFuncs(siteTitle string) template.FuncMap {
	return template.FuncMap{
		"siteTitle": func() string { return siteTitle },
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"excerpt": excerpt,
	}
}

// excerpt cuts input to its first excerptLength runes.
func excerpt(input string) string {
	if utf8.RuneCountInString(input) <= excerptLength {
		return input
	}
	return strings.TrimSpace(string([]rune(input)[:excerptLength])) + "..."
}

// Renderer executes a page template inside the shared "base" layout.
// Templates are parsed once and are safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(siteTitle string) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	funcs := templateFuncs(siteTitle)
	for _, page := range Pages {
		t, err := template.New("").
			Funcs(funcs).
			Option("missingkey=error").
			ParseFS(templateFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", page)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render writes the page to w only after it executed completely, so a
// failed render never leaves half a document on the wire.
func (r *Renderer) Render(w io.Writer, page string, data map[string]any) error {
	t, ok := r.pages[page]
	if !ok {
		return errors.Wrapf(ErrTemplateNotFound, "%q", page)
	}
	if data == nil {
		data = map[string]any{}
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return &RenderError{Page: page, Err: err}
	}
	_, err := buf.WriteTo(w)
	return err
}
