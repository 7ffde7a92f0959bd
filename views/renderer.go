package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var files embed.FS

// Pages rendered by the app. Each one is parsed into its own set together
// with the shared layout and the field widget.
var Pages = []string{
	"landing.html",
	"form.html",
	"form_success.html",
	"login.html",
	"admin.html",
	"invoice_editor.html",
	"invoice.html",
	"not_found.html",
}

// HTMLRenderer keeps a separate template set per page so every page can
// define its own "content" block.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

func New() (*HTMLRenderer, error) {
	templates := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		tmpl, err := template.New(page).Funcs(Funcs).ParseFS(files,
			"templates/base.html",
			"templates/field.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &HTMLRenderer{Templates: templates}, nil
}

// Instance implements gin's render.HTMLRender.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Name:     "base",
		Data:     data,
	}
}

// Render writes a page outside gin's c.HTML, e.g. from tests.
func (r *HTMLRenderer) Render(w http.ResponseWriter, code int, name string, data interface{}) error {
	instance := r.Instance(name, data)
	instance.WriteContentType(w)
	w.WriteHeader(code)
	return instance.Render(w)
}
