// Package web holds the HTML views and the helpers handlers use to render
// them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutName = "layout"

// Pages rendered through the shared layout.
const (
	PageIndex    = "index.html"
	PageEdit     = "edit.html"
	PageSettings = "settings.html"
	PageLogin    = "login.html"
	PageError    = "error.html"
)

var pages = []string{PageIndex, PageEdit, PageSettings, PageLogin, PageError}

// Renderer implements gin's render.HTMLRender with one template set per
// page, each parsed together with the layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		return missingTemplate{name: name}
	}
	return render.HTML{Template: tmpl, Name: layoutName, Data: data}
}

type missingTemplate struct {
	name string
}

func (m missingTemplate) Render(http.ResponseWriter) error {
	return fmt.Errorf("template not found: %s", m.name)
}

func (m missingTemplate) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

var _ render.HTMLRender = (*Renderer)(nil)

// Install sets the renderer on the engine.
func Install(engine *gin.Engine) error {
	r, err := NewRenderer()
	if err != nil {
		return err
	}
	engine.HTMLRender = r
	return nil
}
