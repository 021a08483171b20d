// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"homeat/internal/errors"
	"homeat/internal/util"

	"github.com/labstack/echo/v4"
)

// Template names.
const (
	TemplateRecipes  = "recipes"
	TemplateEdit     = "edit"
	TemplateShopping = "shopping"
	TemplateError    = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").
		Funcs(template.FuncMap{
			"formatBytes": util.FormatBytes,
			"join":        strings.Join,
			"stars":       stars,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
