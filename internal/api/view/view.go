// Package view renders the dashboard pages from embedded html/template files.
// Every page is parsed together with layout.html and executed through the
// "layout" template.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Page is the data every template receives.
type Page struct {
	Title   string
	Session *domain.Session
	Flash   *domain.Flash
	// FormID identifies this rendered form instance for the submission guard.
	FormID string
	Data   any
}

var funcs = template.FuncMap{
	"display":   domain.FormatDisplay,
	"editValue": domain.EditValue,
	"hours": func(h float64) string {
		return strconv.FormatFloat(h, 'f', -1, 64)
	},
	"duration": func(e domain.TimeEntry) string {
		d := e.Duration().Round(time.Minute)
		return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
	},
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(files, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.pages[strings.TrimSuffix(path.Base(name), ".html")] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
