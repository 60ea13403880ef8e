package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/Zachkp/portfolio/internal/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads every page and fragment. placeholder is substituted for
// images that fail to load in the browser.
func parseTemplates(placeholder string) (*template.Template, error) {
	return template.New("").Funcs(funcMap(placeholder)).ParseFS(templateFS, "templates/*.html")
}

func funcMap(placeholder string) template.FuncMap {
	funcs := ui.FuncMap()
	funcs["placeholder"] = func() string { return placeholder }
	funcs["year"] = func() int { return time.Now().Year() }
	funcs["date"] = func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") }
	return funcs
}
