package server

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"fmtDate": func(t time.Time) string {
			return t.Format("02 Jan 2006")
		},
		"fmtFloat": func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
	}).ParseFS(templatesFS, "templates/*.html"),
)
