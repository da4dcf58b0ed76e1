// Package web embeds the landing page template and its static assets.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// StaticFS holds everything served under /static
//
//go:embed static
var StaticFS embed.FS

// Templates parses the embedded HTML templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
