package templates

import (
	"embed"
	"html/template"
)

//go:embed *.gohtml
var files embed.FS

// Parse parses every embedded page template.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.gohtml")
}
