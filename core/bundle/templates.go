package bundle

import (
	"bytes"
	"embed"
	"text/template"

	"botforge/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

func render(name string, data any) string {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, name, data)
	// templates are compiled into the binary and only see plain strings
	utils.AssertInvariant(err == nil, "failed to render "+name)
	return buf.String()
}
