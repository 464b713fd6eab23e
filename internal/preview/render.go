package preview

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/pkg/errors"
)

//go:embed templates/resume.html templates/style.css
var templateFS embed.FS

var resumeTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html"))

type renderData struct {
	Name string
	Doc  VisualDocument
}

// Render produces the self-contained HTML surface for doc with the
// stylesheet inlined, so the page needs no other files to display.
func Render(doc VisualDocument) (string, error) {
	data := renderData{Doc: doc}
	for _, s := range doc.Sections {
		if s.Kind == KindHeader && s.Header != nil {
			data.Name = s.Header.Name
		}
	}

	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "execute resume template")
	}
	html := buf.String()

	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return "", errors.Wrap(err, "read stylesheet")
	}
	cssBlock := "<style>" + string(css) + "</style>"
	if strings.Contains(html, "<head>") {
		html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
	} else {
		html = cssBlock + html
	}
	return html, nil
}
