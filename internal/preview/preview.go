// Package preview builds the embed preview page and manages the single
// preview surface it is shown on.
package preview

import (
	"bytes"
	"html/template"

	"github.com/leonardomso/figembed/internal/embed"
	"github.com/leonardomso/figembed/internal/marker"
)

// DefaultTitle is the <title> of the preview page.
const DefaultTitle = "Figma Embed"

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
      html, body {
        height: 100%;
        margin: 0;
      }
      iframe {
        border: none;
        height: 100%;
        width: 100%;
      }
    </style>
  </head>
  <body>
    <iframe src="{{.URL}}" allowfullscreen></iframe>
  </body>
</html>
`))

type page struct {
	Title string
	URL   string
}

// Request returns the preview page for the first marker in text that
// resolves to a URL. It returns false when there is none.
func Request(text string) (string, bool) {
	return RequestWithTitle(text, DefaultTitle)
}

// RequestWithTitle is Request with a custom page title.
func RequestWithTitle(text, title string) (string, bool) {
	u, ok := embed.FirstURL(marker.Extract(text))
	if !ok {
		return "", false
	}
	return Document(u, title), true
}

// Document wraps embedURL in a page with a single full-viewport frame.
func Document(embedURL, title string) string {
	if title == "" {
		title = DefaultTitle
	}
	var buf bytes.Buffer
	// The template is fixed and its inputs are plain strings; Execute cannot fail.
	_ = pageTemplate.Execute(&buf, page{Title: title, URL: embedURL})
	return buf.String()
}
