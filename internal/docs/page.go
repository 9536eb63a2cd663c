package docs

import (
	"bytes"
	"html/template"
)

//nolint:gochecknoglobals // parsed once
var pageTemplate = template.Must(template.New("docs").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
    <title>{{.Title}}</title>
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
  </head>
  <body>
    <elements-api
      apiDescriptionUrl="{{.SpecURL}}"
      router="hash"
      layout="sidebar"
    />
  </body>
</html>
`))

// renderPage returns the HTML page that loads the API reference UI from a
// CDN and points it at specURL.
func renderPage(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{Title: title, SpecURL: specURL})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
