package api

import (
	"bytes"
	"html/template"
	"net/http"
)

var endpointList = []string{
	"POST /api/send-message",
	"POST /api/schedule-message",
	"GET  /api/scheduled",
	"GET  /api/messages?channel=CHANNEL_ID",
	"POST /api/update-message",
	"POST /api/delete-message",
	"GET  /api/channels",
}

const homeTemplate = `<!doctype html>
<html>
<head><title>Slack Sandbox Demo</title></head>
<body>
<h2>Slack Sandbox Demo</h2>
<p><a href="{{.InstallURL}}">Install to Slack (OAuth)</a></p>
<p>Use the API endpoints (curl / Postman) once installed.</p>
<hr/>
<p>Endpoints:</p>
<ul>
{{range .Endpoints}}<li>{{.}}</li>
{{end}}</ul>
</body>
</html>
`

const installedTemplate = `<!doctype html>
<html>
<head><title>Slack Sandbox Demo</title></head>
<body>
<p>App installed! Bot token saved. You can now close this window and use the demo endpoints.</p>
<pre>{{.Record}}</pre>
</body>
</html>
`

type homeData struct {
	InstallURL string
	Endpoints  []string
}

type installedData struct {
	Record string
}

type pages struct {
	tmpl *template.Template
}

func loadPages() *pages {
	tmpl := template.Must(template.New("home").Parse(homeTemplate))
	template.Must(tmpl.New("installed").Parse(installedTemplate))
	return &pages{tmpl: tmpl}
}

// render executes into a buffer so a template error never leaves a half
// written page behind.
func (p *pages) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
