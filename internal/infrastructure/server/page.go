package server

import "html/template"

//nolint:gochecknoglobals // parsed once at startup
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>GitHub to Local Guide</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
input[type=text] { width: 70%; padding: .4rem; }
.error { color: #b00020; }
.warning { color: #8a6d00; }
.success { color: #1b7f3b; }
article { border-top: 1px solid #ddd; margin-top: 1rem; }
</style>
</head>
<body>
<h1>&#x1F680; GitHub Project Implementation Guide</h1>
<form method="post" action="/guide">
<label for="url">GitHub Repository URL:</label><br>
<input type="text" id="url" name="url" value="{{.URL}}" placeholder="https://github.com/owner/repo">
<button type="submit">Generate Guide</button>
</form>
{{if .Error}}<p class="{{.ErrorClass}}">{{.Error}}</p>{{end}}
{{if .Guide}}
<p class="success">Guide Generated!</p>
<article>{{.GuideHTML}}</article>
<form method="post" action="/download">
<input type="hidden" name="name" value="{{.FileName}}">
<textarea name="guide" hidden>{{.Guide}}</textarea>
<button type="submit">Download Guide</button>
</form>
{{end}}
</body>
</html>
`))

type pageData struct {
	URL        string
	Error      string
	ErrorClass string
	Guide      string
	GuideHTML  template.HTML
	FileName   string
}
