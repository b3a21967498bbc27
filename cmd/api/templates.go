package api

import "html/template"

// pageTemplates holds the two server-rendered pages: the landing page and
// the task list.
func pageTemplates() *template.Template {
	return template.Must(template.New("").Parse(`
{{define "welcome.html"}}<!DOCTYPE html>
<html>
<head><title>Task Manager</title></head>
<body>
  <h1>Task Manager API</h1>
  <p>Welcome. See <a href="/api-docs">/api-docs</a> for the endpoint reference.</p>
  <p><a href="/tasks">Your tasks</a></p>
</body>
</html>{{end}}

{{define "tasks.html"}}<!DOCTYPE html>
<html>
<head><title>Your Tasks</title></head>
<body>
  <h1>Your Tasks</h1>
  {{if not .Authenticated}}
  <p>Log in via POST /api-auth/login and pass the bearer token to see your tasks.</p>
  {{end}}
  <table border="1" cellpadding="4">
    <tr><th>Title</th><th>Due</th><th>Priority</th><th>Status</th></tr>
    {{range .Tasks}}
    <tr>
      <td>{{.Title}}</td>
      <td>{{.DueDate.Format "2006-01-02 15:04"}}</td>
      <td>{{.Priority}}</td>
      <td>{{.Status}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>{{end}}
`))
}
