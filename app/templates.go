package app

import "html/template"

// The pages are deliberately bare. They exist so the handlers have something
// to render and the flow can be exercised end to end; styling them is a
// frontend concern.
const pages = `
{{define "flash"}}{{with .Flash}}<p class="flash {{.Category}}">{{.Text}}</p>{{end}}{{end}}

{{define "login.html"}}<!DOCTYPE html>
<html><head><title>Login</title></head><body>
{{template "flash" .}}
<h1>Login</h1>
<form method="POST" action="/login">
<input type="email" name="email" placeholder="Email" required>
<input type="password" name="password" placeholder="Password" required>
<button type="submit">Login</button>
</form>
<a href="/register">Register</a>
</body></html>{{end}}

{{define "register.html"}}<!DOCTYPE html>
<html><head><title>Register</title></head><body>
{{template "flash" .}}
<h1>Register</h1>
<form method="POST" action="/register">
<input type="text" name="username" placeholder="Username" required>
<input type="email" name="email" placeholder="Email" required>
<input type="password" name="password" placeholder="Password" required>
<button type="submit">Register</button>
</form>
<a href="/login">Login</a>
</body></html>{{end}}

{{define "dashboard.html"}}<!DOCTYPE html>
<html><head><title>Dashboard</title></head><body>
{{template "flash" .}}
<h1>Welcome, {{.User.Username}}</h1>
<ul>
<li>ID: {{.User.ID}}</li>
<li>Username: {{.User.Username}}</li>
<li>Email: {{.User.Email}}</li>
</ul>
<a href="/profile">Profile</a> <a href="/upload_review">Upload review</a> <a href="/logout">Logout</a>
</body></html>{{end}}

{{define "profile.html"}}<!DOCTYPE html>
<html><head><title>Profile</title></head><body>
{{template "flash" .}}
<h1>Profile</h1>
<form method="POST" action="/profile">
<input type="text" name="username" value="{{.User.Username}}" required>
<input type="email" name="email" value="{{.User.Email}}" required>
<button type="submit">Update</button>
</form>
<h2>Your reviews</h2>
<ul>
{{range .Reviews}}<li>{{.UploadedAt.Format "2006-01-02 15:04"}}: {{.ReviewText}}</li>{{else}}<li>No reviews yet.</li>{{end}}
</ul>
<a href="/dashboard">Dashboard</a> <a href="/logout">Logout</a>
</body></html>{{end}}

{{define "upload_review.html"}}<!DOCTYPE html>
<html><head><title>Upload review</title></head><body>
{{template "flash" .}}
<h1>Upload review</h1>
<form method="POST" action="/upload_review">
<textarea name="raw_review" placeholder="Write your review" required></textarea>
<button type="submit">Submit</button>
</form>
<a href="/dashboard">Dashboard</a>
</body></html>{{end}}

{{define "error.html"}}<!DOCTYPE html>
<html><head><title>Something went wrong</title></head><body>
<h1>Something went wrong</h1>
<p>Please try again later. Request ID: {{.RequestID}}</p>
</body></html>{{end}}
`

func loadTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pages))
}
