package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Params is the flat key/value payload a template is rendered from.
type Params map[string]string

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html><body style="font-family:sans-serif;background:#0d0d12;color:#f5f5f5;padding:24px">
<h1 style="color:#ff7518">Welcome to MCKVIE Halloween Hackathon 2025!</h1>
<p>Hi {{.teamLeaderName}},</p>
<p>Your team <strong>{{.teamName}}</strong> is registered. Keep your team ID handy, you will need it at check-in.</p>
<p style="font-size:24px;letter-spacing:2px"><strong>{{.teamId}}</strong></p>
<table cellpadding="4">
<tr><td>Team leader</td><td>{{.teamLeaderName}}</td></tr>
<tr><td>Email</td><td>{{.teamLeaderEmail}}</td></tr>
<tr><td>Phone</td><td>{{.teamLeaderPhone}}</td></tr>
<tr><td>Institution</td><td>{{.institution}}</td></tr>
<tr><td>Team size</td><td>{{.teamSize}}</td></tr>
<tr><td>Problem category</td><td>{{.problemCategory}}</td></tr>
<tr><td>Experience</td><td>{{.experience}}</td></tr>
<tr><td>Emergency contact</td><td>{{.emergencyContact}}</td></tr>
{{if .dietaryRequirements}}<tr><td>Dietary requirements</td><td>{{.dietaryRequirements}}</td></tr>{{end}}
</table>
<p>Join the participants' WhatsApp group: <a href="{{.whatsappLink}}">{{.whatsappLink}}</a></p>
<p>{{.from_name}}</p>
</body></html>
`))

var bulkTmpl = template.Must(template.New("bulk").Parse(`<!DOCTYPE html>
<html><body style="font-family:sans-serif;background:#0d0d12;color:#f5f5f5;padding:24px">
<h2 style="color:#ff7518">{{.p.hackathonName}}</h2>
<p>Team {{.p.teamName}} ({{.p.teamId}})</p>
{{.body}}
<p>Questions? Write to <a href="mailto:{{.p.contactEmail}}">{{.p.contactEmail}}</a>.</p>
<p>{{.p.from_name}}</p>
</body></html>
`))

var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderConfirmation(p Params) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering confirmation: %w", err)
	}
	return buf.String(), nil
}

// renderBulk renders the admin-written message as Markdown. Raw HTML in the
// message is dropped by goldmark's default renderer.
func renderBulk(p Params) (string, error) {
	var md bytes.Buffer
	if err := markdown.Convert([]byte(p["message"]), &md); err != nil {
		return "", fmt.Errorf("rendering message: %w", err)
	}

	var buf bytes.Buffer
	err := bulkTmpl.Execute(&buf, map[string]any{
		"p":    p,
		"body": template.HTML(md.String()),
	})
	if err != nil {
		return "", fmt.Errorf("rendering bulk email: %w", err)
	}
	return buf.String(), nil
}
