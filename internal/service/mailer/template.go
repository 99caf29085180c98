package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

const letterLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{ .Title }}</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; }
.header { border-bottom: 2px solid #0066cc; padding-bottom: 20px; margin-bottom: 30px; }
.footer { border-top: 1px solid #ddd; padding-top: 20px; margin-top: 30px; font-size: 12px; color: #666; }
h1, h2, h3 { color: #0066cc; }
.signature { margin-top: 40px; }
</style>
</head>
<body>
<div class="header">
<h1>{{ .Heading | default "Changes to project documentation" }}</h1>
<p><strong>Date:</strong> {{ .Date | date "02.01.2006" }}</p>
</div>
<div class="content">
{{ .Content }}
</div>
{{- if .Signature }}
<div class="signature">
<p>{{ .Signature }}</p>
</div>
{{- end }}
<div class="footer">
<p>This message was generated automatically by the documentation change request system.</p>
<p>If you have any questions, please contact our department.</p>
</div>
</body>
</html>
`

var letterTemplate = template.Must(template.New("letter").Funcs(sprig.FuncMap()).Parse(letterLayout))

// letterView is the data rendered into letterLayout. Content is trusted HTML
// produced by composition or edited by staff.
type letterView struct {
	Title     string
	Heading   string
	Date      time.Time
	Content   template.HTML
	Signature template.HTML
}

const defaultSignature = template.HTML("Kind regards,<br>Project engineering department")

func renderLetter(v letterView) (string, error) {
	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render letter: %w", err)
	}
	return buf.String(), nil
}
