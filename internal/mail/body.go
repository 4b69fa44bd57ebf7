package mail

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"
)

// SubmissionSubject is the fixed subject line for survey deliveries.
const SubmissionSubject = "Ward Hazard Risk Survey Submission"

var htmlBodyTmpl = template.Must(template.New("body").Parse(`<html>
<body>
  <p>Dear {{.Name}},</p>
  <p>Thank you for completing the hazard risk assessment survey for ward
  <strong>{{.Ward}}</strong>, submitted on <strong>{{.Date}}</strong>.</p>
  <p><strong>Files attached:</strong></p>
  <ul>
{{- range .Files}}
    <li>{{.}}</li>
{{- end}}
  </ul>
  <p>Regards,<br>Disaster Risk Survey System</p>
</body>
</html>
`))

// SubmissionBody renders the plain-text and HTML bodies for a completed
// submission. Attachment paths are reduced to base names in the summary.
func SubmissionBody(name, ward string, date time.Time, attachments []string) (text, html string) {
	files := make([]string, len(attachments))
	for i, p := range attachments {
		files[i] = filepath.Base(p)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\n", name)
	fmt.Fprintf(&sb, "Thank you for completing the hazard risk assessment survey for ward %s, submitted on %s.\n\n",
		ward, date.Format("2006-01-02"))
	sb.WriteString("Files attached:\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "  - %s\n", f)
	}
	sb.WriteString("\nRegards,\nDisaster Risk Survey System\n")

	var hb strings.Builder
	data := struct {
		Name, Ward, Date string
		Files            []string
	}{name, ward, date.Format("2006-01-02"), files}
	if err := htmlBodyTmpl.Execute(&hb, data); err != nil {
		// Template is static; execution over plain strings cannot fail.
		return sb.String(), ""
	}
	return sb.String(), hb.String()
}
