package contact

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/joanpuche05/fisioterapiavilassar/internal/infrastructure/i18n"
)

// notificationTemplate is the fixed body of the email the practice receives.
// Field values are interpolated through html/template, so visitor input is
// always escaped.
const notificationTemplate = `<html>
<body>
	<h2>{{.Heading}}</h2>
	<p><strong>{{.Labels.Name}}:</strong> {{.Submission.Name}}</p>
	<p><strong>{{.Labels.Email}}:</strong> {{.Submission.Email}}</p>
	{{if .Submission.Phone}}<p><strong>{{.Labels.Phone}}:</strong> {{.Submission.Phone}}</p>
	{{end}}<p><strong>{{.Labels.Message}}:</strong></p>
	<p>{{.Submission.Message}}</p>
</body>
</html>
`

type emailLabels struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type emailData struct {
	Heading    string
	Labels     emailLabels
	Submission Submission
}

// Composer renders notification email bodies with labels in the locale the
// visitor submitted from. Pure: no I/O.
type Composer struct {
	store *i18n.Store
	tmpl  *htmltemplate.Template
}

// NewComposer creates a composer bound to the translation store
func NewComposer(store *i18n.Store) *Composer {
	return &Composer{
		store: store,
		tmpl:  htmltemplate.Must(htmltemplate.New("notification").Parse(notificationTemplate)),
	}
}

// Compose renders the notification body for one submission
func (c *Composer) Compose(sub Submission, locale i18n.Locale) (string, error) {
	data := emailData{
		Heading: c.store.Text(locale, "contacto.form.heading", "New contact form message"),
		Labels: emailLabels{
			Name:    c.store.Text(locale, "contacto.form.labels.nombre", "Name"),
			Email:   c.store.Text(locale, "contacto.form.labels.email", "Email"),
			Phone:   c.store.Text(locale, "contacto.form.labels.telefono", "Phone"),
			Message: c.store.Text(locale, "contacto.form.labels.mensaje", "Message"),
		},
		Submission: sub,
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compose notification email: %w", err)
	}
	return buf.String(), nil
}
