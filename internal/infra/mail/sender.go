package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/shirshiz/studio-crm/internal/entity"
	"github.com/shirshiz/studio-crm/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

var dealClosedTmpl = template.Must(template.New("dealClosed").Parse(`
<div dir="rtl">
  <h2>🎉 עסקה נסגרה!</h2>
  <p><b>{{.Name}}</b> סגרה עסקה על סך ₪{{.Quote}}.</p>
  {{if .EventType}}<p>סוג אירוע: {{.EventType}}</p>{{end}}
  <p>תאריך סגירה: {{.ClosedAt}}</p>
</div>
`))

// SendDealClosed mails the studio owner when a lead closes.
func (s *EmailSender) SendDealClosed(payload queue.DealClosedPayload) error {
	data := dealClosedEmailData{
		Name:      payload.Name,
		Quote:     fmt.Sprintf("%.0f", payload.Quote),
		EventType: entity.EventTypeLabel(payload.EventType),
		ClosedAt:  payload.ClosedAt,
	}

	var body bytes.Buffer
	if err := dealClosedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering deal-closed email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("עסקה חדשה נסגרה: %s", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP mail: %w", err)
	}
	return nil
}
