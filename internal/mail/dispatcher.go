// Package mail delivers exported survey files over an authenticated SMTP
// session.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Message is one outbound delivery: subject, bodies, recipients and the
// files to attach. Attachments are read in full at send time; survey
// bundles are a few KB to a few MB, so buffering them is acceptable.
type Message struct {
	Subject     string
	TextBody    string
	HTMLBody    string
	To          []string
	Attachments []string
}

// Dispatcher sends one message per call. A single attempt is made; callers
// wanting retry invoke Dispatch again.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

// SMTPDispatcher talks STARTTLS with PLAIN auth to a fixed relay.
type SMTPDispatcher struct {
	host     string
	port     int
	account  string
	password string
}

func NewSMTPDispatcher(host string, port int, account, password string) *SMTPDispatcher {
	return &SMTPDispatcher{host: host, port: port, account: account, password: password}
}

func (d *SMTPDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("dispatch: no recipients")
	}

	m := gomail.NewMsg()
	if err := m.From(d.account); err != nil {
		return fmt.Errorf("dispatch: sender address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("dispatch: recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}
	for _, path := range msg.Attachments {
		m.AttachFile(path)
	}

	client, err := gomail.NewClient(d.host,
		gomail.WithPort(d.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(d.account),
		gomail.WithPassword(d.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("dispatch: relay client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return nil
}
