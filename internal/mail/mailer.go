package mail

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/jordan-wright/email"
)

// Send delivers a plain-text message through the SMTP relay configured in
// the environment. Auth is only used when SMTP_USER is set.
func Send(to, subject, body string) error {
	addr := os.Getenv("SMTP_ADDR")
	from := os.Getenv("SMTP_FROM")
	if addr == "" || from == "" {
		return fmt.Errorf("SMTP_ADDR and SMTP_FROM must be configured")
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		host := addr
		if i := strings.Index(addr, ":"); i >= 0 {
			host = addr[:i]
		}
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)
	}

	return e.Send(addr, auth)
}
