// Package mailer sends templated HTML notification emails over SMTP.
// Delivery is best-effort; callers decide whether a failure matters.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Sender is the email collaborator boundary consumed by the notification
// router and the reminder sweep.
type Sender interface {
	SendTemplated(to []string, subject, templateName string, placeholders map[string]string, cc []string) error
}

type Config struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	AppName     string
	TemplateDir string
}

type SMTPMailer struct {
	cfg Config
}

func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) loadTemplate(name string) (string, error) {
	path := filepath.Join(m.cfg.TemplateDir, name+".html")
	body, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(body), nil
}

// Populate replaces {{Key}} markers with the given values.
func Populate(template string, placeholders map[string]string) string {
	for key, val := range placeholders {
		template = strings.ReplaceAll(template, "{{"+key+"}}", val)
	}
	return template
}

func (m *SMTPMailer) SendTemplated(to []string, subject, templateName string, placeholders map[string]string, cc []string) error {
	template, err := m.loadTemplate(templateName)
	if err != nil {
		return err
	}
	body := Populate(template, placeholders)
	subject = m.cfg.AppName + " - " + subject

	var msg strings.Builder
	msg.WriteString("From: " + m.cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ",") + "\r\n")
	if len(cc) > 0 {
		msg.WriteString("Cc: " + strings.Join(cc, ",") + "\r\n")
	}
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	recipients := append(append([]string{}, to...), cc...)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	log.WithFields(log.Fields{
		"to":       strings.Join(to, ","),
		"cc":       strings.Join(cc, ","),
		"subject":  subject,
		"template": templateName,
	}).Info("sending email")

	if err := smtp.SendMail(addr, auth, m.cfg.From, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
