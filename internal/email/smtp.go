package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// sendWithSMTP sends an email through the configured SMTP relay.
func (s *Service) sendWithSMTP(data Data, textContent string) error {
	cfg := s.config.SMTP
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", data.From)
	fmt.Fprintf(&msg, "To: %s\r\n", data.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", data.Subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(textContent)

	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	return nil
}
