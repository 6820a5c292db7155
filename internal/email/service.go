// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/sendgrid/sendgrid-go"

	"github.com/idracore/gms/internal/config"
)

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"
	ProviderNone     Provider = "none"
)

// Data contains all necessary information for sending an email
type Data struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service handles outbound notification email. Sending is best-effort; the
// caller decides whether a failure matters.
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	templates      map[string]*template.Template
}

// NewService creates a new email service instance. ProviderNone yields a
// service whose Send is a no-op, used when no provider is configured.
func NewService(cfg *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:    cfg,
		provider:  provider,
		templates: make(map[string]*template.Template),
	}

	if provider == ProviderSendgrid {
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// PickProvider selects a provider from what the config has credentials for.
func PickProvider(cfg *config.Config) Provider {
	switch {
	case cfg.Sendgrid.APIKey != "":
		return ProviderSendgrid
	case cfg.SMTP.Host != "":
		return ProviderSMTP
	default:
		return ProviderNone
	}
}

func (s *Service) loadTemplates() error {
	for name, text := range notificationTemplates {
		tmpl, err := template.New(name).Parse(text)
		if err != nil {
			return fmt.Errorf("parsing template %q: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	return nil
}

// Send renders the named template and dispatches it via the configured
// provider.
func (s *Service) Send(data Data) error {
	if s.provider == ProviderNone {
		return nil
	}

	tmpl, ok := s.templates[data.TemplateName]
	if !ok {
		return fmt.Errorf("no email template named %q", data.TemplateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data.TemplateData); err != nil {
		return fmt.Errorf("rendering template %q: %w", data.TemplateName, err)
	}

	if data.From == "" {
		data.From = s.fromAddress()
	}

	switch s.provider {
	case ProviderSendgrid:
		return s.sendWithSendgrid(data, body.String())
	case ProviderSMTP:
		return s.sendWithSMTP(data, body.String())
	}
	return fmt.Errorf("unsupported email provider: %s", s.provider)
}

func (s *Service) fromAddress() string {
	if s.provider == ProviderSendgrid {
		return s.config.Sendgrid.From
	}
	return s.config.SMTP.From
}
