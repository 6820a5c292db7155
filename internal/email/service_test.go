package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idracore/gms/internal/config"
	"github.com/idracore/gms/internal/email"
)

func TestPickProvider(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, email.ProviderNone, email.PickProvider(cfg))

	cfg.SMTP.Host = "smtp.example.com"
	assert.Equal(t, email.ProviderSMTP, email.PickProvider(cfg))

	// Sendgrid wins when both are configured.
	cfg.Sendgrid.APIKey = "SG.test"
	assert.Equal(t, email.ProviderSendgrid, email.PickProvider(cfg))
}

func TestSendWithoutProviderIsNoOp(t *testing.T) {
	svc, err := email.NewService(&config.Config{}, email.ProviderNone)
	require.NoError(t, err)

	err = svc.Send(email.Data{
		To:           "alice@example.com",
		TemplateName: "grievance_submitted",
		TemplateData: map[string]interface{}{},
	})
	assert.NoError(t, err)
}

func TestSendUnknownTemplate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMTP.Host = "smtp.example.com"

	svc, err := email.NewService(cfg, email.ProviderSMTP)
	require.NoError(t, err)

	err = svc.Send(email.Data{
		To:           "alice@example.com",
		TemplateName: "no_such_template",
	})
	assert.ErrorContains(t, err, "no email template named")
}
