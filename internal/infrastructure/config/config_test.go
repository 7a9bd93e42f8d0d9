package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without config file or env", func(t *testing.T) {
		viper.Reset()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 4321, cfg.Server.Port)
		assert.Equal(t, "ca", cfg.Site.DefaultLocale)
		assert.Equal(t, 587, cfg.Email.SMTPPort)
		assert.Equal(t, "https://challenges.cloudflare.com/turnstile/v0/siteverify", cfg.Captcha.VerifyURL)
	})

	t.Run("deployment env vars override defaults", func(t *testing.T) {
		viper.Reset()
		t.Setenv("PORT", "8080")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_PORT", "465")
		t.Setenv("SMTP_USER", "mailer")
		t.Setenv("SMTP_PASSWORD", "secret")
		t.Setenv("SMTP_FROM_EMAIL", "web@example.com")
		t.Setenv("RECIPIENT_EMAIL", "practice@example.com")
		t.Setenv("TURNSTILE_SECRET_KEY", "ts-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
		assert.Equal(t, 465, cfg.Email.SMTPPort)
		assert.Equal(t, "mailer", cfg.Email.SMTPUser)
		assert.Equal(t, "secret", cfg.Email.SMTPPassword)
		assert.Equal(t, "web@example.com", cfg.Email.FromAddress)
		assert.Equal(t, "practice@example.com", cfg.Email.Recipient)
		assert.Equal(t, "ts-secret", cfg.Captcha.SecretKey)
	})

	t.Run("prefixed env vars override site settings", func(t *testing.T) {
		viper.Reset()
		t.Setenv("FISIO_SITE_DEFAULT_LOCALE", "es")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "es", cfg.Site.DefaultLocale)
	})

	t.Run("Get returns the loaded config", func(t *testing.T) {
		viper.Reset()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Same(t, cfg, Get())
	})
}
