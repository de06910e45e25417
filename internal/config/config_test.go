package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DEFAULT_LOCALE", "ru")
	t.Setenv("BODY_LIMIT_MB", "5")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")

	cfg := Load()

	assert.Equal(t, "ru", cfg.Site.DefaultLocale)
	assert.Equal(t, 5, cfg.BodyLimitMB)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.MinIO.Enabled())
	assert.False(t, cfg.Mail.Enabled())
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DEFAULT_LOCALE", "IMAGE_BASE_URL", "MINIO_ENDPOINT", "MAILGUN_DOMAIN"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "en", cfg.Site.DefaultLocale)
	assert.Equal(t, defaultImageBaseURL, cfg.Site.ImageBaseURL)
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, 10, cfg.ContactRateLimit)
}

func TestMailConfig_Enabled(t *testing.T) {
	assert.False(t, MailConfig{Domain: "mg.example.com"}.Enabled())
	assert.False(t, MailConfig{Domain: "mg.example.com", APIKey: "key"}.Enabled())
	assert.True(t, MailConfig{Domain: "mg.example.com", APIKey: "key", Inbox: "info@example.com"}.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
