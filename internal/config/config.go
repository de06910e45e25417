package config

import (
	"os"
	"strconv"
)

// MinIOConfig holds object storage settings for MinIO.
// Storage only serves page media (program and gallery images); it is optional.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether enough settings are present to build a client.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// MailConfig holds settings for forwarding contact-form messages through Mailgun.
type MailConfig struct {
	Domain    string
	APIKey    string
	APIBase   string
	FromEmail string
	FromName  string
	Inbox     string
}

// Enabled reports whether Mailgun forwarding is configured.
func (c MailConfig) Enabled() bool {
	return c.Domain != "" && c.APIKey != "" && c.Inbox != ""
}

// SiteConfig holds settings that shape the rendered page.
type SiteConfig struct {
	DefaultLocale string
	ImageBaseURL  string
	// PresignMedia redirects /media requests to pre-signed URLs instead of streaming through the app.
	PresignMedia bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	LogLevel         string
	BodyLimitMB      int
	ContactRateLimit int
	Site             SiteConfig
	MinIO            MinIOConfig
	Mail             MailConfig
}

const defaultImageBaseURL = "https://cdn.poehali.dev/projects/a5b6483e-84dc-45f3-8f74-ac01941e04be/files/"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		BodyLimitMB:      getEnvInt("BODY_LIMIT_MB", 20),
		ContactRateLimit: getEnvInt("CONTACT_RATE_LIMIT", 10),
		Site: SiteConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			ImageBaseURL:  getEnv("IMAGE_BASE_URL", defaultImageBaseURL),
			PresignMedia:  getEnvBool("MEDIA_PRESIGN", false),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Mail: MailConfig{
			Domain:    getEnv("MAILGUN_DOMAIN", ""),
			APIKey:    getEnv("MAILGUN_API_KEY", ""),
			APIBase:   getEnv("MAILGUN_API_BASE", ""),
			FromEmail: getEnv("EMAIL_FROM_ADDRESS", "noreply@triptogether.com"),
			FromName:  getEnv("EMAIL_FROM_NAME", "Trip Together"),
			Inbox:     getEnv("CONTACT_INBOX", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
