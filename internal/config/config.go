package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	StoreTimeout time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	// AdminPasswordHashes maps lower-cased admin email to a bcrypt hash.
	// Read-only after startup; the remote allow-list can grant access to an
	// email, but only emails present here can actually log in.
	AdminPasswordHashes map[string]string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Waitlist    string
	AdminEmails string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Waitlist:    getEnv("DYNAMO_TABLE_WAITLIST", "waitlist"),
			AdminEmails: getEnv("DYNAMO_TABLE_ADMIN_EMAILS", "admin_emails"),
		},
		StoreTimeout: time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 5)) * time.Second,

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_DAYS", 7)) * 24 * time.Hour,

		AdminPasswordHashes: parseAdminHashes(getEnv("ADMIN_PASSWORD_HASHES", "")),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsProduction reports whether the app runs in production. Session cookies
// are only marked Secure when it does.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// parseAdminHashes parses "email:bcrypt-hash,email:bcrypt-hash" pairs.
// Bcrypt hashes contain no colons or commas, so plain splitting is safe.
// Emails are lower-cased; malformed pairs are skipped.
func parseAdminHashes(raw string) map[string]string {
	hashes := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		email, hash, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || email == "" || hash == "" {
			continue
		}
		hashes[strings.ToLower(email)] = hash
	}
	return hashes
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
