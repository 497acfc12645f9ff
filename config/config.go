package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds all environment-driven configuration. It is built once in
// main and passed to the components that need it; nothing reads the
// environment after startup.
type Settings struct {
	ProjectName string
	Environment string
	Port        string
	ChatPort    string

	DatabaseURL string
	RedisAddr   string

	SecretKey string

	OpenAIAPIKey string
	Model        string

	AllowedOrigins []string

	StripeAPIKey      string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
}

// New loads a .env file if present and builds Settings from the environment.
func New() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return Settings{
		ProjectName: getenv("PROJECT_NAME", "MedSpa Agent"),
		Environment: getenv("ENVIRONMENT", "development"),
		Port:        getenv("PORT", "8000"),
		ChatPort:    getenv("CHAT_PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		SecretKey: getenv("SECRET_KEY", "changeme"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Model:        getenv("MODEL", "gpt-4o-mini"),

		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),

		StripeAPIKey:     os.Getenv("STRIPE_API_KEY"),
		TwilioAccountSID: os.Getenv("TWILIO_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  smtpPort,
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
	}
}

// CORSOrigins returns the comma-joined origin list for the fiber CORS
// middleware, or "*" when none are configured.
func (s Settings) CORSOrigins() string {
	if len(s.AllowedOrigins) == 0 {
		return "*"
	}
	return strings.Join(s.AllowedOrigins, ",")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
