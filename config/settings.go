package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything the service reads from the environment.
// Optional integrations stay disabled while their keys are empty.
type Settings struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	PublicBaseURL  string
	AllowedOrigins []string

	AdminEmail    string
	AdminPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers     []string
	KafkaTopicPrefix string

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	AdminNotifyEmail string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	DigestSchedule string
}

// LoadSettings reads settings from environment variables, falling back to
// defaults. Call godotenv.Load first if a .env file should be honoured.
func LoadSettings() Settings {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC_PREFIX", "jastip")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("DIGEST_SCHEDULE", "0 9 * * *")
	v.AutomaticEnv()

	return Settings{
		Port:           v.GetString("PORT"),
		DatabaseURL:    v.GetString("DB_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiry:      time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),

		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopicPrefix: v.GetString("KAFKA_TOPIC_PREFIX"),

		SMTPHost:         v.GetString("SMTP_HOST"),
		SMTPPort:         v.GetInt("SMTP_PORT"),
		SMTPUser:         v.GetString("SMTP_USER"),
		SMTPPass:         v.GetString("SMTP_PASS"),
		AdminNotifyEmail: v.GetString("ADMIN_NOTIFY_EMAIL"),

		TwilioAccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       v.GetString("TWILIO_FROM"),

		DigestSchedule: v.GetString("DIGEST_SCHEDULE"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
