package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime configuration, populated from environment
// variables with development defaults.
type Config struct {
	HTTPAddr      string
	GinMode       string
	LogLevel      string
	SessionSecret string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Cron specifications for the two background sweeps.
	StatusSweepSpec   string
	ReminderSweepSpec string
}

// Load reads configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_SECRET", "default-secret-key-change-me")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "volunteer")
	v.SetDefault("DB_PASSWORD", "volunteer")
	v.SetDefault("DB_NAME", "volunteer_platform")

	v.SetDefault("SMTP_ENABLED", false)
	v.SetDefault("SMTP_HOST", "localhost")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "noreply@volunteer-platform.local")

	v.SetDefault("STATUS_SWEEP_SPEC", "@midnight")
	v.SetDefault("REMINDER_SWEEP_SPEC", "0 8 * * *")

	return &Config{
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		GinMode:       v.GetString("GIN_MODE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		SessionSecret: v.GetString("SESSION_SECRET"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),

		SMTPEnabled:  v.GetBool("SMTP_ENABLED"),
		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUsername: v.GetString("SMTP_USERNAME"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		SMTPFrom:     v.GetString("SMTP_FROM"),

		StatusSweepSpec:   v.GetString("STATUS_SWEEP_SPEC"),
		ReminderSweepSpec: v.GetString("REMINDER_SWEEP_SPEC"),
	}
}
