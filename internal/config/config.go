package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	SmtpHost     string
	SmtpPort     int
	SmtpUser     string
	SmtpPassword string
	SmtpFrom     string

	AppName              string
	TemplateDir          string
	DefaultSecurityEmail string
	SecurityEmailEnabled bool
	ReminderSweepEnabled bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "safety-go")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "safety")

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	SmtpFrom = getEnv("SMTP_FROM", "noreply@safety.local")

	AppName = getEnv("APP_NAME", "EHS Workplace Safety")
	TemplateDir = getEnv("EMAIL_TEMPLATE_DIR", "templates/email")
	DefaultSecurityEmail = getEnv("DEFAULT_SECURITY_EMAIL", "")
	SecurityEmailEnabled, _ = strconv.ParseBool(getEnv("SECURITY_EMAIL_ENABLED", "true"))
	// disable when the standalone scheduler binary owns the sweep
	ReminderSweepEnabled, _ = strconv.ParseBool(getEnv("REMINDER_SWEEP_ENABLED", "true"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
