package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	JWTSecret string
	Port      string
	Env       string
	LogLevel  string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string

	// AppURL is the public base URL used in confirmation links.
	AppURL string

	UploadDir     string
	QRDir         string
	MaxUploadSize int64

	AdminUsername string
	AdminPassword string
}

func NewConfigFromEnv() (*Config, error) {
	maxUploadSize, _ := strconv.ParseInt(getenv("MAX_UPLOAD_SIZE", "10485760"), 10, 64)

	cfg := &Config{
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "airsoft"),
		DBPass:    getenv("DB_PASSWORD", "airsoft"),
		DBName:    getenv("DB_NAME", "airsoft_db"),
		DBSSLMode: getenv("DB_SSLMODE", "disable"),

		JWTSecret: getenv("JWT_SECRET", ""),
		Port:      getenv("PORT", "8000"),
		Env:       getenv("ENV", "development"),
		LogLevel:  getenv("LOG_LEVEL", "info"),

		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     getenv("SMTP_USER", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		EmailFrom:    getenv("EMAIL_FROM", ""),

		AppURL: getenv("APP_URL", "http://localhost:3000"),

		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		QRDir:         getenv("QR_DIR", "./uploads/qrcodes"),
		MaxUploadSize: maxUploadSize,

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
