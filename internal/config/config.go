package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMaxConns int

	// Admin principal (single configured account)
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// JWT (optional; the admin guard is off while JWTSecret is empty)
	JWTSecret string
	JWTExpiry time.Duration

	// Credentials: "plain" or "bcrypt"
	PasswordMode string

	// Maintenance
	MaintenanceAt    string
	Timezone         string
	LogRetentionDays int

	// Server
	Port            string
	CORSOrigins     string
	RateLimitPerMin int
	SampleData      bool
	LogLevel        string

	// Observability
	SentryDSN string
	AppEnv    string
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env", "error", err)
	}

	return &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", ""),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", getEnv("DB_PASS", "")),
		DBName:     getEnv("DB_NAME", "donation"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMaxConns: parseInt(getEnv("DB_MAX_CONNS", "10"), 10),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "관리자"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "12h"), 12*time.Hour),

		PasswordMode: strings.ToLower(getEnv("PASSWORD_MODE", "plain")),

		MaintenanceAt:    getEnv("MAINTENANCE_AT", "00:05"),
		Timezone:         getEnv("TIMEZONE", "Asia/Seoul"),
		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		RateLimitPerMin: parseInt(getEnv("RATE_LIMIT_PER_MIN", "120"), 120),
		SampleData:      getEnv("SAMPLE_DATA", "on") != "off",
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	}

	port := c.DBPort
	if port == "" {
		port = "5432"
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + port +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// Location resolves Timezone, falling back to the host zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown TIMEZONE, using local time", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// AdminConfigured reports whether an admin login is available.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
