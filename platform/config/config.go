// Package config provides application configuration loading.
// It belongs to the platform layer and carries no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Modules depend on the narrow interface covering the settings they use,
// not on the full Config struct.

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for outbound SMTP email.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// RedisConfig provides settings for the task queue backend.
type RedisConfig interface {
	GetRedisAddr() string
	GetRedisPassword() string
}

// SchedulerConfig provides settings for the asynq client and worker.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// MinIOConfig provides settings for S3-compatible object storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketAppointmentAttachments() string
	IsMinIOEnabled() bool
}

// AppConfig provides settings shared by user-facing links and emails.
type AppConfig interface {
	GetAppBaseURL() string
}

// Config holds all application configuration values.
type Config struct {
	Env                               string
	HTTPAddr                          string
	DatabaseURL                       string
	JWTAccessSecret                   string
	CORSAllowAll                      bool
	CORSOrigins                       []string
	CORSAllowCreds                    bool
	AppBaseURL                        string
	EmailEnabled                      bool
	SMTPHost                          string
	SMTPPort                          int
	SMTPUsername                      string
	SMTPPassword                      string
	EmailFromName                     string
	EmailFromAddress                  string
	RedisAddr                         string
	RedisPassword                     string
	AsynqQueueName                    string
	AsynqConcurrency                  int
	ReminderLeadTime                  time.Duration
	MinIOEndpoint                     string
	MinIOAccessKey                    string
	MinIOSecretKey                    string
	MinIOUseSSL                       bool
	MinIOMaxFileSize                  int64
	MinioBucketAppointmentAttachments string
}

func (c *Config) GetDatabaseURL() string     { return c.DatabaseURL }
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

func (c *Config) GetRedisAddr() string      { return c.RedisAddr }
func (c *Config) GetRedisPassword() string  { return c.RedisPassword }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

func (c *Config) GetMinIOEndpoint() string   { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string  { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string  { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool       { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64 { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketAppointmentAttachments() string {
	return c.MinioBucketAppointmentAttachments
}
func (c *Config) IsMinIOEnabled() bool { return c.MinIOEndpoint != "" }

func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

// Load reads configuration from environment variables, with .env support
// for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                               getEnv("APP_ENV", "development"),
		HTTPAddr:                          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:                       getEnv("DATABASE_URL", ""),
		JWTAccessSecret:                   getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:                      corsAllowAll,
		CORSOrigins:                       corsOrigins,
		CORSAllowCreds:                    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AppBaseURL:                        getEnv("APP_BASE_URL", "http://localhost:4200"),
		EmailEnabled:                      emailEnabled && smtpHost != "",
		SMTPHost:                          smtpHost,
		SMTPPort:                          mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:                      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:                      getEnv("SMTP_PASSWORD", ""),
		EmailFromName:                     getEnv("EMAIL_FROM_NAME", "CarePortal"),
		EmailFromAddress:                  getEnv("EMAIL_FROM_ADDRESS", ""),
		RedisAddr:                         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:                     getEnv("REDIS_PASSWORD", ""),
		AsynqQueueName:                    getEnv("ASYNQ_QUEUE_NAME", "default"),
		AsynqConcurrency:                  mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		ReminderLeadTime:                  mustDuration(getEnv("REMINDER_LEAD_TIME", "24h")),
		MinIOEndpoint:                     getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:                    getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:                    getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:                       strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:                  mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "10485760")),
		MinioBucketAppointmentAttachments: getEnv("MINIO_BUCKET_APPOINTMENT_ATTACHMENTS", "appointment-attachments"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
