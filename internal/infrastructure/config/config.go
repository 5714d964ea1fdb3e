package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	MongoURI          string
	DatabaseName      string
	JWTSecret         string
	AccessTokenExpiry time.Duration
	Port              string
	AppBaseURL        string
	SendEnquiryEmails bool
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	SMTPFrom          string
}

// Load creates a new Config instance, reading values from environment
// variables with fallback defaults.
func Load() *Config {
	return &Config{
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("MONGODB_DB_NAME", "edulist"),
		// WARNING: the fallback secret ships in source. Set JWT_SECRET in any
		// real deployment.
		JWTSecret:         getEnv("JWT_SECRET", "edulist-dev-secret-key"),
		AccessTokenExpiry: time.Hour * time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)),
		Port:              getEnv("PORT", "8080"),
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		SendEnquiryEmails: getEnvAsBool("SEND_ENQUIRY_EMAILS", false),
		SMTPHost:          getEnv("EMAIL_HOST", ""),
		SMTPPort:          getEnv("EMAIL_PORT", "587"),
		SMTPUsername:      getEnv("EMAIL_USERNAME", ""),
		SMTPPassword:      getEnv("EMAIL_APP_PASSWORD", ""),
		SMTPFrom:          getEnv("EMAIL_FROM", "no-reply@edulist.local"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetSendEnquiryEmails returns whether enquiry notification mail is enabled.
func (c *Config) GetSendEnquiryEmails() bool {
	return c.SendEnquiryEmails
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
