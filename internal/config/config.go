package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	AppEnv        string
	LogLevel      string
	MongoURI      string
	MongoDatabase string
	AccessSecret  string
	TokenTTL      time.Duration
	StripeKey     string
	CORSOrigins   []string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	OptionsCacheTTL time.Duration

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
}

// LoadConfig reads .env when present and then the process environment.
// Secrets are not required here; a missing one surfaces when it is used.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		AppEnv:          getEnv("APP_ENV", "production"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MongoURI:        mongoURI(),
		MongoDatabase:   getEnv("MONGO_DATABASE", "doctorsPortal"),
		AccessSecret:    getEnv("ACCESS_TOKEN", ""),
		TokenTTL:        getEnvDuration("TOKEN_TTL", time.Hour),
		StripeKey:       getEnv("STRIPE_SECRET_KEY", ""),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		OptionsCacheTTL: getEnvDuration("OPTIONS_CACHE_TTL", 5*time.Minute),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		EmailUser:       getEnv("EMAIL_USER", ""),
		EmailPass:       getEnv("EMAIL_PASS", ""),
	}

	if cfg.AccessSecret == "" {
		logrus.Warn("ACCESS_TOKEN is NOT SET.")
	}
	if cfg.StripeKey == "" {
		logrus.Warn("STRIPE_SECRET_KEY is NOT SET.")
	}
	return cfg
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.EmailUser != ""
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != "" && c.OptionsCacheTTL > 0
}

// mongoURI prefers MONGO_URI and otherwise assembles an Atlas URI from the
// DB_USER, DB_PASSWORD and DB_HOST parts.
func mongoURI() string {
	if uri := getEnv("MONGO_URI", ""); uri != "" {
		return uri
	}
	host := getEnv("DB_HOST", "")
	if host == "" {
		return "mongodb://localhost:27017"
	}
	user := url.UserPassword(getEnv("DB_USER", ""), getEnv("DB_PASSWORD", ""))
	return fmt.Sprintf("mongodb+srv://%s@%s/?retryWrites=true&w=majority", user.String(), host)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logrus.Warnf("%s=%q is not an integer, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		logrus.Warnf("%s=%q is not a duration, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
