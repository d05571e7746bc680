package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-only-insecure-secret"

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	DBUrl       string

	// DirectoryPath optionally overrides the embedded zone and cinema directory.
	DirectoryPath string

	Upstream UpstreamConfig

	RequestTimeout time.Duration

	JWTSecret           string
	JWTExpiry           time.Duration
	BotClientID         string
	BotClientSecretHash string

	CORSAllowedOrigins []string

	Email EmailConfig
}

// UpstreamConfig configures the chain backend clients.
type UpstreamConfig struct {
	CinehoytsHost string
	CinemarkHost  string
	Timeout       time.Duration
	RatePerSecond float64
	Concurrency   int
}

// EmailConfig configures the report mailer.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}
	return fromEnv(env)
}

func fromEnv(env string) (*Config, error) {
	var errs []error
	cfg := &Config{
		Environment:   env,
		Port:          getString("PORT", "8080"),
		DBUrl:         os.Getenv("DATABASE_URL"),
		DirectoryPath: os.Getenv("DIRECTORY_PATH"),
		Upstream: UpstreamConfig{
			CinehoytsHost: strings.TrimRight(getString("CINEHOYTS_HOST", "https://cinehoyts.cl"), "/"),
			CinemarkHost:  strings.TrimRight(getString("CINEMARK_HOST", "https://api.cinemark.cl/api"), "/"),
			Timeout:       getDuration("FETCH_TIMEOUT", 8*time.Second, &errs),
			RatePerSecond: getFloat("FETCH_RATE_PER_SEC", 10, &errs),
			Concurrency:   getInt("FETCH_CONCURRENCY", 4, &errs),
		},
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 60*time.Second, &errs),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTExpiry:           getDuration("JWT_EXPIRY", 24*time.Hour, &errs),
		BotClientID:         os.Getenv("BOT_CLIENT_ID"),
		BotClientSecretHash: os.Getenv("BOT_CLIENT_SECRET_HASH"),
		CORSAllowedOrigins:  getList("CORS_ALLOWED_ORIGINS"),
		Email: EmailConfig{
			Provider:              getString("EMAIL_PROVIDER", "noop"),
			FromAddress:           os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:              os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:             os.Getenv("AWS_REGION"),
			AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SESInsecureSkipVerify: getBool("SES_INSECURE_SKIP_VERIFY", false, &errs),
		},
	}

	if cfg.JWTSecret == "" {
		if env == "production" {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.Upstream.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("FETCH_CONCURRENCY must be at least 1, got %d", cfg.Upstream.Concurrency))
	}
	if cfg.Upstream.RatePerSecond <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_RATE_PER_SEC must be positive, got %v", cfg.Upstream.RatePerSecond))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func getInt(key string, def int, errs *[]error) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func getFloat(key string, def float64, errs *[]error) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func getBool(key string, def bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}
