package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	DatabaseURL string // empty selects the in-memory store
	JWTSecret   string
	TokenTTL    time.Duration

	DemoEmail    string
	DemoPassword string
	SeedFile     string

	LogLevel  string
	LogFormat string
	LogFile   string

	LoginRPS   float64
	LoginBurst int
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(env("TOKEN_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	rps, err := strconv.ParseFloat(env("LOGIN_RPS", "5"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("LOGIN_RPS: %w", err)
	}
	burst, err := strconv.Atoi(env("LOGIN_BURST", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("LOGIN_BURST: %w", err)
	}

	cfg := Config{
		GRPCAddr:     env("GRPC_ADDR", ":50051"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     ttl,
		DemoEmail:    env("DEMO_EMAIL", "admin@test.com"),
		DemoPassword: env("DEMO_PASSWORD", "admin123"),
		SeedFile:     os.Getenv("SEED_FILE"),
		LogLevel:     env("LOG_LEVEL", "info"),
		LogFormat:    env("LOG_FORMAT", "text"),
		LogFile:      os.Getenv("LOG_FILE"),
		LoginRPS:     rps,
		LoginBurst:   burst,
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("GRPC_ADDR is empty"))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is empty"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.DemoEmail == "" || c.DemoPassword == "" {
		errs = append(errs, errors.New("DEMO_EMAIL and DEMO_PASSWORD are required"))
	}
	if c.LoginRPS <= 0 || c.LoginBurst < 1 {
		errs = append(errs, errors.New("LOGIN_RPS and LOGIN_BURST must be positive"))
	}
	return errors.Join(errs...)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
