// Package config loads the service configuration.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. a .env file in the working directory (ENV_FILE overrides the path)
//  3. an optional YAML file named by CONFIG_FILE
//  4. environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	env "sk-api/pkg/config"
)

const minSecretLength = 32

var weakSecrets = []string{"secret", "password", "test", "admin", "default", "changeme"}

// Config is the complete service configuration.
type Config struct {
	Port     int      `yaml:"port"`
	Version  string   `yaml:"version"`
	LogLevel string   `yaml:"log_level"`
	DB       DB       `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Login    Login    `yaml:"login_rate_limit"`
	Tracing  Tracing  `yaml:"tracing"`
	HTTP     HTTPOpts `yaml:"http"`
}

type DB struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

// Login throttles the anonymous register and login endpoints per client IP.
type Login struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

type Tracing struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

type HTTPOpts struct {
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:     8080,
		Version:  "dev",
		LogLevel: "info",
		DB: DB{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			AutoMigrate:     true,
		},
		Auth: Auth{
			TokenTTL:   7 * 24 * time.Hour,
			BcryptCost: bcrypt.DefaultCost,
		},
		Login: Login{PerSecond: 1, Burst: 5},
		Tracing: Tracing{
			SampleRatio: 1,
		},
		HTTP: HTTPOpts{
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
	}
}

// Load builds the configuration from every source and validates it.
func Load() (Config, error) {
	envFile := env.GetEnvString("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current value.
func loadFile(path string, cfg *Config) error {
	// #nosec G304 -- path comes from the operator's environment, not from requests
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = env.GetEnvInt("PORT", cfg.Port)
	cfg.Version = env.GetEnvString("VERSION", cfg.Version)
	cfg.LogLevel = env.GetEnvString("LOG_LEVEL", cfg.LogLevel)

	cfg.DB.URL = env.GetEnvString("DATABASE_URL", cfg.DB.URL)
	cfg.DB.MaxOpenConns = env.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = env.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)
	cfg.DB.ConnMaxLifetime = env.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.DB.ConnMaxLifetime)
	cfg.DB.ConnMaxIdleTime = env.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.DB.ConnMaxIdleTime)
	cfg.DB.AutoMigrate = env.GetEnvBool("DB_AUTO_MIGRATE", cfg.DB.AutoMigrate)

	cfg.Auth.JWTSecret = env.GetEnvString("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = env.GetEnvDuration("JWT_TTL", cfg.Auth.TokenTTL)
	cfg.Auth.BcryptCost = env.GetEnvInt("BCRYPT_COST", cfg.Auth.BcryptCost)

	cfg.Login.PerSecond = env.GetEnvFloat("LOGIN_RATE_LIMIT", cfg.Login.PerSecond)
	cfg.Login.Burst = env.GetEnvInt("LOGIN_RATE_BURST", cfg.Login.Burst)

	cfg.Tracing.SampleRatio = env.GetEnvFloat("OTEL_SAMPLE_RATIO", cfg.Tracing.SampleRatio)

	cfg.HTTP.ReadHeaderTimeout = env.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", cfg.HTTP.ReadHeaderTimeout)
	cfg.HTTP.ShutdownTimeout = env.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.DB.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.DB.MaxOpenConns <= 0 || c.DB.MaxIdleConns < 0 {
		errs = append(errs, errors.New("database pool sizes must be positive"))
	}
	if err := validateSecret(c.Auth.JWTSecret); err != nil {
		errs = append(errs, err)
	}
	if err := env.ValidateDurationRange(c.Auth.TokenTTL, time.Minute, 30*24*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("JWT_TTL: %w", err))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Login.PerSecond <= 0 || c.Login.Burst <= 0 {
		errs = append(errs, errors.New("login rate limit and burst must be positive"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLE_RATIO must be within [0, 1], got %v", c.Tracing.SampleRatio))
	}
	for name, d := range map[string]time.Duration{
		"HTTP_READ_HEADER_TIMEOUT": c.HTTP.ReadHeaderTimeout,
		"HTTP_SHUTDOWN_TIMEOUT":    c.HTTP.ShutdownTimeout,
		"DB_CONN_MAX_LIFETIME":     c.DB.ConnMaxLifetime,
	} {
		if err := env.ValidatePositiveDuration(d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func validateSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if lower == weak || lower == weak+"123" || strings.Trim(lower, weak) == "" {
			return fmt.Errorf("JWT_SECRET must not be a common weak value (%q)", weak)
		}
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters, got %d", minSecretLength, len(secret))
	}
	return nil
}

// LogValue hides secrets when the configuration is logged.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", c.Port),
		slog.String("version", c.Version),
		slog.String("log_level", c.LogLevel),
		slog.Int("db_max_open_conns", c.DB.MaxOpenConns),
		slog.Bool("db_auto_migrate", c.DB.AutoMigrate),
		slog.Duration("token_ttl", c.Auth.TokenTTL),
		slog.Int("bcrypt_cost", c.Auth.BcryptCost),
		slog.Float64("otel_sample_ratio", c.Tracing.SampleRatio),
	)
}
