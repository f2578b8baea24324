package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	// SiteDomain identifies this deployment in exhaustion alerts.
	SiteDomain string `koanf:"domain"`

	Server   ServerConfig   `koanf:"server"`
	Redis    RedisConfig    `koanf:"redis"`
	Database DatabaseConfig `koanf:"database"`

	EmailVerify EmailVerifyConfig `koanf:"email_verify"`
	PhoneVerify PhoneVerifyConfig `koanf:"phone_verify"`
	Alerting    AlertingConfig    `koanf:"alerting"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type RedisConfig struct {
	URL          string        `koanf:"url"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// DatabaseConfig configures the optional verification audit log.
// An empty URL disables persistence entirely.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int           `koanf:"max_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type EmailVerifyConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`

	// AcceptStatuses is the set of provider status codes treated as
	// deliverable. Provider vocabularies differ, so the set is
	// configuration rather than code.
	AcceptStatuses []string `koanf:"accept_statuses"`
}

type PhoneVerifyConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`

	// CountryPrefix is prepended to sanitized national digits to form the
	// number the lookup provider expects.
	CountryPrefix string `koanf:"country_prefix"`
}

type AlertingConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		SiteDomain:  "localhost",
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			URL:          "localhost:6379",
			DB:           0,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns:        10,
			ConnMaxLifetime: 5 * time.Minute,
		},
		EmailVerify: EmailVerifyConfig{
			BaseURL:        "https://api.emaillistverify.com",
			Timeout:        15 * time.Second,
			AcceptStatuses: []string{"ok", "ok_for_all", "accept_all", "unknown"},
		},
		PhoneVerify: PhoneVerifyConfig{
			BaseURL:       "https://apilayer.net",
			Timeout:       15 * time.Second,
			CountryPrefix: "1",
		},
		Alerting: AlertingConfig{
			Timeout: 15 * time.Second,
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Config file is optional
	if path == "" {
		path = "configs/leadshield.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Override with environment variables
	if err := k.Load(env.Provider("LEADSHIELD_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "LEADSHIELD_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.EmailVerify.BaseURL == "" {
		return fmt.Errorf("email_verify.base_url is required")
	}
	if c.PhoneVerify.BaseURL == "" {
		return fmt.Errorf("phone_verify.base_url is required")
	}
	if len(c.EmailVerify.AcceptStatuses) == 0 {
		return fmt.Errorf("email_verify.accept_statuses cannot be empty")
	}
	if c.PhoneVerify.CountryPrefix == "" {
		return fmt.Errorf("phone_verify.country_prefix is required")
	}
	return nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
