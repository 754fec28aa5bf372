package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// insecureDefaultSecret is only acceptable in development.
const insecureDefaultSecret = "supersecretkey"

type Config struct {
	Addr                string        `yaml:"addr"`
	JWTSecret           string        `yaml:"jwt_secret"`
	APITimeout          time.Duration `yaml:"timeout"`
	DatabasePath        string        `yaml:"database_path"`
	TokenDuration       time.Duration `yaml:"token_duration"`
	RequireConfirmation bool          `yaml:"require_confirmation"`
	RateLimit           RateLimit     `yaml:"rate_limit"`
}

// RateLimit configures the per-IP limiter applied to the auth endpoints.
type RateLimit struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("BJL_ADDR", ":8080"),
		JWTSecret:     getEnv("BJL_JWT_SECRET", insecureDefaultSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("BJL_DATABASE_PATH", "centralbjl.db"),
		TokenDuration: 24 * time.Hour,
		RateLimit: RateLimit{
			PerMinute: 30,
			Burst:     10,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values that must not reach production.
// The development environment (BJL_ENV=development) is exempt from the JWT
// secret check so a bare checkout still starts.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must be set")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must be set")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must be set")
	}
	if c.JWTSecret == insecureDefaultSecret && os.Getenv("BJL_ENV") != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set BJL_JWT_SECRET")
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit values must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
