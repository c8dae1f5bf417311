// Package config loads app config from env and an optional .env file using Viper.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// ServerAddr is the address the HTTP server listens on (e.g. :3000).
	ServerAddr string `mapstructure:"SERVER_ADDR"`
	// DatabaseDSN is the sqlite DSN backing the credential store.
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`
	// JWTSecret signs session tokens; the server refuses to start without it.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// TokenExpiration is the session token lifetime in hours (default 168 = 7d).
	TokenExpiration int `mapstructure:"TOKEN_EXPIRATION"`
	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `mapstructure:"TOKEN_ISSUER"`
	// LogLevel is the zerolog level label (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// Debug dumps the resolved configuration at startup.
	Debug bool `mapstructure:"DEBUG"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Missing .env is ignored; env vars override .env. A missing
// JWT_SECRET is a configuration error, not a request-level one.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":3000")
	v.SetDefault("DATABASE_DSN", "file:tasks.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_EXPIRATION", 168)
	v.SetDefault("TOKEN_ISSUER", "go-tasks")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBUG", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the startup invariants.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.ServerAddr == "" {
		return errors.New("config: SERVER_ADDR must be set")
	}
	if c.TokenExpiration <= 0 {
		return errors.New("config: TOKEN_EXPIRATION must be positive")
	}
	return nil
}

// auth.Config implementation

func (c *Config) GetSigningKey() string   { return c.JWTSecret }
func (c *Config) GetContextKey() string   { return "user" }
func (c *Config) GetTokenExpiration() int { return c.TokenExpiration }
func (c *Config) GetAuthScheme() string   { return "Bearer" }
func (c *Config) GetIssuer() string       { return c.Issuer }
func (c *Config) GetAudience() []string   { return nil }
