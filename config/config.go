// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultHTTPAddr             = ":3000"
	DefaultDBPath               = "tasktracker.db"
	DefaultJWTSecret            = "change-me-in-production"
	DefaultJWTIssuer            = "task-tracker"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultBcryptCost           = 12
)

// Config holds the full application configuration.
type Config struct {
	HTTPAddr string    `toml:"http_addr"`
	DBPath   string    `toml:"db_path"`
	JWT      JWTConfig `toml:"jwt"`

	// BcryptCost controls password hashing cost. 12 keeps hashing time
	// reasonable while remaining expensive to brute-force.
	BcryptCost int `toml:"bcrypt_cost"`
}

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	SecretKey            string   `toml:"secret_key"`
	Issuer               string   `toml:"issuer"`
	AccessTokenDuration  duration `toml:"access_token_duration"`
	RefreshTokenDuration duration `toml:"refresh_token_duration"`
}

// duration wraps time.Duration so TOML files can use "15m" style values.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// AccessTTL returns the access token lifetime.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTokenDuration)
}

// RefreshTTL returns the refresh token lifetime.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTokenDuration)
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		HTTPAddr: DefaultHTTPAddr,
		DBPath:   DefaultDBPath,
		JWT: JWTConfig{
			SecretKey:            DefaultJWTSecret,
			Issuer:               DefaultJWTIssuer,
			AccessTokenDuration:  duration(DefaultAccessTokenDuration),
			RefreshTokenDuration: duration(DefaultRefreshTokenDuration),
		},
		BcryptCost: DefaultBcryptCost,
	}
}

// Load builds the configuration from defaults, an optional TOML file and
// environment variables, in increasing order of precedence. A missing file
// is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if addr := os.Getenv("TASKTRACKER_HTTP_ADDR"); addr != "" {
		c.HTTPAddr = addr
	}
	if dbPath := os.Getenv("TASKTRACKER_DB_PATH"); dbPath != "" {
		c.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		c.JWT.SecretKey = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		c.JWT.Issuer = issuer
	}
}
