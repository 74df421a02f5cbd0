package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config is the top-level application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vault  VaultConfig       `yaml:"vault"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
	Auth   AuthConfig        `yaml:"auth"`
}

// Validate validates every configuration section.
func (c *Config) Validate() error {
	for _, v := range []interface{ Validate() error }{&c.App, &c.Vault, &c.SQLite, &c.Auth} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`

	// CatalogThrottle limits how often catalog.stale events are pushed
	// to SSE subscribers while the vault is changing.
	CatalogThrottle time.Duration `yaml:"catalog_throttle"`
}

func (c *ApplicationConfig) Validate() error {
	if c.CatalogThrottle < 0 {
		return fmt.Errorf("app: catalog_throttle must not be negative")
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the listen address for the HTTP server.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// VaultConfig holds the path to the Markdown vault directory. Inbox is
// an optional subdirectory, relative to Path, where quick-capture
// tooling drops new notes.
type VaultConfig struct {
	Path  string `yaml:"path"`
	Inbox string `yaml:"inbox"`
}

func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SQLiteConfig holds the path of the full-text index database.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig controls API authentication.
//
// Mode is either "disabled" (the default, for local use) or "token",
// which enforces a Bearer token on every API request.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled reports whether Bearer authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a Config with sensible local defaults.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:        slog.LevelInfo,
			HTTP:            HTTPConfig{Port: 8080},
			CatalogThrottle: 2 * time.Second,
		},
		Vault:  VaultConfig{Path: "./vault"},
		SQLite: SQLiteConfig{Path: "./ansuz.db"},
		Auth:   AuthConfig{Mode: AuthModeDisabled},
	}
}
