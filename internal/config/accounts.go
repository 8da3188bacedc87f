package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvAccountsName overrides the profile section name.
	EnvAccountsName = "ACCOUNTS_NAME"

	// EnvAccountsAPIPrefix overrides the API mirror prefix.
	EnvAccountsAPIPrefix = "ACCOUNTS_API_PREFIX"

	// APIPrefixDisabled turns the API mirror off.
	APIPrefixDisabled = "-"
)

// AccountsConfig configures the account routes.
type AccountsConfig struct {
	// Name is the path segment of profile URLs ("/user/:userslug").
	// Default: "user"
	Name string `toml:"name"`

	// APIPrefix mirrors each page route under the prefix. "-" disables it.
	// Default: "/api"
	APIPrefix string `toml:"api_prefix"`
}

// APIPrefixValue returns the mirror prefix, or "" when the mirror is disabled.
func (c *AccountsConfig) APIPrefixValue() string {
	if c.APIPrefix == APIPrefixDisabled {
		return ""
	}
	return strings.TrimRight(c.APIPrefix, "/")
}

// Finalize applies defaults, loads environment overrides, and validates the accounts configuration.
func (c *AccountsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AccountsConfig) Merge(overlay *AccountsConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.APIPrefix != "" {
		c.APIPrefix = overlay.APIPrefix
	}
}

func (c *AccountsConfig) loadDefaults() {
	if c.Name == "" {
		c.Name = "user"
	}
	if c.APIPrefix == "" {
		c.APIPrefix = "/api"
	}
}

func (c *AccountsConfig) loadEnv() {
	if v := os.Getenv(EnvAccountsName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAccountsAPIPrefix); v != "" {
		c.APIPrefix = v
	}
}

func (c *AccountsConfig) validate() error {
	if c.APIPrefix != APIPrefixDisabled && !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must begin with '/' or be %q", APIPrefixDisabled)
	}
	return nil
}
