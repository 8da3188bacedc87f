package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvServerHost           = "SERVER_HOST"
	EnvServerPort           = "SERVER_PORT"
	EnvServerReadTimeout    = "SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout   = "SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout    = "SERVER_IDLE_TIMEOUT"
	EnvServerMaxHeaderBytes = "SERVER_MAX_HEADER_BYTES"
)

// ServerConfig contains HTTP listener settings. Durations are Go duration
// strings and MaxHeaderBytes is a human size ("1MB").
type ServerConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	ReadTimeout    string `toml:"read_timeout"`
	WriteTimeout   string `toml:"write_timeout"`
	IdleTimeout    string `toml:"idle_timeout"`
	MaxHeaderBytes string `toml:"max_header_bytes"`

	maxHeaderBytesVal int
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

// MaxHeaderBytesValue returns MaxHeaderBytes in bytes. Valid after Finalize.
func (c *ServerConfig) MaxHeaderBytesValue() int {
	return c.maxHeaderBytesVal
}

// Finalize applies defaults, loads environment overrides, and validates the server configuration.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.MaxHeaderBytes != "" {
		c.MaxHeaderBytes = overlay.MaxHeaderBytes
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "15s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "30s"
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "60s"
	}
	if c.MaxHeaderBytes == "" {
		c.MaxHeaderBytes = "1MB"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvServerReadTimeout); v != "" {
		c.ReadTimeout = v
	}
	if v := os.Getenv(EnvServerWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvServerIdleTimeout); v != "" {
		c.IdleTimeout = v
	}
	if v := os.Getenv(EnvServerMaxHeaderBytes); v != "" {
		c.MaxHeaderBytes = v
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for name, v := range map[string]string{
		"read_timeout":  c.ReadTimeout,
		"write_timeout": c.WriteTimeout,
		"idle_timeout":  c.IdleTimeout,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	size, err := units.RAMInBytes(c.MaxHeaderBytes)
	if err != nil {
		return fmt.Errorf("invalid max_header_bytes: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_header_bytes must be positive")
	}
	c.maxHeaderBytesVal = int(size)

	return nil
}
