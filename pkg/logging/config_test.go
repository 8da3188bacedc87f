package logging_test

import (
	"testing"

	"github.com/JaimeStill/forum/pkg/logging"
)

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	}

	base.Merge(&logging.Config{Level: logging.LevelDebug})

	if base.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q (should merge)", base.Level, logging.LevelDebug)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (should not change)", base.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_AppliesDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{Level: logging.LevelError}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := &logging.Config{Level: "loud"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() succeeded with invalid level, want error")
	}
}
