package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the two required env vars so Load succeeds.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_URL", "https://api.dealbell.test")
	t.Setenv("DATABASE_URL", "postgres://localhost/console_test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("Backend.Timeout = %v, want 10s", cfg.Backend.Timeout)
	}
	if cfg.Backend.RequestsPerSecond != 20 {
		t.Errorf("Backend.RequestsPerSecond = %d, want 20", cfg.Backend.RequestsPerSecond)
	}
	if cfg.Rate.RequestsPerMinute != 120 {
		t.Errorf("Rate.RequestsPerMinute = %d, want 120", cfg.Rate.RequestsPerMinute)
	}
	if cfg.Analytics.CacheTTL != 5*time.Minute {
		t.Errorf("Analytics.CacheTTL = %v, want 5m", cfg.Analytics.CacheTTL)
	}
	if !cfg.Rate.Enabled {
		t.Error("Rate.Enabled should default to true")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("Backend.Timeout = %v, want 3s", cfg.Backend.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.dealbell.test")
	t.Setenv("DB_URL", "postgres://localhost/alt_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL != "postgres://localhost/alt_test" {
		t.Errorf("Database.URL = %q, want the DB_URL fallback", cfg.Database.URL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/console_test")
	t.Setenv("BACKEND_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when BACKEND_URL is unset")
	}
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	setRequired(t)
	t.Setenv("BACKEND_URL", "not a url")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for relative BACKEND_URL")
	}
	if !strings.Contains(err.Error(), "BACKEND_URL") {
		t.Errorf("error should name the offending variable: %v", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("BACKEND_TIMEOUT", "ten seconds")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}

func TestLoad_TrustedProxiesSplitAndTrimmed(t *testing.T) {
	setRequired(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.0.0/16 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Security.TrustedProxies) != 2 {
		t.Fatalf("TrustedProxies = %v, want 2 entries", cfg.Security.TrustedProxies)
	}
	if cfg.Security.TrustedProxies[1] != "192.168.0.0/16" {
		t.Errorf("second proxy = %q, want trimmed CIDR", cfg.Security.TrustedProxies[1])
	}
}

func TestValidate_BadLogFormat(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_FORMAT", "yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := c.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", got)
	}

	c.Host = ""
	if got := c.Addr(); got != ":9000" {
		t.Errorf("Addr() = %q", got)
	}
}
