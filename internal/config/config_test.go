package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8084" {
		t.Errorf("expected default port 8084 got %s", cfg.Server.Port)
	}
	if cfg.Server.ExposeInternalErrors {
		t.Errorf("internal errors must be hidden by default")
	}
	if !cfg.IsLocal() {
		t.Errorf("expected local env by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(map[string]string{
		"TRANSACTIONS_SERVER__PORT":                   "9000",
		"TRANSACTIONS_SERVER__READ_TIMEOUT":           "30",
		"TRANSACTIONS_SERVER__EXPOSE_INTERNAL_ERRORS": "true",
		"TRANSACTIONS_REDIS__ADDRESS":                 "redis:6379",
		"TRANSACTIONS_LOGGING__LEVEL":                 "debug",
		"UNRELATED_VARIABLE":                          "ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9000" || cfg.Server.ReadTimeout != 30 {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if !cfg.Server.ExposeInternalErrors {
		t.Errorf("expected expose_internal_errors to be enabled")
	}
	if cfg.Redis.Address != "redis:6379" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected overrides redis=%s level=%s", cfg.Redis.Address, cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		field   string
	}{
		{name: "empty database url", environ: map[string]string{"TRANSACTIONS_DATABASE__URL": ""}, field: "URL"},
		{name: "unknown log level", environ: map[string]string{"TRANSACTIONS_LOGGING__LEVEL": "loud"}, field: "Level"},
		{name: "zero read timeout", environ: map[string]string{"TRANSACTIONS_SERVER__READ_TIMEOUT": "0"}, field: "ReadTimeout"},
		{name: "views without expiry", environ: map[string]string{"TRANSACTIONS_REDIS__VIEW_TTL": "0"}, field: "ViewTTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.environ)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %s, got %v", tt.field, err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	if got := envKey("TRANSACTIONS_SERVER__READ_TIMEOUT"); got != "server.read_timeout" {
		t.Errorf("unexpected key %s", got)
	}
}
