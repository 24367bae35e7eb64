package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.LogLevel != "" || cfg.Overwrite != nil {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("parses fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "log_level: debug\nlog_format: json\noverwrite: true\nserver_address: 0.0.0.0:9000\nreport_limit: 8\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
			t.Fatalf("logging mismatch: got %q/%q", cfg.LogLevel, cfg.LogFormat)
		}
		if cfg.Overwrite == nil || !*cfg.Overwrite {
			t.Fatalf("overwrite mismatch: got %v", cfg.Overwrite)
		}
		if cfg.ServerAddress != "0.0.0.0:9000" {
			t.Fatalf("server address mismatch: got %q", cfg.ServerAddress)
		}
		if cfg.ReportLimit == nil || *cfg.ReportLimit != 8 {
			t.Fatalf("report limit mismatch: got %v", cfg.ReportLimit)
		}
		if cfg.MaxBodyBytes != nil {
			t.Fatalf("max body should be unset, got %d", *cfg.MaxBodyBytes)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("log_level: [unterminated\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
