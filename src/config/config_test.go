package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// -----------------------------------------------------------------------------

func TestNewConfigLoadsAndDefaults(t *testing.T) {
	path := writeConfig(t, `
name: "tracker-test"
host: "127.0.0.1"
port: 8080
storage:
  db_type: "sqlite"
  db_path: "test.db"
import:
  securities:
    - ticker: "AAPL"
      name: "Apple Inc."
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Name != "tracker-test" {
		t.Errorf("unexpected name %q", cfg.Name)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("expected default log level INFO, got %q", cfg.LogLevel)
	}
	if cfg.Import.BatchSize != 500 {
		t.Errorf("expected default batch size 500, got %d", cfg.Import.BatchSize)
	}
	if cfg.Import.StaleTimeoutMinutes != 30 {
		t.Errorf("expected default stale timeout 30, got %d", cfg.Import.StaleTimeoutMinutes)
	}
	if cfg.Network.RequestTimeout != 15 {
		t.Errorf("expected default timeout 15, got %d", cfg.Network.RequestTimeout)
	}
	if len(cfg.Import.Securities) != 1 || cfg.Import.Securities[0].Ticker != "AAPL" {
		t.Errorf("securities not parsed: %+v", cfg.Import.Securities)
	}
}

// -----------------------------------------------------------------------------

func TestNewConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing name", `
host: "127.0.0.1"
port: 8080
storage: {db_type: "sqlite", db_path: "x.db"}
`},
		{"bad port", `
name: "t"
host: "127.0.0.1"
port: 80
storage: {db_type: "sqlite", db_path: "x.db"}
`},
		{"sqlite without path", `
name: "t"
host: "127.0.0.1"
port: 8080
storage: {db_type: "sqlite"}
`},
		{"postgres without conn string", `
name: "t"
host: "127.0.0.1"
port: 8080
storage: {db_type: "postgres"}
`},
	}

	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := NewConfig(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// -----------------------------------------------------------------------------

func TestNewConfigMissingFile(t *testing.T) {
	if _, err := NewConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

// -----------------------------------------------------------------------------

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, `
name: "tracker-test"
host: "127.0.0.1"
port: 8080
storage:
  db_type: "sqlite"
  db_path: "test.db"
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := NewConfig(out)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Name != cfg.Name || reloaded.Storage.DBPath != cfg.Storage.DBPath {
		t.Errorf("round trip lost data: %+v", reloaded.MConfig)
	}
}
