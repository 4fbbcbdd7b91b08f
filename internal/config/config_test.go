package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q", cfg.Logging.Level)
	}
	if cfg.Data.TimestampLayout != DefaultTimestampLayout {
		t.Errorf("default layout = %q", cfg.Data.TimestampLayout)
	}
	if cfg.Chart.Width != 1200 || cfg.Chart.Height != 600 {
		t.Errorf("default chart size = %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
logging:
  level: debug
chart:
  width: 800
  height: 400
server:
  addr: 127.0.0.1:9000
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_ADDR", "127.0.0.1:9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want file value", cfg.Logging.Level)
	}
	if cfg.Chart.Width != 800 || cfg.Chart.Height != 400 {
		t.Errorf("chart size = %dx%d, want file values", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("addr = %q, want env override", cfg.Server.Addr)
	}
}

func TestValidate_RejectsBadDimensions(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	cfg.Chart.Width = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative chart width passed validation")
	}
}
