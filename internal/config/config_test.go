package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/barcode-processor/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMainConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadMainConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RegistryPath != "data/products.txt" {
		t.Errorf("unexpected registry path: %s", cfg.RegistryPath)
	}
	if cfg.DefaultInput != "data/CustomerG.txt" {
		t.Errorf("unexpected default input: %s", cfg.DefaultInput)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadMainConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
registry_path: /srv/codes.txt
encoding: windows-1252
log_level: debug
`)

	cfg, err := config.LoadMainConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RegistryPath != "/srv/codes.txt" {
		t.Errorf("unexpected registry path: %s", cfg.RegistryPath)
	}
	if cfg.Encoding != "windows-1252" {
		t.Errorf("unexpected encoding: %s", cfg.Encoding)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default data dir, got %s", cfg.DataDir)
	}
}

func TestLoadMainConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"log level": "log_level: loud\n",
		"encoding":  "encoding: klingon\n",
		"yaml":      "registry_path: [unclosed\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := config.LoadMainConfig(writeConfig(t, content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
