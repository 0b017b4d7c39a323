//go:build !tinygo

package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glint.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, "scale = 8\nanimate = false\nhz = 120\n")

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() = %v", err)
	}
	if cfg.Scale != 8 || cfg.Animate || cfg.Hz != 120 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadFileConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "hz = 15\n")

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() = %v", err)
	}
	def := DefaultFileConfig()
	if cfg.Scale != def.Scale || cfg.Animate != def.Animate {
		t.Fatalf("cfg = %+v, want defaults except hz", cfg)
	}
	if cfg.Hz != 15 {
		t.Fatalf("Hz = %d, want 15", cfg.Hz)
	}
}

func TestLoadFileConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "sclae = 8\n")

	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("LoadFileConfig() accepted an unknown key")
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("LoadFileConfig() accepted a missing file")
	}
}
