//go:build !tinygo

package app

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FileConfig is the host demo configuration loaded from a TOML file.
type FileConfig struct {
	// Scale is the window pixel scale factor.
	Scale int `toml:"scale"`
	// Animate enables slide transitions between menus.
	Animate bool `toml:"animate"`
	// Hz is the tick rate for the headless and terminal runners.
	Hz int `toml:"hz"`
}

// DefaultFileConfig returns the configuration used when no file is given.
func DefaultFileConfig() FileConfig {
	return FileConfig{Scale: 4, Animate: true, Hz: 60}
}

// LoadFileConfig reads a TOML config file on top of the defaults.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undec[0])
	}
	return cfg, nil
}
