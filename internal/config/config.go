package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "SHARE_"

// envKeys are the config keys SHARE_* variables may set. Other SHARE_*
// variables (SHARE_CONFIG_DIR, SHARE_TUI_DARKBG, ...) are read elsewhere.
var envKeys = map[string]bool{
	"location":  true,
	"remote":    true,
	"format":    true,
	"pretty":    true,
	"log.level": true,
	"log.file":  true,
	"tui.theme": true,
}

type Config struct {
	// Location is the fallback address used when no URL is passed to the dialog.
	Location string `koanf:"location" yaml:"location,omitempty" json:"location,omitempty"`
	// Remote names the git remote whose web URL serves as the fallback location.
	Remote string    `koanf:"remote" yaml:"remote,omitempty" json:"remote,omitempty"`
	Format string    `koanf:"format" yaml:"format,omitempty" json:"format"`
	Pretty bool      `koanf:"pretty" yaml:"pretty,omitempty" json:"pretty"`
	Log    LogConfig `koanf:"log" yaml:"log,omitempty" json:"log"`
	TUI    TUIConfig `koanf:"tui" yaml:"tui,omitempty" json:"tui"`
}

type LogConfig struct {
	Level string `koanf:"level" yaml:"level,omitempty" json:"level"`
	// File receives JSON log lines. Empty disables logging.
	File string `koanf:"file" yaml:"file,omitempty" json:"file,omitempty"`
}

type TUIConfig struct {
	// Theme is light, dark or auto.
	Theme string `koanf:"theme" yaml:"theme,omitempty" json:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Remote: "origin",
		Format: "json",
		Log:    LogConfig{Level: "info"},
		TUI:    TUIConfig{Theme: "auto"},
	}
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.share).
	if v := strings.TrimSpace(os.Getenv("SHARE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".share"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML file at path (missing is fine), then overlays SHARE_*
// environment variables: SHARE_LOG_LEVEL -> log.level, SHARE_TUI_THEME -> tui.theme.
// Empty variables are ignored.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
		if !envKeys[name] || strings.TrimSpace(value) == "" {
			return "", nil
		}
		return name, value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validFormats   = map[string]bool{"json": true, "edn": true, "text": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validThemes    = map[string]bool{"auto": true, "light": true, "dark": true}
)

func (c *Config) Validate() error {
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q: must be one of json, edn, text", c.Format)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if !validThemes[strings.ToLower(c.TUI.Theme)] {
		return fmt.Errorf("invalid tui.theme %q: must be one of auto, light, dark", c.TUI.Theme)
	}
	return nil
}
