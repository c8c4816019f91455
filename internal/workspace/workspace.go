// Package workspace manages the per-user directory holding the config file
// and extra language profiles.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BaseDirName    = ".textguardian"
	ConfigFileName = "config.yaml"
	ProfilesDir    = "profiles"
)

type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Settings struct {
	Language    string      `yaml:"language"`
	Format      string      `yaml:"format"`
	Workers     int         `yaml:"workers"`
	ProfilesDir string      `yaml:"profiles_dir"`
	Log         LogSettings `yaml:"log"`
}

func DefaultSettings(base string) Settings {
	return Settings{
		Language:    "es",
		Format:      "text",
		Workers:     0,
		ProfilesDir: filepath.Join(base, ProfilesDir),
		Log:         LogSettings{Level: "warn", Format: "text"},
	}
}

// DefaultDir is ~/.textguardian.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, BaseDirName), nil
}

func EnsureDefault() (string, error) {
	base, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return EnsureAt(base)
}

// EnsureAt creates base and its profiles directory, and writes a default
// config file unless one exists. It is safe to call repeatedly.
func EnsureAt(base string) (string, error) {
	if err := os.MkdirAll(filepath.Join(base, ProfilesDir), 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", base, err)
	}

	settingsPath := filepath.Join(base, ConfigFileName)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := yaml.Marshal(DefaultSettings(base))
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

// LoadSettings reads the config file under base.
func LoadSettings(base string) (Settings, error) {
	raw, err := os.ReadFile(filepath.Join(base, ConfigFileName))
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
