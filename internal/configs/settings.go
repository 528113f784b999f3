package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the resolved runtime configuration: built-in defaults
// overlaid with whatever the user's config file sets.
type Settings struct {
	// ConfigPath is where the config file was looked for.
	ConfigPath string

	// KeyDirectory holds the RSA key pair PEM files.
	KeyDirectory string

	// KeyBits is the RSA modulus size for newly generated keys.
	KeyBits int

	// RepairBase64Padding restores stripped "=" characters before
	// decrypting an envelope.
	RepairBase64Padding bool
}

// fileConfig mirrors the on-disk TOML shape. Pointer fields distinguish
// "unset" from zero values.
type fileConfig struct {
	KeyDirectory        string `toml:"key_directory"`
	KeyBits             int    `toml:"key_bits"`
	RepairBase64Padding *bool  `toml:"repair_base64_padding"`
}

// DefaultSettings resolves the default paths: config under the user config
// directory, keys under XDG_DATA_HOME (or ~/.local/share).
func DefaultSettings() (*Settings, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error getting config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &Settings{
		ConfigPath:          filepath.Join(configDir, "remold", "config.toml"),
		KeyDirectory:        filepath.Join(dataDir, "remold", "keys"),
		KeyBits:             0, // 0 lets the keystore pick its default
		RepairBase64Padding: true,
	}, nil
}

// Load returns the default settings overlaid with the user's config file.
// A missing config file is not an error; a malformed one is.
func Load() (*Settings, error) {
	settings, err := DefaultSettings()
	if err != nil {
		return nil, err
	}
	if err := settings.overlayFile(settings.ConfigPath); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) overlayFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var fc fileConfig
	if err := LoadTOML(path, &fc); err != nil {
		return fmt.Errorf("failed to load config file at %s: %w", path, err)
	}

	if fc.KeyDirectory != "" {
		s.KeyDirectory = fc.KeyDirectory
	}
	if fc.KeyBits != 0 {
		s.KeyBits = fc.KeyBits
	}
	if fc.RepairBase64Padding != nil {
		s.RepairBase64Padding = *fc.RepairBase64Padding
	}
	return nil
}
