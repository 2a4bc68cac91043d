package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gnames/sciparse/pkg/config"
)

// configYAMLTemplate is the documented default config.yaml written by
// GenerateDefaultConfig. Every field matches pkg/config.Config's yaml tags.
const configYAMLTemplate = `# sciparse configuration
# timeout_millis: wall-clock deadline per parse call, in milliseconds.
timeout_millis: 1000
# core_pool_size: workers kept alive even when idle. 0 grows on demand.
core_pool_size: 0
# max_pool_size: upper bound on concurrently running parse workers.
max_pool_size: 100
log:
  # level: debug, info, warn, error
  level: info
  # format: json, text, tint
  format: tint
  # destination: file, stderr, stdout
  destination: stderr
`

// GetConfigDir returns the configuration directory for sciparse.
// Uses ~/.config/sciparse/ on all platforms for consistency.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", config.AppName), nil
}

// GetDefaultConfigPath returns the full path to the default config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GenerateDefaultConfig creates a documented default config.yaml at the
// default location (~/.config/sciparse/config.yaml). Returns the path where it was created, or
// an error if generation fails. Does NOT overwrite an existing file.
func GenerateDefaultConfig() (string, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configYAMLTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	if file, err := os.Open(configPath); err == nil {
		_ = file.Sync()
		file.Close()
	}

	return configPath, nil
}

// ConfigFileExists checks if a config file exists at the default location.
func ConfigFileExists() (bool, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ValidateGeneratedConfig reads a generated config file, unmarshals it
// against pkg/config.Config and applies every value through the Option
// functions. It returns an error only when the file cannot be read or is
// not valid YAML; a value an Option rejects is reported through gn.Warn
// and does not make it return an error.
func ValidateGeneratedConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var raw config.Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTimeoutMillis(raw.TimeoutMillis),
		config.OptCorePoolSize(raw.CorePoolSize),
		config.OptMaxPoolSize(raw.MaxPoolSize),
		config.OptLogLevel(raw.Log.Level),
		config.OptLogFormat(raw.Log.Format),
		config.OptLogDestination(raw.Log.Destination),
	})

	return nil
}
