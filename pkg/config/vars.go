package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "sciparse"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/sciparse by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/sciparse/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
