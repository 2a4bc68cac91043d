// Package ioconfig provides I/O operations for loading configuration from
// files and environment variables. This is an impure package that handles
// file system operations; pkg/config itself stays pure.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/gnames/sciparse/pkg/config"
)

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated Config
// with source info. If configPath is empty, it searches the default
// location ~/.config/sciparse/config.yaml.
//
// Returns error if the file is malformed or if an explicit configPath
// cannot be read. A missing file at the default location is not an error,
// since every field is optional and New()'s defaults fill the rest.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Precedence: env vars > config file > defaults.
	v.SetEnvPrefix("SCIPARSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := config.New()
	v.SetDefault("timeout_millis", defaults.TimeoutMillis)
	v.SetDefault("core_pool_size", defaults.CorePoolSize)
	v.SetDefault("max_pool_size", defaults.MaxPoolSize)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if defaultPath, err := GetDefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTimeoutMillis(v.GetInt("timeout_millis")),
		config.OptCorePoolSize(v.GetInt("core_pool_size")),
		config.OptMaxPoolSize(v.GetInt("max_pool_size")),
		config.OptLogLevel(v.GetString("log.level")),
		config.OptLogFormat(v.GetString("log.format")),
		config.OptLogDestination(v.GetString("log.destination")),
	})

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars checks if any SCIPARSE_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SCIPARSE_") {
			return true
		}
	}
	return false
}
