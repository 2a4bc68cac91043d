package ioconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configDir, err := GetConfigDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempHome, ".config", "sciparse"), configDir)
}

func TestGetDefaultConfigPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath, err := GetDefaultConfigPath()
	require.NoError(t, err)

	expectedPath := filepath.Join(tempHome, ".config", "sciparse", "config.yaml")
	assert.Equal(t, expectedPath, configPath)
	assert.True(t, filepath.IsAbs(configPath))
}

func TestGenerateDefaultConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		configPath, err := GenerateDefaultConfig()
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, configYAMLTemplate, string(content))

		err = ValidateGeneratedConfig(configPath)
		assert.NoError(t, err, "generated config should be valid")
	})

	t.Run("does not overwrite an existing file", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		configPath, err := GetDefaultConfigPath()
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))

		existingContent := "existing config"
		require.NoError(t, os.WriteFile(configPath, []byte(existingContent), 0644))

		_, err = GenerateDefaultConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, existingContent, string(content))
	})
}

func TestConfigFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	exists, err := ConfigFileExists()
	require.NoError(t, err)
	assert.False(t, exists)

	configPath, err := GetDefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	file, err := os.Create(configPath)
	require.NoError(t, err)
	file.Close()

	exists, err = ConfigFileExists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestValidateGeneratedConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(configYAMLTemplate), 0644))

		assert.NoError(t, ValidateGeneratedConfig(configPath))
	})

	t.Run("invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		invalidYAML := "timeout_millis: [not, a, number]"
		require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

		err := ValidateGeneratedConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
	})
}
