package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	assert.Equal(t, filepath.Join(tempHome, ".config", "sciparse"), config.ConfigDir(tempHome))
	assert.Equal(t, filepath.Join(tempHome, ".config", "sciparse", "config.yaml"), config.ConfigFilePath(tempHome))
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, 1000, cfg.TimeoutMillis)
	assert.Equal(t, 0, cfg.CorePoolSize)
	assert.Equal(t, 100, cfg.MaxPoolSize)

	assert.Equal(t, "tint", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	require.NotNil(t, cfg.Overrides())
}

func TestOptionTimeoutMillis(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid timeout", input: 5000, expected: 5000},
		{name: "ignores zero", input: 0, expected: 1000},
		{name: "ignores negative", input: -1, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTimeoutMillis(tt.input)})
			assert.Equal(t, tt.expected, cfg.TimeoutMillis)
		})
	}
}

func TestOptionCorePoolSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid size", input: 4, expected: 4},
		{name: "allows zero", input: 0, expected: 0},
		{name: "ignores negative", input: -2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptCorePoolSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.CorePoolSize)
		})
	}
}

func TestOptionMaxPoolSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid size", input: 16, expected: 16},
		{name: "ignores zero", input: 0, expected: 100},
		{name: "ignores negative", input: -1, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptMaxPoolSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.MaxPoolSize)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "sets debug", input: "debug", expected: "debug"},
		{name: "normalizes case", input: "WARN", expected: "warn"},
		{name: "ignores invalid", input: "trace", expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "sets json", input: "json", expected: "json"},
		{name: "sets text", input: "text", expected: "text"},
		{name: "ignores invalid", input: "xml", expected: "tint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTimeoutMillis(2000),
		config.OptMaxPoolSize(50),
		config.OptLogLevel("debug"),
	})

	assert.Equal(t, 2000, cfg.TimeoutMillis)
	assert.Equal(t, 50, cfg.MaxPoolSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "tint", cfg.Log.Format) // unchanged field keeps default
}

func TestToOptions(t *testing.T) {
	original := config.New()
	original.Update([]config.Option{
		config.OptTimeoutMillis(3000),
		config.OptCorePoolSize(2),
		config.OptMaxPoolSize(20),
		config.OptLogLevel("debug"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stdout"),
	})

	newCfg := config.New()
	newCfg.Update(original.ToOptions())

	assert.Equal(t, original.TimeoutMillis, newCfg.TimeoutMillis)
	assert.Equal(t, original.MaxPoolSize, newCfg.MaxPoolSize)
	assert.Equal(t, original.Log.Level, newCfg.Log.Level)
	assert.Equal(t, original.Log.Format, newCfg.Log.Format)
	assert.Equal(t, original.Log.Destination, newCfg.Log.Destination)
}

func TestOverrides_NameRoundTrip(t *testing.T) {
	cfg := config.New()
	ov := cfg.Overrides()

	_, ok := ov.Name("Aus bus")
	assert.False(t, ok)

	want := &parsed.ParsedName{Verbatim: "Aus bus", Type: parsed.TypeScientific}
	ov.SetName("Aus bus", want)

	got, ok := ov.Name("Aus bus")
	require.True(t, ok)
	assert.Same(t, want, got)

	ov.DeleteName("Aus bus")
	_, ok = ov.Name("Aus bus")
	assert.False(t, ok)
}

func TestOverrides_AuthorshipRoundTrip(t *testing.T) {
	cfg := config.New()
	ov := cfg.Overrides()

	want := &parsed.ParsedAuthorship{Verbatim: "Smith"}
	ov.SetAuthorship("Smith", want)

	got, ok := ov.Authorship("Smith")
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestOverrides_ConcurrentReadWrite(t *testing.T) {
	cfg := config.New()
	ov := cfg.Overrides()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			ov.SetName("x", &parsed.ParsedName{Verbatim: "x"})
		}
		close(done)
	}()

	for i := 0; i < 100; i++ {
		ov.Name("x")
	}
	<-done
}
