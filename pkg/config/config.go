// Package config provides configuration management for sciparse.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Harness: timeout_millis, core_pool_size, max_pool_size
//   - Log: level, format, destination
//
// Runtime-only fields (no Option, not persisted):
//   - Overrides (created empty by New(), populated by callers via
//     Overrides() or the parser's Configs())
//
// # Environment Variables
//
// Use SCIPARSE_ prefix with underscores for nesting:
//
//	SCIPARSE_TIMEOUT_MILLIS=1000
//	SCIPARSE_CORE_POOL_SIZE=4
//	SCIPARSE_MAX_POOL_SIZE=100
//	SCIPARSE_LOG_LEVEL=info
package config

import (
	"sync"

	"github.com/gnames/sciparse/ent/parsed"
)

// Config represents the complete sciparse configuration.
type Config struct {
	// TimeoutMillis is the wall-clock deadline T (in milliseconds) enforced
	// per parse call by internal/harness -- spec §4.7.
	TimeoutMillis int `mapstructure:"timeout_millis" yaml:"timeout_millis"`

	// CorePoolSize is the number of workers kept alive even when idle.
	// Zero means the pool starts empty and grows on demand.
	CorePoolSize int `mapstructure:"core_pool_size" yaml:"core_pool_size"`

	// MaxPoolSize is the upper bound on concurrently running workers;
	// submissions beyond this block the caller (caller-blocks admission
	// policy, spec §4.7).
	MaxPoolSize int `mapstructure:"max_pool_size" yaml:"max_pool_size"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// overrides is the runtime-mutable ParserConfigs handle (spec §4.6): a
	// concurrent map with atomic get/put semantics, deliberately excluded
	// from yaml/env round-tripping since it holds curator-verified
	// per-string exceptions, not a persistent setting.
	overrides *Overrides
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be 'file', 'stderr' or 'stdout'. It is validated and
	// stored only; pkg/logger always writes to STDERR.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// Overrides is a concurrent-safe map pair of known-pathological strings to
// their curator-verified parse results, consulted by internal/harness
// before submitting a job -- spec §4.6.
type Overrides struct {
	mu    sync.RWMutex
	names map[string]*parsed.ParsedName
	auths map[string]*parsed.ParsedAuthorship
}

func newOverrides() *Overrides {
	return &Overrides{
		names: make(map[string]*parsed.ParsedName),
		auths: make(map[string]*parsed.ParsedAuthorship),
	}
}

// Name looks up a name override by exact string match.
func (o *Overrides) Name(s string) (*parsed.ParsedName, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	p, ok := o.names[s]
	return p, ok
}

// SetName installs or replaces a name override. Concurrent readers racing
// with SetName see either the old or the new value atomically, never a
// torn read.
func (o *Overrides) SetName(s string, p *parsed.ParsedName) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.names[s] = p
}

// DeleteName removes a name override, if present.
func (o *Overrides) DeleteName(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.names, s)
}

// Authorship looks up an authorship override by exact string match.
func (o *Overrides) Authorship(s string) (*parsed.ParsedAuthorship, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	p, ok := o.auths[s]
	return p, ok
}

// SetAuthorship installs or replaces an authorship override.
func (o *Overrides) SetAuthorship(s string, p *parsed.ParsedAuthorship) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.auths[s] = p
}

// DeleteAuthorship removes an authorship override, if present.
func (o *Overrides) DeleteAuthorship(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.auths, s)
}

// Overrides returns the mutable ParserConfigs handle -- the configs()
// surface from spec §6.
func (c *Config) Overrides() *Overrides {
	return c.overrides
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		TimeoutMillis: 1000,
		CorePoolSize:  0,
		MaxPoolSize:   100,
		Log: LogConfig{
			Format:      "tint",
			Level:       "info",
			Destination: "stderr",
		},
		overrides: newOverrides(),
	}
}
