package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptTimeoutMillis sets the wall-clock deadline T, in milliseconds,
// enforced per parse call. Must be positive; spec §6 says a non-positive
// timeout is a programmer error (parsed.IllegalArgument) at the harness
// constructor, but a non-positive value reaching Config itself is only
// ever ignored with a warning here.
func OptTimeoutMillis(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout Millis", i) {
			c.TimeoutMillis = i
		}
	}
}

// OptCorePoolSize sets the number of workers kept alive even when idle.
// Zero is valid (pool starts empty and grows on demand); negative is not.
func OptCorePoolSize(i int) Option {
	return func(c *Config) {
		if isValidNonNegativeInt("Core Pool Size", i) {
			c.CorePoolSize = i
		}
	}
}

// OptMaxPoolSize sets the upper bound on concurrently running workers.
// Must be at least 1.
func OptMaxPoolSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Max Pool Size", i) {
			c.MaxPoolSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets the Log.Destination field.
// Valid values: "file", "stderr", "stdout". pkg/logger does not read this
// field and always writes to standard error.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}
