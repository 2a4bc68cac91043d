package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes the runtime-only Overrides handle.
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if c.TimeoutMillis > 0 {
		res = append(res, OptTimeoutMillis(c.TimeoutMillis))
	}
	if c.CorePoolSize > 0 {
		res = append(res, OptCorePoolSize(c.CorePoolSize))
	}
	if c.MaxPoolSize > 0 {
		res = append(res, OptMaxPoolSize(c.MaxPoolSize))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}

	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegativeInt(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		[]string{name, val, strings.Join(lines, "\n")},
	)
	return false
}
