// Package errcode enumerates gn.ErrorCode values for the parser's failure
// kinds. No other package in this module references these codes; the
// parser reports failures through the typed errors in ent/parsed.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Configuration errors
	ConfigInvalidTimeoutError
	ConfigLoadError
	ConfigWriteError

	// Harness errors
	HarnessDeadlineExceededError
	HarnessPoolSaturatedError
	HarnessShutdownError

	// Parsing job errors
	JobPanicRecoveredError
)
