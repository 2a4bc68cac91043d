package parsed

import "fmt"

// UnparsableName is raised by parse when the input could not be decomposed
// into a ParsedName. It always carries the classifier's best-guess
// NameType, never a bare parse failure.
type UnparsableName struct {
	Type  NameType
	Input string
}

func (e *UnparsableName) Error() string {
	return fmt.Sprintf("cannot parse name as %s: %q", e.Type, e.Input)
}

// NewUnparsableName builds an UnparsableName error for the given
// classification and original input.
func NewUnparsableName(t NameType, input string) *UnparsableName {
	return &UnparsableName{Type: t, Input: input}
}

// UnparsableAuthorship is raised by parseAuthorship when the input did not
// match the authorship grammar at all (spec §4.5).
type UnparsableAuthorship struct {
	Input string
}

func (e *UnparsableAuthorship) Error() string {
	return fmt.Sprintf("cannot parse authorship: %q", e.Input)
}

// NewUnparsableAuthorship builds an UnparsableAuthorship error.
func NewUnparsableAuthorship(input string) *UnparsableAuthorship {
	return &UnparsableAuthorship{Input: input}
}

// IllegalArgument is a programmer error: a caller constructed the parser
// with a non-positive timeout. It is never returned from parse or
// parseAuthorship themselves (spec §7), only from the harness constructor.
type IllegalArgument struct {
	Msg string
}

func (e *IllegalArgument) Error() string { return e.Msg }

// NewIllegalArgument builds an IllegalArgument error with the given message.
func NewIllegalArgument(msg string) *IllegalArgument {
	return &IllegalArgument{Msg: msg}
}
