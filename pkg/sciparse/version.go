package sciparse

// Version and Build are set at compile time via -ldflags, the same
// convention gndb's cmd/root.go reads off its app package for the
// `-V`/`--version` flag.
var (
	Version = "n/a"
	Build   = "n/a"
)
