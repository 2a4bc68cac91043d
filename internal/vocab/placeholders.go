package vocab

// PlaceholderTokens are full-string (after trimming and lower-casing)
// literals that denote a placeholder name rather than any real taxon.
var PlaceholderTokens = map[string]bool{
	"incertae sedis": true,
	"unknown":        true,
	"unassigned":     true,
	"unnamed":        true,
	"not assigned":   true,
	"undetermined":   true,
	"?":              true,
	"??":             true,
	"∅":         true, // ∅
	"n/a":            true,
	"na":             true,
}

// IsPlaceholder reports whether s, after trimming and lower-casing, is
// exactly one of the placeholder-token literals.
func IsPlaceholder(s string) bool { return PlaceholderTokens[s] }

// OTUPatterns is documented here (not as literals but as named regex
// fragments, since OTU identifiers are structural, not literal): BOLD
// process IDs ("BOLD:AAX3687") and SH hashes ("SH123456.08FU"). The actual
// patterns live in internal/normalize (unparsable_scan.go) because they require regexp
// compilation, but the vocabulary that seeds them -- the "BOLD:" and "SH"
// prefixes -- belongs here as the frozen literal part of the grammar.
const (
	OTUBoldPrefix = "BOLD:"
	OTUShSuffix   = "FU"
)
