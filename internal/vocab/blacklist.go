package vocab

// EpithetBlacklist is the set of lower-case tokens that look like an
// epithet syntactically but are never one -- placeholders for
// "undetermined species" and similar. RE2 (used by EPITHET) has no
// lookahead to exclude them at match time, so the check is applied
// post-hoc: applyBlacklistedEpithet (internal/job/nameparser.go) consults
// this table after EPITHET has already matched, to clear the epithet and
// attach WarningIndetermined.
var EpithetBlacklist = map[string]bool{
	"sp":       true,
	"sp.":      true,
	"spp":      true,
	"spp.":     true,
	"spec":     true,
	"spec.":    true,
	"species":  true,
	"indet":    true,
	"indet.":   true,
	"indeterminate": true,
	"cf":       true,
	"cf.":      true,
	"aff":      true,
	"aff.":     true,
	"nr":       true,
	"nr.":      true,
	"near":     true,
	"cfr":      true,
	"cfr.":     true,
	"sensu":    true,
	"auct":     true,
	"auct.":    true,
	"agg":      true,
	"agg.":     true,
	"group":    true,
	"complex":  true,
	"undetermined": true,
	"unidentified": true,
}

// IsBlacklistedEpithet reports whether tok (already lower-cased) is one of
// the epithet-blacklist tokens.
func IsBlacklistedEpithet(tok string) bool { return EpithetBlacklist[tok] }
