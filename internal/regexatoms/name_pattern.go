package regexatoms

import "regexp"

// NameGroups lists the fixed set of named capture groups every entry in
// NamePatterns may populate. Not every pattern uses every group -- a
// pattern that cannot produce e.g. "cultivar" simply never defines that
// name -- but internal/job's extractor is written against this one
// vocabulary, so adding a new alternative to NamePatterns only requires it
// to reuse these names, never invent new ones.
var NameGroups = []string{
	"nothoGenus", "nothoSpecies", "nothoInfra",
	"uninomial", "genus", "infrageneric",
	"species", "rankMarker", "infraspecific",
	"cultivar", "strain", "phrase",
	"bExAuth", "bAuth", "bSanct", "bYear",
	"cExAuth", "cAuth", "cSanct", "cYear",
	"tail",
}

// authorshipSuffix is the optional "(basionym authorship) combination
// authorship" tail shared by every name pattern below, reusing the same
// block builder as the standalone Authorship pattern (spec §4.2 item 6:
// "Basionym authorship in outer parentheses, combination authorship
// following").
func authorshipSuffix() string {
	return `(?:\s+\(\s*` + authorshipBlock("bExAuth", "bAuth", "bSanct", "bYear") + `\s*\))?` +
		`(?:\s+(?:` + authorshipBlock("cExAuth", "cAuth", "cSanct", "cYear") + `))?`
}

// NamePattern pairs a label (read by tests to pick a pattern; internal/job
// does not use it) with a compiled
// pattern. internal/job tries patterns in slice order and stops at the
// first match -- this is the Go-idiomatic stand-in for "one alternation
// chain" given RE2 forbids reusing a capture-group name across branches of
// a single compiled pattern (spec §4.2's "alternation chain" note).
type NamePattern struct {
	Label string
	Re    *regexp.Regexp
}

// NamePatterns is tried in this order for every name-parsing job. More
// specific forms (trinomial, cultivar, strain, phrase) precede the more
// general binomial and uninomial forms so a trinomial is never
// mis-recognised as "binomial plus leftover tail".
var NamePatterns = []NamePattern{
	{Label: "cultivar", Re: regexp.MustCompile(
		`^\s*(?P<genus>` + MONOMIAL + `)` +
			`(?:\s+(?P<species>` + EPITHET + `))?` +
			`\s+(?:cv\.\s*)?'(?P<cultivar>[^']+)'` +
			`\s*(?P<tail>.*)$`,
	)},
	{Label: "phrase", Re: regexp.MustCompile(
		`^\s*(?P<genus>` + MONOMIAL + `)` +
			`\s+sp\.\s+(?P<phrase>[^'"]+)$`,
	)},
	{Label: "strain", Re: regexp.MustCompile(
		`^\s*(?P<genus>` + MONOMIAL + `)` +
			`\s+(?P<species>` + EPITHET + `)` +
			`\s+(?:str\.|strain)\s+(?P<strain>[A-Za-z0-9][A-Za-z0-9\-\.]*)` +
			`\s*(?P<tail>.*)$`,
	)},
	{Label: "trinomial", Re: regexp.MustCompile(
		`^\s*(?:(?P<nothoGenus>` + HYBRID_SIGN + `))?` +
			`(?P<genus>` + MONOMIAL + `)` +
			`(?:\s*\(\s*(?P<infrageneric>` + MONOMIAL + `)\s*\))?` +
			`\s+(?:(?P<nothoSpecies>` + HYBRID_SIGN + `))?` +
			`(?P<species>` + EPITHET + `)` +
			`\s+(?P<rankMarker>` + RANK_MARKER + `)` +
			`\s*(?:(?P<nothoInfra>` + HYBRID_SIGN + `))?` +
			`(?P<infraspecific>` + EPITHET + `)` +
			authorshipSuffix() +
			`\s*(?P<tail>.*)$`,
	)},
	{Label: "binomial", Re: regexp.MustCompile(
		`^\s*(?:(?P<nothoGenus>` + HYBRID_SIGN + `))?` +
			`(?P<genus>` + MONOMIAL + `)` +
			`(?:\s*\(\s*(?P<infrageneric>` + MONOMIAL + `)\s*\))?` +
			`\s+(?:(?P<nothoSpecies>` + HYBRID_SIGN + `))?` +
			`(?P<species>` + EPITHET + `)` +
			authorshipSuffix() +
			`\s*(?P<tail>.*)$`,
	)},
	{Label: "uninomial", Re: regexp.MustCompile(
		`^\s*(?:(?P<nothoGenus>` + HYBRID_SIGN + `))?` +
			`(?P<uninomial>` + MONOMIAL + `)` +
			authorshipSuffix() +
			`\s*(?P<tail>.*)$`,
	)},
}
