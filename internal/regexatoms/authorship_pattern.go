package regexatoms

import "regexp"

// AuthorshipGroups names the nine capture groups spec §4.5 requires:
// basionym ex-author, basionym author, basionym sanctioning author,
// basionym year, combination ex-author, combination author, combination
// sanctioning author, combination year, and the trailing tail remainder.
// This is the internal contract between Authorship and the extractor in
// internal/job; a reimplementation with a different regex engine must
// reproduce these nine named groups to stay compatible.
var AuthorshipGroups = []string{
	"bExAuth", "bAuth", "bSanct", "bYear",
	"cExAuth", "cAuth", "cSanct", "cYear",
	"tail",
}

// one authorship block: optional "ex TEAM", the team itself, optional
// ": SANCTIONING_AUTHOR", optional ", YEAR".
func authorshipBlock(exGroup, authGroup, sanctGroup, yearGroup string) string {
	return `(?:ex\s+(?P<` + exGroup + `>` + AUTHOR_TEAM + `)\s+)?` +
		`(?P<` + authGroup + `>` + AUTHOR_TEAM + `)` +
		`(?:\s*:\s*(?P<` + sanctGroup + `>` + AUTHOR_TEAM + `))?` +
		`(?:\s*,?\s*(?P<` + yearGroup + `>` + YEAR_LOOSE + `))?`
}

// Authorship is the standalone authorship pattern used by
// parseAuthorship: an optional parenthesised basionym authorship block
// followed by an optional combination authorship block, then a tail.
//
//	(ex AUTHOR_TEAM )? AUTHOR_TEAM (: SANCT)? (, YEAR)?
//
// wrapped in outer parens for the basionym, and repeated unwrapped for the
// combination authorship that may follow it.
var Authorship = regexp.MustCompile(
	`^\s*` +
		`(?:\(\s*` + authorshipBlock("bExAuth", "bAuth", "bSanct", "bYear") + `\s*\)\s*)?` +
		`(?:` + authorshipBlock("cExAuth", "cAuth", "cSanct", "cYear") + `)?` +
		`\s*(?P<tail>.*)$`,
)
