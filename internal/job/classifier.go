package job

import (
	"log/slog"
	"regexp"

	"github.com/gnames/sciparse/ent/parsed"
)

// looksLikeWords matches residue that is still plausibly natural-language
// text: at least two whitespace-separated words made of letters,
// apostrophes, dots and hyphens. Anything that
// survived normalisation but fails every pattern in
// regexatoms.NamePatterns without looking like prose (e.g. it is mostly
// digits or punctuation) is treated as NO_NAME instead of INFORMAL.
var looksLikeWords = regexp.MustCompile(`^[\p{L}'.\-]+(?:\s+[\p{L}'.\-]+)+$`)

// classifyUnmatched decides the NameType for text that survived
// normalisation (so it is not a virus, hybrid formula, OTU, or
// placeholder) but matched none of regexatoms.NamePatterns. This resolves
// the INFORMAL/PLACEHOLDER boundary left open by the grammar itself:
// anything that still reads as words is an informal name (e.g. a common
// name or a garbled binomial), while everything else has nothing left to
// classify as a name at all.
func classifyUnmatched(residue string) parsed.NameType {
	if residue == "" {
		return parsed.TypeNoName
	}
	if looksLikeWords.MatchString(residue) {
		slog.Debug("classifier: word-like residue", "residue", residue, "type", parsed.TypeInformal)
		return parsed.TypeInformal
	}
	slog.Debug("classifier: non-word residue", "residue", residue, "type", parsed.TypeNoName)
	return parsed.TypeNoName
}
