package normalize

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/vocab"
)

// auctNonRe matches "auct. non <whoever>", a placeholder marking a
// misapplied name -- never a real authorship, wherever it occurs.
var auctNonRe = regexp.MustCompile(`(?i)\bauct\.?\s+non\b[^,;]*`)

// trailingHortRe matches a bare "hort." (optionally "hort. ex.") only when
// it is the last thing in the string: mid-string "hort." is a legitimate,
// if informal, horticultural author abbreviation (vocab.AuthorAbbreviations)
// and must survive into authorship parsing.
var trailingHortRe = regexp.MustCompile(`(?i)\bhort\.(?:\s+ex\.?)?\s*$`)

// removePlaceholderAuthor strips "auct. non" and a trailing bare "hort."
// placeholder. If nothing of substance remains afterward, the whole input
// is a placeholder name -- spec §4.3 step 3.
func removePlaceholderAuthor(r *Result) *parsed.UnparsableName {
	stripped := auctNonRe.ReplaceAllString(r.Name, "")
	stripped = trailingHortRe.ReplaceAllString(stripped, "")
	stripped = strings.TrimSpace(stripped)

	if stripped == "" && r.Name != "" {
		return parsed.NewUnparsableName(parsed.TypePlaceholder, r.Name)
	}

	trimmedLower := strings.ToLower(strings.Trim(r.Name, " .,;:"))
	if vocab.IsPlaceholder(trimmedLower) {
		return parsed.NewUnparsableName(parsed.TypePlaceholder, r.Name)
	}

	r.Name = stripped
	return nil
}
