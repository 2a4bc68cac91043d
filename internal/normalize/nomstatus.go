package normalize

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/internal/regexatoms"
)

// The phrase literals in regexatoms.NomStatusAlternation already end in
// their own terminal dot ("nom. nud.", "comb. nov.", ...); a trailing
// \b after that dot can never hold (a dot is a non-word character, so is
// the space or end-of-string after it), which made every dotted phrase in
// the vocabulary unmatchable. The leading boundary is enough to anchor
// the match against a preceding word character.
var nomStatusRe = regexp.MustCompile(
	`(?i)(?:^|[\s,;])(?:` + regexatoms.NomStatusAlternation + `)`,
)

// extractNomStatus matches and removes a known nomenclatural-status
// phrase, attaching it as nomenclaturalNote -- spec §4.3 step 6.
func extractNomStatus(r *Result) {
	m := nomStatusRe.FindString(r.Name)
	if m == "" {
		return
	}
	r.NomenclaturalNote = strings.Trim(strings.TrimSpace(m), ",; ")
	r.Name = strings.TrimSpace(nomStatusRe.ReplaceAllString(r.Name, ""))
}
