package normalize

import (
	"regexp"
	"strings"
)

var allCapsWordRe = regexp.MustCompile(`^[\p{Lu}][\p{Lu}\s\-]+$`)

// normalizeCase collapses whitespace, unifies hyphen and apostrophe
// variants, and retitles an ALL-CAPS input down to genus-case (initial
// capital, rest lower) so the regex patterns -- which expect a capitalised
// genus followed by lower-case epithets -- have a chance to match. Mixed-
// case and already-correct input passes through untouched -- spec §4.3
// step 5.
func normalizeCase(r *Result) {
	s := collapseWhitespace(r.Name)
	s = unifyHyphensApostrophes(s)

	if allCapsWordRe.MatchString(s) && strings.ContainsAny(s, " ") {
		s = titleCaseFirstWord(s)
	}

	r.Name = s
}

var wsRe = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

func unifyHyphensApostrophes(s string) string {
	replacer := strings.NewReplacer(
		"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-",
		"‘", "'", "’", "'", "‛", "'", "`", "'",
	)
	return replacer.Replace(s)
}

// titleCaseFirstWord lower-cases every word after the first, leaving the
// first word's initial letter capitalised -- the convention for a generic
// name (spec §3 invariant 7).
func titleCaseFirstWord(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lw := strings.ToLower(w)
		if i == 0 {
			words[i] = strings.ToUpper(lw[:1]) + lw[1:]
		} else {
			words[i] = lw
		}
	}
	return strings.Join(words, " ")
}
