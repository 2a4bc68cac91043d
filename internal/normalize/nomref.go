package normalize

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
)

// nomRefRe recognises a bibliographic citation trailing the name proper,
// introduced by "in " and ending in a page/volume reference and often a
// year, e.g. "in Jones, Flora 12:3. 1880".
var nomRefRe = regexp.MustCompile(
	`\s+in\s+([A-Z][\w.,;:&' \-]*\d[\d:.\-]*\.?\s*(?:\(?\d{4}\)?)?)\s*$`,
)

// preparseNomRef detects and excises a trailing bibliographic citation,
// setting publishedIn and warning NOMENCLATURAL_REFERENCE -- spec §4.3
// step 2.
func preparseNomRef(r *Result) {
	m := nomRefRe.FindStringSubmatch(r.Name)
	if m == nil {
		return
	}
	r.PublishedIn = strings.TrimSpace(m[1])
	r.Name = strings.TrimSpace(nomRefRe.ReplaceAllString(r.Name, ""))
	r.addWarning(parsed.WarningNomenclaturalRef)
}

// extractPublishedIn recognises residual citation forms not anchored by
// "in " -- e.g. a bare trailing "Bot. Jahrb. Syst. 45: 123. 1910" after the
// nomenclatural-status phrase has already been peeled off -- spec §4.3
// step 8. It is deliberately conservative: it only fires when publishedIn
// is still empty, so it never overwrites what preparseNomRef already found.
func extractPublishedIn(r *Result) {
	if r.PublishedIn != "" {
		return
	}
	m := residualCitationRe.FindStringSubmatch(r.Name)
	if m == nil {
		return
	}
	r.PublishedIn = strings.TrimSpace(m[1])
	r.Name = strings.TrimSpace(residualCitationRe.ReplaceAllString(r.Name, ""))
	r.addWarning(parsed.WarningNomenclaturalRef)
}

var residualCitationRe = regexp.MustCompile(
	`\s+((?:[A-Z][\w.]*\.?\s*){1,4}\d+\s*:\s*\d+\s*\.?\s*\(?\d{4}\)?)\s*$`,
)
