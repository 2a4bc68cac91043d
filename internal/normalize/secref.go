package normalize

import (
	"regexp"
	"strings"
)

var secRefRe = regexp.MustCompile(`(?i)\s+(?:sensu|sec\.?)\s+(.+)$`)

// extractSecReference matches a trailing "sensu ..." or "sec. ..." taxon
// concept reference, attaching it as taxonomicNote -- spec §4.3 step 7.
func extractSecReference(r *Result) {
	m := secRefRe.FindStringSubmatch(r.Name)
	if m == nil {
		return
	}
	r.TaxonomicNote = strings.TrimSpace(m[1])
	r.Name = strings.TrimSpace(secRefRe.ReplaceAllString(r.Name, ""))
}
