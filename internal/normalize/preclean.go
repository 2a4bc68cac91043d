package normalize

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/gnames/gnlib"
	"golang.org/x/text/unicode/norm"

	"github.com/gnames/sciparse/ent/parsed"
)

var xmlTagRe = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9:_\-]*(?:\s+[^<>]*)?/?>`)
var htmlEntityRe = regexp.MustCompile(`&(?:#\d+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

// preClean strips control characters, repairs malformed UTF-8, unescapes
// HTML entities, removes XML tags, and normalises Unicode to NFC -- spec
// §4.3 step 1.
func preClean(r *Result) {
	s := gnlib.FixUtf8(r.Name)

	s = stripControlChars(s)

	if htmlEntityRe.MatchString(s) {
		unescaped := html.UnescapeString(s)
		if unescaped != s {
			r.addWarning(parsed.WarningHTMLEntities)
			s = unescaped
		}
	}

	if xmlTagRe.MatchString(s) {
		r.addWarning(parsed.WarningXMLTags)
		s = xmlTagRe.ReplaceAllString(s, " ")
	}

	s = norm.NFC.String(s)

	r.Name = strings.TrimSpace(s)
}

func stripControlChars(s string) string {
	return strings.Map(func(rn rune) rune {
		if unicode.IsControl(rn) && rn != '\t' {
			return -1
		}
		return rn
	}, s)
}
