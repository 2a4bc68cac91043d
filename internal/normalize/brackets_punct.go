package normalize

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
)

// normalizeHort lower-cases stray case variants of the "hort." author
// abbreviation ("Hort.", "HORT.") to the canonical lower-case form so the
// authorship atoms match it consistently -- spec §4.3 step 9
// (normalizeHort).
func normalizeHort(r *Result) {
	r.Name = hortCaseRe.ReplaceAllString(r.Name, "hort.")
}

var hortCaseRe = regexp.MustCompile(`(?i)\bhort\.`)

var questionMarkRe = regexp.MustCompile(`\?+`)

// noQMarks removes stray question marks used to flag uncertain
// determinations, warning QUESTION_MARKS_REMOVED -- spec §4.3 step 9.
func noQMarks(r *Result) {
	if !strings.Contains(r.Name, "?") {
		return
	}
	r.Name = strings.TrimSpace(questionMarkRe.ReplaceAllString(r.Name, ""))
	r.addWarning(parsed.WarningQuestionMarksRemoved)
}

var enclosingQuoteRe = regexp.MustCompile(`^["“”]([^"“”]*)["“”]$`)
var curlyBracketRe = regexp.MustCompile(`[\{\}]`)
var squareBracketRe = regexp.MustCompile(`[\[\]]`)

// normBrackets unifies every bracket style to plain parentheses -- spec
// §4.3 step 9 (normBrackets) -- and strips a pair of quotes enclosing the
// entire name, warning REPL_ENCLOSING_QUOTE.
func normBrackets(r *Result) {
	if m := enclosingQuoteRe.FindStringSubmatch(r.Name); m != nil {
		r.Name = strings.TrimSpace(m[1])
		r.addWarning(parsed.WarningReplEnclosingQuote)
	}

	s := curlyBracketRe.ReplaceAllStringFunc(r.Name, func(m string) string {
		if m == "{" {
			return "("
		}
		return ")"
	})
	s = squareBracketRe.ReplaceAllStringFunc(s, func(m string) string {
		if m == "[" {
			return "("
		}
		return ")"
	})
	r.Name = s
}

var strayPunctRe = regexp.MustCompile(`\s+([,;:])`)
var repeatedPunctRe = regexp.MustCompile(`([,;:.])\1+`)

// normWsPunct collapses whitespace once more (brackets/quote removal can
// leave doubled spaces), removes whitespace in front of a comma, semicolon
// or colon, and collapses repeated punctuation runs -- spec §4.3 step 9
// (normWsPunct), the pipeline's final pass.
func normWsPunct(r *Result) {
	s := strayPunctRe.ReplaceAllString(r.Name, "$1")
	s = repeatedPunctRe.ReplaceAllString(s, "$1")
	s = collapseWhitespace(s)
	r.Name = s
}
