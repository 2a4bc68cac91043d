package normalize

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/vocab"
)

// virusMarkerRe matches the vocabulary of virus-name indicators: "virus",
// "viroid", ICTV-style abbreviations, and strain-style suffixes like
// "NPV" or phage notations ("Escherichia phage T4").
var virusMarkerRe = regexp.MustCompile(
	`(?i)\b(?:virus|viroid|phage|npv|satellite rna|prion)\b`,
)

// hybridFormulaRe matches two full capitalised-binomial-looking names
// joined by a hybrid sign -- spec §4.3 step 4 / §4.4 tie-break: "× between
// two tokens -> hybrid formula (unparsable)", as opposed to "×
// immediately before an epithet" which is a notho marker handled later by
// the name pattern itself.
var hybridFormulaRe = regexp.MustCompile(
	`^[\p{Lu}][\p{Ll}]+\s+[\p{Ll}][\p{Ll}\-]+(?:\s+\S+)*\s+[×xX]\s+[\p{Lu}][\p{Ll}]+\s+[\p{Ll}][\p{Ll}\-]+`,
)

// boldOTURe matches a BOLD process/BIN identifier, e.g. "BOLD:AAX3687".
var boldOTURe = regexp.MustCompile(`^BOLD:[A-Z0-9]+$`)

// shOTURe matches a UNITE species-hypothesis identifier, e.g.
// "SH123456.08FU".
var shOTURe = regexp.MustCompile(`^SH\d+\.\d+FU$`)

// detectFurtherUnparsableNames scans for virus markers, hybrid-formula
// "×" between two full names, and OTU identifiers, raising the
// appropriate typed unparsable error -- spec §4.3 step 4.
func detectFurtherUnparsableNames(r *Result) *parsed.UnparsableName {
	trimmed := strings.TrimSpace(r.Name)

	if boldOTURe.MatchString(trimmed) || shOTURe.MatchString(trimmed) ||
		strings.HasPrefix(trimmed, vocab.OTUBoldPrefix) {
		return parsed.NewUnparsableName(parsed.TypeOTU, r.Name)
	}

	if virusMarkerRe.MatchString(trimmed) {
		return parsed.NewUnparsableName(parsed.TypeVirus, r.Name)
	}

	if hybridFormulaRe.MatchString(trimmed) {
		return parsed.NewUnparsableName(parsed.TypeHybridFormula, r.Name)
	}

	return nil
}
