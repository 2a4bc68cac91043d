// Package normalize implements the deterministic, sequential text-rewrite
// pipeline from spec §4.3. Every step is pure string -> string except where
// it extracts a side-channel field (publishedIn, nomenclaturalNote, ...) or
// determines the input cannot be a scientific name at all, in which case it
// returns an *parsed.UnparsableName immediately instead of proceeding.
package normalize

import (
	"github.com/gnames/sciparse/ent/parsed"
)

// Result carries the canonicalised name text plus every side-channel field
// the pipeline peeled off along the way, for internal/job to fold into the
// final ParsedName.
type Result struct {
	Name string

	PublishedIn       string
	NomenclaturalNote string
	TaxonomicNote     string

	Candidatus bool
	Manuscript bool

	Warnings []parsed.Warning
}

func (r *Result) addWarning(w parsed.Warning) {
	for _, x := range r.Warnings {
		if x == w {
			return
		}
	}
	r.Warnings = append(r.Warnings, w)
}

// Run applies the pipeline steps in the fixed order from spec §4.3. It
// returns either a populated Result ready for regex matching, or an
// *parsed.UnparsableName when an early step determines the string is not,
// and cannot be decomposed as, a scientific name.
func Run(input string) (*Result, *parsed.UnparsableName) {
	r := &Result{Name: input}

	preClean(r)

	preparseNomRef(r)

	if unparsable := removePlaceholderAuthor(r); unparsable != nil {
		return r, unparsable
	}

	if unparsable := detectFurtherUnparsableNames(r); unparsable != nil {
		return r, unparsable
	}

	normalizeCase(r)

	extractNomStatus(r)

	extractSecReference(r)

	extractPublishedIn(r)

	normalizeHort(r)
	noQMarks(r)
	normBrackets(r)
	normWsPunct(r)

	if r.Name == "" {
		return r, parsed.NewUnparsableName(parsed.TypeNoName, input)
	}

	return r, nil
}
