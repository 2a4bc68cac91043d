// Package vocab holds the frozen, process-lifetime literal tables that the
// regex atom library and the classifier consult: rank markers,
// nomenclatural-status phrases, author abbreviations, particles,
// blacklisted epithets and placeholder tokens. Every table here is built
// once at package init and never mutated afterwards, so it is safe for
// unsynchronised concurrent reads from any number of parser goroutines.
package vocab

import "github.com/gnames/sciparse/ent/parsed"

// RankMarkers maps every literal rank-marker token recognised by the
// grammar to its canonical Rank. Longer, more specific markers are listed
// before shorter ones sharing a prefix only for readability; lookup is by
// exact map key, not by iteration order.
var RankMarkers = map[string]parsed.Rank{
	"subsp.":  parsed.RankSubspecies,
	"subsp":   parsed.RankSubspecies,
	"ssp.":    parsed.RankSubspecies,
	"ssp":     parsed.RankSubspecies,
	"var.":    parsed.RankVariety,
	"var":     parsed.RankVariety,
	"v.":      parsed.RankVariety,
	"subvar.": parsed.RankSubvariety,
	"subvar":  parsed.RankSubvariety,
	"f.":      parsed.RankForm,
	"fo.":     parsed.RankForm,
	"forma":   parsed.RankForma,
	"form":    parsed.RankForm,
	"subf.":   parsed.RankSubform,
	"subform": parsed.RankSubform,
	"cv.":     parsed.RankCultivar,
	"convar.": parsed.RankCultivarGroup,
	"grex":    parsed.RankGrex,
	"gx.":     parsed.RankGrex,
	"nothovar.": parsed.RankVariety,
	"morph.":  parsed.RankMorph,
	"ab.":     parsed.RankAberration,
	"aberr.":  parsed.RankAberration,
	"natio":   parsed.RankNatio,
	"biovar.": parsed.RankBiovar,
	"serovar.": parsed.RankSerovar,
	"pv.":      parsed.RankPathovar,
	"pathovar": parsed.RankPathovar,
	"subgen.":  parsed.RankSubgenus,
	"subgenus": parsed.RankSubgenus,
	"sect.":    parsed.RankSection,
	"section":  parsed.RankSection,
	"subsect.": parsed.RankSubsection,
	"ser.":     parsed.RankSeries,
	"series":   parsed.RankSeries,
	"subser.":  parsed.RankSubseries,
	"trib.":    parsed.RankTribe,
	"tribe":    parsed.RankTribe,
	"subtrib.": parsed.RankSubtribe,
	"fam.":     parsed.RankFamily,
	"family":   parsed.RankFamily,
	"subfam.":  parsed.RankSubfamily,
	"ord.":     parsed.RankOrder,
	"order":    parsed.RankOrder,
	"subord.":  parsed.RankSuborder,
	"cl.":      parsed.RankClass,
	"class":    parsed.RankClass,
	"phyl.":    parsed.RankPhylum,
	"phylum":   parsed.RankPhylum,
}

// RankToMarker is the inverse of the most canonical marker per rank. The
// regex atoms are built from RankMarkerLiterals instead, and no code in
// this module reads RankToMarker.
var RankToMarker = map[parsed.Rank]string{
	parsed.RankSubspecies:    "subsp.",
	parsed.RankVariety:       "var.",
	parsed.RankSubvariety:    "subvar.",
	parsed.RankForm:          "f.",
	parsed.RankForma:         "forma",
	parsed.RankSubform:       "subf.",
	parsed.RankCultivar:      "cv.",
	parsed.RankCultivarGroup: "convar.",
	parsed.RankGrex:          "grex",
	parsed.RankMorph:         "morph.",
	parsed.RankAberration:    "ab.",
	parsed.RankNatio:         "natio",
	parsed.RankBiovar:        "biovar.",
	parsed.RankSerovar:       "serovar.",
	parsed.RankPathovar:      "pv.",
	parsed.RankSubgenus:      "subgen.",
	parsed.RankSection:       "sect.",
	parsed.RankSubsection:    "subsect.",
	parsed.RankSeries:        "ser.",
	parsed.RankSubseries:     "subser.",
	parsed.RankTribe:         "trib.",
	parsed.RankSubtribe:      "subtrib.",
	parsed.RankFamily:        "fam.",
	parsed.RankSubfamily:     "subfam.",
	parsed.RankOrder:         "ord.",
	parsed.RankSuborder:      "subord.",
	parsed.RankClass:         "cl.",
	parsed.RankPhylum:        "phyl.",
}

// RankMarkerLiterals lists every marker literal, longest first, so the
// regex atom builder can compose an unambiguous disjunction (a shorter
// prefix such as "form" must not shadow "forma" if tried first).
func RankMarkerLiterals() []string {
	lits := make([]string, 0, len(RankMarkers))
	for k := range RankMarkers {
		lits = append(lits, k)
	}
	sortByLengthDesc(lits)
	return lits
}

func sortByLengthDesc(ss []string) {
	for i := 1; i < len(ss); i++ {
		j := i
		for j > 0 && len(ss[j-1]) < len(ss[j]) {
			ss[j-1], ss[j] = ss[j], ss[j-1]
			j--
		}
	}
}
