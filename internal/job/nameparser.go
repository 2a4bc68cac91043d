package job

import (
	"context"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/normalize"
	"github.com/gnames/sciparse/internal/regexatoms"
	"github.com/gnames/sciparse/internal/vocab"
)

// ParseName implements spec §4.4: normalise, try regexatoms.NamePatterns in
// order, and fold the first match's named groups into a *parsed.ParsedName
// via the table-driven extractor in extractor.go. rankHint and codeHint are the
// optional caller-supplied disambiguators from spec §4.1; pass "" for
// either when the caller has no opinion.
//
// ParseName always returns a non-nil *parsed.ParsedName, even on failure:
// the returned value carries the classifier's best-guess Type and State
// NONE so a caller that ignores the error still gets a usable verbatim
// record (spec §4.4 step g).
func ParseName(input string, rankHint parsed.Rank, codeHint parsed.NomCode) (*parsed.ParsedName, error) {
	return ParseNameCtx(context.Background(), input, rankHint, codeHint)
}

// ParseNameCtx is ParseName's interruption-aware sibling: internal/harness
// calls this form so a deadline can be observed between pattern-match
// attempts, the checkpoint granularity spec §4.7 asks for ("regex matching
// is invoked through an interruption-aware wrapper that periodically
// checks a cancel flag between match attempts"). RE2 itself never
// backtracks, so no checkpoint is needed mid-match -- only between the
// independently compiled patterns in the table.
func ParseNameCtx(ctx context.Context, input string, rankHint parsed.Rank, codeHint parsed.NomCode) (*parsed.ParsedName, error) {
	if err := ctx.Err(); err != nil {
		u := parsed.NewUnparsableName(parsed.TypeNoName, input)
		return unparsableResult(input, u), u
	}

	res, unparsable := normalize.Run(input)
	if unparsable != nil {
		return unparsableResult(input, unparsable), unparsable
	}

	for _, np := range regexatoms.NamePatterns {
		if err := ctx.Err(); err != nil {
			u := parsed.NewUnparsableName(parsed.TypeNoName, input)
			return unparsableResult(input, u), u
		}
		m := np.Re.FindStringSubmatch(res.Name)
		if m == nil {
			continue
		}
		return buildFromPattern(input, res, groupMap(np.Re, m), rankHint, codeHint), nil
	}

	t := classifyUnmatched(res.Name)
	u := parsed.NewUnparsableName(t, input)
	return unparsableResult(input, u), u
}

func unparsableResult(input string, u *parsed.UnparsableName) *parsed.ParsedName {
	return &parsed.ParsedName{
		Verbatim: input,
		Type:     u.Type,
		State:    parsed.StateNone,
		Unparsed: []string{input},
	}
}

func buildFromPattern(
	input string,
	res *normalize.Result,
	groups map[string]string,
	rankHint parsed.Rank,
	codeHint parsed.NomCode,
) *parsed.ParsedName {
	p := &parsed.ParsedName{
		Verbatim: input,
		Type:     parsed.TypeScientific,
	}

	p.Uninomial = groups["uninomial"]
	p.Genus = groups["genus"]
	p.InfragenericEpithet = groups["infrageneric"]
	p.SpecificEpithet = groups["species"]
	p.CultivarEpithet = groups["cultivar"]
	p.Strain = groups["strain"]
	p.Phrase = groups["phrase"]
	p.InfraspecificEpithet = groups["infraspecific"]

	applyNotho(p, groups)
	applyRankAndCode(p, groups, rankHint, codeHint)
	indetermined := applyBlacklistedEpithet(p)

	p.BasionymAuthorship = buildAuthorship(groups, "bExAuth", "bAuth", "bSanct", "bYear")
	p.CombinationAuthorship = buildAuthorship(groups, "cExAuth", "cAuth", "cSanct", "cYear")
	p.SanctioningAuthor = sanctioningAuthor(groups)

	p.PublishedIn = res.PublishedIn
	p.NomenclaturalNote = res.NomenclaturalNote
	p.TaxonomicNote = res.TaxonomicNote
	p.Candidatus = res.Candidatus
	p.Manuscript = res.Manuscript
	for _, w := range res.Warnings {
		p.AddWarning(w)
	}

	tail := strings.TrimSpace(groups["tail"])
	if indetermined && tail == "." {
		tail = ""
	}
	if tail == "" {
		p.State = parsed.StateComplete
	} else {
		p.State = parsed.StatePartial
		p.Unparsed = []string{tail}
	}

	return p
}

func applyNotho(p *parsed.ParsedName, groups map[string]string) {
	switch {
	case groups["nothoSpecies"] != "":
		p.Notho = parsed.NothoSpecific
	case groups["nothoInfra"] != "":
		p.Notho = parsed.NothoInfraspecific
	case groups["nothoGenus"] != "":
		p.Notho = parsed.NothoGeneric
	}
}

func applyRankAndCode(p *parsed.ParsedName, groups map[string]string, rankHint parsed.Rank, codeHint parsed.NomCode) {
	marker := groups["rankMarker"]

	switch {
	case marker != "":
		if r, ok := vocab.RankMarkers[marker]; ok {
			p.Rank = r
		}
	case p.CultivarEpithet != "":
		p.Rank = parsed.RankCultivar
	case p.Strain != "":
		p.Rank = parsed.RankStrain
	case p.SpecificEpithet != "" || p.Phrase != "":
		p.Rank = parsed.RankSpecies
	case rankHint != "":
		p.Rank = rankHint
	}

	switch {
	case codeHint != "":
		p.Code = codeHint
	case marker != "" && vocab.IsBotanicalOnlyMarker(marker):
		p.Code = parsed.CodeBotanical
	case p.CultivarEpithet != "":
		p.Code = parsed.CodeCultivars
	}
}

// applyBlacklistedEpithet handles the "Genus sp." family of inputs: the
// binomial pattern happily matches "sp" as a syntactically valid epithet,
// but vocab.EpithetBlacklist marks it as an indetermination placeholder,
// not a real specific epithet -- spec §4.4's indetermined-species edge
// case.
func applyBlacklistedEpithet(p *parsed.ParsedName) bool {
	if p.SpecificEpithet == "" {
		return false
	}
	lower := strings.ToLower(p.SpecificEpithet)
	if !vocab.IsBlacklistedEpithet(lower) {
		return false
	}
	p.SpecificEpithet = ""
	p.Rank = parsed.RankSpecies
	p.AddWarning(parsed.WarningIndetermined)
	return true
}
