package job

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/regexatoms"
)

// ParseAuthorship implements spec §4.5: match the standalone Authorship
// pattern against a trimmed, NFC-normalised authorship string and fold the
// result into a *parsed.ParsedAuthorship. Unlike ParseName's patterns,
// Authorship's every group is optional, so an input that fails to name a
// single author -- "", whitespace, stray punctuation -- must be rejected
// explicitly rather than trusted to fail the match on its own.
func ParseAuthorship(input string) (*parsed.ParsedAuthorship, error) {
	return ParseAuthorshipCtx(context.Background(), input)
}

// ParseAuthorshipCtx is ParseAuthorship's interruption-aware sibling, used
// by internal/harness. Authorship has only a single pattern to try, so the
// only checkpoint is the one at entry.
func ParseAuthorshipCtx(ctx context.Context, input string) (*parsed.ParsedAuthorship, error) {
	if err := ctx.Err(); err != nil {
		u := parsed.NewUnparsableAuthorship(input)
		return &parsed.ParsedAuthorship{
			Verbatim: input,
			State:    parsed.StateNone,
			Unparsed: []string{input},
		}, u
	}

	trimmed := norm.NFC.String(strings.TrimSpace(input))

	m := regexatoms.Authorship.FindStringSubmatch(trimmed)
	groups := groupMap(regexatoms.Authorship, m)

	if groups["bAuth"] == "" && groups["cAuth"] == "" {
		u := parsed.NewUnparsableAuthorship(input)
		return &parsed.ParsedAuthorship{
			Verbatim: input,
			State:    parsed.StateNone,
			Unparsed: []string{input},
		}, u
	}

	p := &parsed.ParsedAuthorship{Verbatim: input}
	p.Basionym = buildAuthorship(groups, "bExAuth", "bAuth", "bSanct", "bYear")
	p.Combination = buildAuthorship(groups, "cExAuth", "cAuth", "cSanct", "cYear")

	tail := strings.TrimSpace(groups["tail"])
	if tail == "" {
		p.State = parsed.StateComplete
	} else {
		p.State = parsed.StatePartial
		p.Unparsed = []string{tail}
	}

	return p, nil
}
