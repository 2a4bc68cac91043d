// Package regexatoms assembles the vocabulary tables in internal/vocab
// into named regular-expression fragments, then compiles the top-level
// name and authorship patterns from them.
//
// Go's regexp package is RE2-based: linear time, no backreferences, no
// lookaround. spec §9's design notes explicitly allow an RE2-style backend
// to return synchronously since it cannot backtrack catastrophically; this
// package leans on that property, but internal/harness still enforces the
// configured wall-clock deadline so the contract holds even under a future
// change of regex engine.
//
// Because RE2 forbids reusing a capture-group name twice in one compiled
// pattern, the "alternation chain" in spec §4.2 is implemented as an
// ordered table of independently compiled patterns (NamePatterns), tried
// in priority order by internal/job -- not as one monolithic regex. Every
// pattern in the table uses the same named-group vocabulary (see
// group names below), so the extractor in internal/job is table-driven
// exactly as spec §9 recommends.
package regexatoms

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/internal/vocab"
)

// Letter classes used throughout. lcLetter covers the accented Latin
// letters that occur in European epithets (e.g. "russatum", "sieboldii",
// "brasiliensis" need no diacritics, but "öfner", "straussii" style
// transliterations do appear in the wild).
const (
	lcLetter = `a-zàáâãäåæçèéêëìíîïðñòóôõöøùúûüýÿ`
	ucLetter = `A-ZÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝ`
)

// EPITHET matches a lower-case morpheme of 2+ letters, allowing internal
// hyphens and apostrophes. It does NOT exclude blacklisted tokens itself
// (RE2 has no negative lookahead); callers must check
// vocab.IsBlacklistedEpithet on the captured text.
const EPITHET = `[` + lcLetter + `][` + lcLetter + `\-']{1,}`

// MONOMIAL matches a capitalised genus-like token of 2+ letters.
const MONOMIAL = `[` + ucLetter + `][` + lcLetter + `]{1,}`

// HYBRID_SIGN matches either the true multiplication sign or an ASCII "x"
// used as its substitute, both optionally followed by whitespace.
const HYBRID_SIGN = `(?:\x{00D7}|[xX]\.?)\s*`

// YEAR_LOOSE matches a four-digit year, optionally wrapped in brackets or
// parens, optionally followed by a short range suffix or a trailing "?",
// optionally preceded by "publ.".
const YEAR_LOOSE = `(?:publ\.\s*)?[\[(]?\d{4}[a-z]?(?:\s*-\s*\d{2,4})?[\])]?\??`

// authorSurname is one capitalised name token, with optional embedded
// periods/hyphens/apostrophes (e.g. "H.Karst.", "Balf.f.", "O'Brien").
const authorSurname = `[` + ucLetter + `](?:[` + lcLetter + ucLetter + `'’\.\-])*`

// authorParticleAlt is a disjunction of the known lower-case author-name
// particles, longest first, built at init from vocab.AuthorParticles.
var authorParticleAlt = buildParticleAlternation()

func buildParticleAlternation() string {
	parts := make([]string, len(vocab.AuthorParticles))
	copy(parts, vocab.AuthorParticles)
	for i := 1; i < len(parts); i++ {
		j := i
		for j > 0 && len(parts[j-1]) < len(parts[j]) {
			parts[j-1], parts[j] = parts[j], parts[j-1]
			j--
		}
	}
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, "|")
}

// AUTHOR_TOKEN matches one author: zero or more particle words, then the
// surname token itself.
var AUTHOR_TOKEN = `(?:(?:` + authorParticleAlt + `)\s+)*` + authorSurname

// authorSep joins two authors within an AUTHOR_TEAM.
const authorSep = `(?:\s*,\s*|\s*&\s*|\s+and\s+|\s+et\s+)`

// AUTHOR_TEAM matches one or more AUTHOR_TOKENs joined by AuthorSep.
var AUTHOR_TEAM = AUTHOR_TOKEN + `(?:` + authorSep + AUTHOR_TOKEN + `)*`

// RANK_MARKER is a disjunction of every rank-marker literal, longest match
// first so e.g. "subsp." is preferred over a hypothetical shorter prefix.
var RANK_MARKER = buildRankMarkerAlternation()

func buildRankMarkerAlternation() string {
	lits := vocab.RankMarkerLiterals()
	quoted := make([]string, len(lits))
	for i, l := range lits {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}

// NomStatusAlternation is a disjunction of every known nomenclatural status
// phrase, longest first, case-sensitive as written in vocab.
var NomStatusAlternation = buildNomStatusAlternation()

func buildNomStatusAlternation() string {
	lits := make([]string, len(vocab.NomStatusPhrases))
	copy(lits, vocab.NomStatusPhrases)
	for i := 1; i < len(lits); i++ {
		j := i
		for j > 0 && len(lits[j-1]) < len(lits[j]) {
			lits[j-1], lits[j] = lits[j], lits[j-1]
			j--
		}
	}
	for i, l := range lits {
		lits[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(lits, "|")
}
