// Package job implements the per-call parsing algorithms from spec §4.4
// (parse) and §4.5 (parseAuthorship). It sits between internal/normalize
// (text rewriting) and internal/regexatoms (pattern matching) on one side
// and internal/harness (bounded execution) on the other: everything in
// this package is a plain, synchronous function of its input, with no
// goroutines or timeouts of its own.
package job

import (
	"regexp"
	"strings"

	"github.com/gnames/sciparse/ent/parsed"
)

// groupMap turns a regexp match into a name -> captured-text map, skipping
// unnamed groups and groups that did not participate in the match. This is
// the table-driven bridge spec §9 asks for: callers look fields up by
// group name instead of positional index, so adding a group to a pattern
// never shifts an unrelated field's index.
func groupMap(re *regexp.Regexp, m []string) map[string]string {
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(m) || m[i] == "" {
			continue
		}
		groups[name] = m[i]
	}
	return groups
}

// buildAuthorship assembles a *parsed.Authorship from one authorship
// block's ex-author, author and year groups, or nil if the block produced
// no author at all (an empty, unmatched optional block). sanctKey is not
// read here; sanctioningAuthor handles that group.
func buildAuthorship(groups map[string]string, exKey, authKey, sanctKey, yearKey string) *parsed.Authorship {
	auth := groups[authKey]
	if auth == "" {
		return nil
	}
	a := &parsed.Authorship{
		Authors: splitAuthorTeam(auth),
		Year:    groups[yearKey],
	}
	if ex := groups[exKey]; ex != "" {
		a.ExAuthors = splitAuthorTeam(ex)
	}
	return a
}

var authorTeamSepRe = regexp.MustCompile(`\s*,\s*|\s*&\s*|\s+and\s+|\s+et\s+`)

// splitAuthorTeam splits a matched AUTHOR_TEAM string back into the
// individual author names it was built from.
func splitAuthorTeam(team string) []string {
	parts := authorTeamSepRe.Split(team, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// sanctioningAuthor extracts the combination block's sanctioning author,
// which attaches to the whole ParsedName rather than to either Authorship
// value (spec §3: sanctioningAuthor is a name-level field, e.g. "Fr." in
// "Agaricus campestris L. : Fr.").
func sanctioningAuthor(groups map[string]string) string {
	if s := groups["cSanct"]; s != "" {
		return s
	}
	return groups["bSanct"]
}
