package vocab

// AuthorAbbreviations are well-known single-token author abbreviations.
// Neither the atom builder nor the tests read this list; the AUTHOR_TOKEN
// atom is a structural pattern, not a disjunction over this list, because
// author names are an open set.
var AuthorAbbreviations = map[string]bool{
	"L.": true, "Mill.": true, "DC.": true, "Juss.": true, "Lam.": true,
	"Pers.": true, "Fr.": true, "Bory": true, "Spreng.": true,
	"Hook.": true, "Hook.f.": true, "Benth.": true, "A.Gray": true,
	"H.Karst.": true, "Balf.f.": true, "Jord.": true, "Boiss.": true,
	"Kuntze": true, "Raf.": true, "Nutt.": true, "Torr.": true,
	"Engl.": true, "Regel": true, "Schult.": true, "Willd.": true,
	"auct.": true, "hort.": true, "ined.": true,
}

// AuthorParticles are lower-case name particles that may appear inside an
// author surname without ending the AUTHOR_TOKEN (e.g. "von Linné",
// "van der Berg"). Multi-word particles are listed first; the list is not
// strictly ordered by length, and regexatoms sorts it longest first.
var AuthorParticles = []string{
	"van der", "van den", "von der",
	"de la", "de le",
	"van", "von", "de", "den", "der", "du", "da", "dos", "das",
	"la", "le", "ter", "ten", "af", "zu", "y",
}

// placeholderAuthorTokens are tokens that denote an anonymous, unpublished,
// or otherwise non-taxonomic "authorship", exposed through
// IsPlaceholderAuthorToken. removePlaceholderAuthor in the normalisation
// pipeline does not consult it; it uses its own "auct. non" and "hort."
// patterns.
var placeholderAuthorTokens = map[string]bool{
	"auct.":     true,
	"auct":      true,
	"hort.":     true,
	"hort":      true,
	"anon.":     true,
	"anon":      true,
	"ined.":     true,
	"ined":      true,
	"auct. non": true,
}

// IsPlaceholderAuthorToken reports whether tok (already lower-cased and
// trimmed) denotes a placeholder authorship.
func IsPlaceholderAuthorToken(tok string) bool { return placeholderAuthorTokens[tok] }
