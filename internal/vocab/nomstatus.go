package vocab

// NomStatusPhrases is the list of known nomenclatural-status phrase
// literals, grouped by leading word rather than ordered by length;
// regexatoms.buildNomStatusAlternation sorts them longest first. "nom."
// alone is not a status phrase; it is always part of one of these.
var NomStatusPhrases = []string{
	"nom. ambig.",
	"nom. confus.",
	"nom. conserv.",
	"nom. cons. prop.",
	"nom. cons.",
	"nom. dub.",
	"nom. illeg.",
	"nom. inval.",
	"nom. nov.",
	"nom. nud.",
	"nom. obl.",
	"nom. oppr.",
	"nom. praeoccup.",
	"nom. prov.",
	"nom. rej. prop.",
	"nom. rejic.",
	"nom. rej.",
	"nom. superfl.",
	"nom. utique rej.",
	"comb. inval.",
	"comb. nov.",
	"comb. nud.",
	"stat. nov.",
	"status novus",
	"sp. nov.",
	"spec. nov.",
	"gen. nov.",
	"var. nov.",
	"nom. et typ. cons.",
	"orth. cons.",
	"orth. rej.",
	"pro syn.",
	"pro hybr.",
}
