package vocab

import "github.com/gnames/sciparse/ent/parsed"

// CodeMarkers maps literal nomenclatural-code hint tokens (as they might
// appear appended to a name, e.g. "(bot.)") to a NomCode. The rank-marker
// resolver in internal/job does not read this table; it infers the code
// from the caller's hint, IsBotanicalOnlyMarker and cultivar epithets.
var CodeMarkers = map[string]parsed.NomCode{
	"bot.":  parsed.CodeBotanical,
	"zool.": parsed.CodeZoological,
	"bact.": parsed.CodeBacterial,
	"cult.": parsed.CodeCultivars,
	"vir.":  parsed.CodeVirus,
}

// botanicalOnlyMarkers are rank markers that only ever occur under the
// botanical code; the rank-marker resolver uses this to bias Code
// inference when the caller passed no explicit code hint.
var botanicalOnlyMarkers = map[string]bool{
	"var.": true, "subvar.": true, "f.": true, "forma": true,
	"subf.": true, "cv.": true, "convar.": true, "grex": true,
	"nothovar.": true, "sect.": true, "subsect.": true,
	"ser.": true, "subser.": true,
}

// IsBotanicalOnlyMarker reports whether marker m only occurs in botanical
// nomenclature, used to bias Code inference absent an explicit hint.
func IsBotanicalOnlyMarker(m string) bool { return botanicalOnlyMarkers[m] }
