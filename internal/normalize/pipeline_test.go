package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnames/sciparse/ent/parsed"
)

func TestRun_PlainBinomial(t *testing.T) {
	r, unparsable := Run("Homo sapiens Linnaeus, 1758")
	require.Nil(t, unparsable)
	assert.Equal(t, "Homo sapiens Linnaeus, 1758", r.Name)
	assert.Empty(t, r.Warnings)
}

func TestRun_HTMLEntitiesAndTags(t *testing.T) {
	r, unparsable := Run("<i>Homo&nbsp;sapiens</i> Linnaeus, 1758")
	require.Nil(t, unparsable)
	assert.Contains(t, r.Warnings, parsed.WarningHTMLEntities)
	assert.Contains(t, r.Warnings, parsed.WarningXMLTags)
	assert.NotContains(t, r.Name, "<")
}

func TestRun_NomenclaturalReference(t *testing.T) {
	r, unparsable := Run("Aus bus Smith in Jones, Flora 12:3. 1880")
	require.Nil(t, unparsable)
	assert.Equal(t, "Jones, Flora 12:3. 1880", r.PublishedIn)
	assert.Contains(t, r.Warnings, parsed.WarningNomenclaturalRef)
	assert.NotContains(t, r.Name, " in ")
}

func TestRun_AuctNonPlaceholderStripped(t *testing.T) {
	r, unparsable := Run("Aus bus auct. non Smith")
	require.Nil(t, unparsable)
	assert.NotContains(t, r.Name, "auct")
}

func TestRun_BareHortIsPlaceholderWhenAlone(t *testing.T) {
	_, unparsable := Run("hort.")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypePlaceholder, unparsable.Type)
}

func TestRun_MidStringHortSurvives(t *testing.T) {
	r, unparsable := Run("Rosa chinensis hort. ex Paxton")
	require.Nil(t, unparsable)
	assert.Contains(t, r.Name, "hort.")
}

func TestRun_BOLDIdentifierIsOTU(t *testing.T) {
	_, unparsable := Run("BOLD:AAX3687")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypeOTU, unparsable.Type)
}

func TestRun_HybridFormulaUnparsable(t *testing.T) {
	_, unparsable := Run("Pinus alba × Abies picea Mill.")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypeHybridFormula, unparsable.Type)
}

func TestRun_NothoGenusNotHybridFormula(t *testing.T) {
	_, unparsable := Run("×Abies Mill.")
	assert.Nil(t, unparsable)
}

func TestRun_VirusUnparsable(t *testing.T) {
	_, unparsable := Run("Tobacco mosaic virus")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypeVirus, unparsable.Type)
}

func TestRun_AllCapsRetitled(t *testing.T) {
	r, unparsable := Run("HOMO SAPIENS")
	require.Nil(t, unparsable)
	assert.Equal(t, "Homo sapiens", r.Name)
}

func TestRun_QuestionMarksRemoved(t *testing.T) {
	r, unparsable := Run("Aus bus?")
	require.Nil(t, unparsable)
	assert.NotContains(t, r.Name, "?")
	assert.Contains(t, r.Warnings, parsed.WarningQuestionMarksRemoved)
}

func TestRun_EnclosingQuotesStripped(t *testing.T) {
	r, unparsable := Run(`"Aus bus"`)
	require.Nil(t, unparsable)
	assert.Equal(t, "Aus bus", r.Name)
	assert.Contains(t, r.Warnings, parsed.WarningReplEnclosingQuote)
}

func TestRun_BracketsUnified(t *testing.T) {
	r, unparsable := Run("Aus bus {Smith} [1850]")
	require.Nil(t, unparsable)
	assert.NotContains(t, r.Name, "{")
	assert.NotContains(t, r.Name, "[")
}

func TestRun_SecReferenceExtracted(t *testing.T) {
	r, unparsable := Run("Aus bus Smith sensu Jones 1900")
	require.Nil(t, unparsable)
	assert.Equal(t, "Jones 1900", r.TaxonomicNote)
}

func TestRun_EmptyInputIsNoName(t *testing.T) {
	_, unparsable := Run("")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypeNoName, unparsable.Type)
}

func TestRun_WhitespaceOnlyIsNoName(t *testing.T) {
	_, unparsable := Run("   ")
	require.NotNil(t, unparsable)
	assert.Equal(t, parsed.TypeNoName, unparsable.Type)
}
