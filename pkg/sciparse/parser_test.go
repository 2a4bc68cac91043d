package sciparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/pkg/config"
)

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.TimeoutMillis = -1

	p, err := New(cfg)
	assert.Nil(t, p)
	require.Error(t, err)
}

func TestParser_ParseAndClose(t *testing.T) {
	p := NewDefault()
	defer p.Close()

	pn, err := p.Parse("Homo sapiens Linnaeus, 1758", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Homo", pn.Genus)
	assert.Equal(t, "sapiens", pn.SpecificEpithet)
}

func TestParser_ParseAuthorship(t *testing.T) {
	p := NewDefault()
	defer p.Close()

	pa, err := p.ParseAuthorship("(Cleve, 1899) Jørgensen, 1905")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cleve"}, pa.Basionym.Authors)
}

func TestParser_Configs_OverridePrecedence(t *testing.T) {
	p := NewDefault()
	defer p.Close()

	override := &parsed.ParsedName{
		Verbatim: "garbled input",
		Type:     parsed.TypeScientific,
		Genus:    "Curated",
		State:    parsed.StateComplete,
	}
	p.Configs().SetName("garbled input", override)

	pn, err := p.Parse("garbled input", "", "")
	require.NoError(t, err)
	assert.Same(t, override, pn)
}

func TestParseBatch_PreservesOrder(t *testing.T) {
	p := NewDefault()
	defer p.Close()

	names := []string{
		"Homo sapiens Linnaeus, 1758",
		"BOLD:AAX3687",
		"Abies alba Mill.",
	}
	results := ParseBatch(p, names, "", "")
	require.Len(t, results, 3)

	assert.Equal(t, names[0], results[0].Input)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Homo", results[0].Parsed.Genus)

	assert.Equal(t, names[1], results[1].Input)
	require.Error(t, results[1].Err)

	assert.Equal(t, names[2], results[2].Input)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "Abies", results[2].Parsed.Genus)
}

func TestParseBatch_EmptyInput(t *testing.T) {
	p := NewDefault()
	defer p.Close()

	results := ParseBatch(p, nil, "", "")
	assert.Empty(t, results)
}
