package vocab_test

import (
	"testing"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/vocab"
	"github.com/stretchr/testify/assert"
)

func TestRankMarkers(t *testing.T) {
	assert.Equal(t, parsed.RankSubspecies, vocab.RankMarkers["subsp."])
	assert.Equal(t, parsed.RankVariety, vocab.RankMarkers["var."])
	assert.Equal(t, parsed.RankForm, vocab.RankMarkers["f."])
}

func TestRankMarkerLiteralsSortedLongestFirst(t *testing.T) {
	lits := vocab.RankMarkerLiterals()
	for i := 1; i < len(lits); i++ {
		assert.GreaterOrEqual(t, len(lits[i-1]), len(lits[i]))
	}
}

func TestIsBlacklistedEpithet(t *testing.T) {
	assert.True(t, vocab.IsBlacklistedEpithet("sp."))
	assert.True(t, vocab.IsBlacklistedEpithet("indet"))
	assert.False(t, vocab.IsBlacklistedEpithet("alba"))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, vocab.IsPlaceholder("incertae sedis"))
	assert.True(t, vocab.IsPlaceholder("unknown"))
	assert.False(t, vocab.IsPlaceholder("abies alba"))
}

func TestIsPlaceholderAuthorToken(t *testing.T) {
	assert.True(t, vocab.IsPlaceholderAuthorToken("hort."))
	assert.False(t, vocab.IsPlaceholderAuthorToken("mill."))
}
