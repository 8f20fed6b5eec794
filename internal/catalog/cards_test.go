package catalog

import (
	"testing"

	"chatgto-server/internal/models"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	valid := []string{"As", "Ks", "Td", "2c", "9h", "Qd", "Jc"}
	seen := map[poker.Card]bool{}
	for _, code := range valid {
		card, err := ParseCard(code)
		require.NoError(t, err, code)
		assert.False(t, seen[card], "distinct codes must map to distinct cards: %s", code)
		seen[card] = true
	}

	for _, code := range []string{"", "A", "Ass", "1s", "Ax", "10h", "  "} {
		_, err := ParseCard(code)
		assert.ErrorIs(t, err, models.ErrInvalidCard, "code %q", code)
	}
}

func TestParseCard_CaseInsensitive(t *testing.T) {
	upper, err := ParseCard("AS")
	require.NoError(t, err)
	lower, err := ParseCard("as")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCanonicalCard(t *testing.T) {
	assert.Equal(t, "As", CanonicalCard("as"))
	assert.Equal(t, "Td", CanonicalCard("tD"))
	assert.Equal(t, "Kh", CanonicalCard("Kh"))
	assert.Equal(t, "Zz", CanonicalCard("Zz"))
}
