package catalog

import (
	"fmt"
	"strings"

	"chatgto-server/internal/models"

	"github.com/paulhankin/poker"
)

// Suit order follows the evaluator: clubs, diamonds, hearts, spades.
var suitByCode = map[byte]uint8{
	'c': 0,
	'd': 1,
	'h': 2,
	's': 3,
}

// Ranks run from ace (1) to king (13).
var rankByCode = map[byte]uint8{
	'A': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7,
	'8': 8, '9': 9, 'T': 10, 'J': 11, 'Q': 12, 'K': 13,
}

// ParseCard converts a two character code such as "As" or "Td" into a card.
func ParseCard(code string) (poker.Card, error) {
	var none poker.Card
	if len(code) != 2 {
		return none, fmt.Errorf("%w: %q", models.ErrInvalidCard, code)
	}
	rank, ok := rankByCode[strings.ToUpper(code[:1])[0]]
	if !ok {
		return none, fmt.Errorf("%w: %q (rank)", models.ErrInvalidCard, code)
	}
	suit, ok := suitByCode[strings.ToLower(code[1:])[0]]
	if !ok {
		return none, fmt.Errorf("%w: %q (suit)", models.ErrInvalidCard, code)
	}
	card, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return none, fmt.Errorf("%w: %q: %v", models.ErrInvalidCard, code, err)
	}
	return card, nil
}

// CanonicalCard rewrites a parseable code to rank-upper, suit-lower form
// ("as" becomes "As"). Unparseable codes come back unchanged for validation
// to report.
func CanonicalCard(code string) string {
	if _, err := ParseCard(code); err != nil {
		return code
	}
	return strings.ToUpper(code[:1]) + strings.ToLower(code[1:])
}

func canonicalCards(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, CanonicalCard(code))
	}
	return out
}

// cardSet tracks cards already seen in a scenario.
type cardSet map[poker.Card]string

// add parses code and records it, failing on an unknown or repeated card.
func (cs cardSet) add(code, where string) error {
	card, err := ParseCard(code)
	if err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	if prev, dup := cs[card]; dup {
		return fmt.Errorf("%s: card %q already used by %s", where, code, prev)
	}
	cs[card] = where
	return nil
}
