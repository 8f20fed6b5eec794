package models

import (
	"fmt"
	"strings"
)

// Street identifies the betting round a scenario's decision happens on.
type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Streets lists every street in hand order.
var Streets = []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver}

// ParseStreet accepts canonical names as well as the older "pre-flop" and
// "post-flop" spellings.
func ParseStreet(raw string) (Street, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "preflop", "pre-flop":
		return StreetPreflop, nil
	case "flop", "post-flop", "postflop":
		return StreetFlop, nil
	case "turn":
		return StreetTurn, nil
	case "river":
		return StreetRiver, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStreet, raw)
}

// Valid reports whether s is one of the known streets.
func (s Street) Valid() bool {
	switch s {
	case StreetPreflop, StreetFlop, StreetTurn, StreetRiver:
		return true
	}
	return false
}

// BoardSize is the number of community cards dealt once the street is reached.
func (s Street) BoardSize() int {
	switch s {
	case StreetFlop:
		return 3
	case StreetTurn:
		return 4
	case StreetRiver:
		return 5
	}
	return 0
}

// LegacyName is the spelling used by the GTO scenario list endpoint.
func (s Street) LegacyName() string {
	switch s {
	case StreetPreflop:
		return "pre-flop"
	case StreetFlop:
		return "post-flop"
	}
	return string(s)
}

func (s Street) String() string {
	return string(s)
}
