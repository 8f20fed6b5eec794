package models

// GtoAction is one decision option offered by a scenario together with its
// precomputed expected value.
type GtoAction struct {
	Action        string  `json:"action" yaml:"action"`
	ExpectedValue float64 `json:"ev" yaml:"ev"`
	Explanation   string  `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Hero is the seat the practicing user plays.
type Hero struct {
	Position  string
	StackSize int
	HoleCards [2]string
}

// Opponent is a non-hero participant. Hole cards are known server side only.
type Opponent struct {
	Position  string
	HoleCards [2]string
}

// Scenario is an immutable decision point used as practice content.
// Board holds every community card dealt so far, in dealing order; its length
// matches Street.BoardSize().
type Scenario struct {
	ID            string
	Category      string
	Street        Street
	Hero          Hero
	Opponents     []Opponent
	Board         []string
	Actions       []GtoAction
	CorrectAction GtoAction
}

// FindAction returns the action with exactly the given label.
func (s *Scenario) FindAction(label string) (GtoAction, bool) {
	for _, a := range s.Actions {
		if a.Action == label {
			return a, true
		}
	}
	return GtoAction{}, false
}

// Flop returns the first three board cards, or nil before the flop.
func (s *Scenario) Flop() []string {
	if len(s.Board) < 3 {
		return nil
	}
	return append([]string(nil), s.Board[:3]...)
}

// Turn returns the fourth board card, or "" before the turn.
func (s *Scenario) Turn() string {
	if len(s.Board) < 4 {
		return ""
	}
	return s.Board[3]
}

// River returns the fifth board card, or "" before the river.
func (s *Scenario) River() string {
	if len(s.Board) < 5 {
		return ""
	}
	return s.Board[4]
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (s Scenario) Clone() Scenario {
	out := s
	if s.Opponents != nil {
		out.Opponents = append([]Opponent(nil), s.Opponents...)
	}
	if s.Board != nil {
		out.Board = append([]string(nil), s.Board...)
	}
	if s.Actions != nil {
		out.Actions = append([]GtoAction(nil), s.Actions...)
	}
	return out
}
