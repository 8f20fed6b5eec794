package presenter

import "chatgto-server/internal/models"

// HeroView is the hero seat as sent to clients.
type HeroView struct {
	Position  string   `json:"position"`
	HoleCards []string `json:"hole_cards"`
	StackSize int      `json:"stack_size"`
}

// OpponentView carries the seat only. Hole cards stay server side.
type OpponentView struct {
	Position string `json:"position"`
}

// ScenarioResponse is the stage view used by the "current scenario" flow.
// Streets not yet reached are omitted.
type ScenarioResponse struct {
	ID         string             `json:"id"`
	Category   string             `json:"category"`
	Stage      string             `json:"stage"`
	Hero       HeroView           `json:"hero"`
	Opponents  []OpponentView     `json:"opponents"`
	GtoActions []models.GtoAction `json:"gto_actions"`
	Flop       []string           `json:"flop,omitempty"`
	Turn       string             `json:"turn,omitempty"`
	River      string             `json:"river,omitempty"`
}

// FlatScenario is the plain list shape: action labels only, no EV data.
type FlatScenario struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Position       string   `json:"position"`
	StackSize      int      `json:"stack_size"`
	HoleCards      []string `json:"hole_cards"`
	CommunityCards []string `json:"community_cards"`
	ActionOptions  []string `json:"action_options"`
}

// GtoScenario is the list shape annotated with expected values.
type GtoScenario struct {
	ID             string             `json:"id"`
	Category       string             `json:"category"`
	Position       string             `json:"position"`
	StackSize      int                `json:"stack_size"`
	HoleCards      []string           `json:"hole_cards"`
	CommunityCards []string           `json:"community_cards"`
	GtoActions     []models.GtoAction `json:"gto_actions"`
	CorrectAction  models.GtoAction   `json:"correct_action"`
	Street         string             `json:"street"`
}

// FeedbackResponse is the wire form of models.Feedback.
// AlternativeLine is null when the scenario offered no other action.
type FeedbackResponse struct {
	IsCorrect       bool               `json:"is_correct"`
	ChosenActionEV  float64            `json:"chosen_action_ev"`
	CorrectAction   models.GtoAction   `json:"correct_action"`
	EVDifference    float64            `json:"ev_difference"`
	Explanation     string             `json:"explanation"`
	AlternativeLine []models.GtoAction `json:"alternative_line"`
}
