// Package presenter maps the unified Scenario model onto the wire shapes the
// web client has used over time. Mapping is field selection and renaming only.
package presenter

import "chatgto-server/internal/models"

// StageView builds the client-safe view of a stage demonstration scenario.
func StageView(s models.Scenario) ScenarioResponse {
	opponents := make([]OpponentView, 0, len(s.Opponents))
	for _, o := range s.Opponents {
		opponents = append(opponents, OpponentView{Position: o.Position})
	}
	return ScenarioResponse{
		ID:         s.ID,
		Category:   s.Category,
		Stage:      s.Street.String(),
		Hero:       heroView(s.Hero),
		Opponents:  opponents,
		GtoActions: copyActions(s.Actions),
		Flop:       s.Flop(),
		Turn:       s.Turn(),
		River:      s.River(),
	}
}

// FlatView builds the action-labels-only list entry.
func FlatView(s models.Scenario) FlatScenario {
	options := make([]string, 0, len(s.Actions))
	for _, a := range s.Actions {
		options = append(options, a.Action)
	}
	return FlatScenario{
		ID:             s.ID,
		Category:       s.Category,
		Position:       s.Hero.Position,
		StackSize:      s.Hero.StackSize,
		HoleCards:      s.Hero.HoleCards[:],
		CommunityCards: communityCards(s),
		ActionOptions:  options,
	}
}

// GtoView builds the EV-annotated list entry.
func GtoView(s models.Scenario) GtoScenario {
	return GtoScenario{
		ID:             s.ID,
		Category:       s.Category,
		Position:       s.Hero.Position,
		StackSize:      s.Hero.StackSize,
		HoleCards:      s.Hero.HoleCards[:],
		CommunityCards: communityCards(s),
		GtoActions:     copyActions(s.Actions),
		CorrectAction:  s.CorrectAction,
		Street:         s.Street.LegacyName(),
	}
}

// FlatViews maps a list; the result is never nil.
func FlatViews(scenarios []models.Scenario) []FlatScenario {
	out := make([]FlatScenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, FlatView(s))
	}
	return out
}

// GtoViews maps a list; the result is never nil.
func GtoViews(scenarios []models.Scenario) []GtoScenario {
	out := make([]GtoScenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, GtoView(s))
	}
	return out
}

// Feedback converts evaluator output to its wire form.
func Feedback(fb models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		IsCorrect:       fb.IsCorrect,
		ChosenActionEV:  fb.ChosenActionValue,
		CorrectAction:   fb.CorrectAction,
		EVDifference:    fb.EVDifference,
		Explanation:     fb.Explanation,
		AlternativeLine: copyActions(fb.AlternativeLines),
	}
}

func heroView(h models.Hero) HeroView {
	return HeroView{
		Position:  h.Position,
		HoleCards: h.HoleCards[:],
		StackSize: h.StackSize,
	}
}

func communityCards(s models.Scenario) []string {
	return append(make([]string, 0, len(s.Board)), s.Board...)
}

// copyActions keeps nil as nil so "no alternatives" still encodes as null.
func copyActions(actions []models.GtoAction) []models.GtoAction {
	if actions == nil {
		return nil
	}
	return append(make([]models.GtoAction, 0, len(actions)), actions...)
}
