package service

import (
	"fmt"

	"chatgto-server/internal/models"
)

// Evaluate grades the chosen action label against the scenario's designated
// correct action. It is a pure function: the scenario's CorrectAction is
// trusted as given and optimality is never recomputed from expected values.
func Evaluate(scenario models.Scenario, action string) (models.Feedback, error) {
	chosen, ok := scenario.FindAction(action)
	if !ok {
		return models.Feedback{}, fmt.Errorf("%w: %q in scenario %q", models.ErrInvalidAction, action, scenario.ID)
	}

	correct := scenario.CorrectAction
	isCorrect := chosen.Action == correct.Action

	explanation := chosen.Explanation
	if explanation == "" {
		if isCorrect {
			explanation = models.ExplanationCorrect
		} else {
			explanation = models.ExplanationIncorrect
		}
	}

	var alternatives []models.GtoAction
	for _, a := range scenario.Actions {
		if a.Action == chosen.Action {
			continue
		}
		alternatives = append(alternatives, a)
	}

	return models.Feedback{
		IsCorrect:         isCorrect,
		ChosenActionValue: chosen.ExpectedValue,
		CorrectAction:     correct,
		EVDifference:      chosen.ExpectedValue - correct.ExpectedValue,
		Explanation:       explanation,
		AlternativeLines:  alternatives,
	}, nil
}
