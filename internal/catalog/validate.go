package catalog

import (
	"fmt"
	"strings"

	"chatgto-server/internal/models"
)

func validateScenario(s models.Scenario) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: empty id", models.ErrInvalidScenario)
	}
	if strings.TrimSpace(s.Category) == "" {
		return fmt.Errorf("%w: empty category", models.ErrInvalidScenario)
	}
	if !s.Street.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStreet, s.Street)
	}

	if len(s.Actions) == 0 {
		return fmt.Errorf("%w: no actions", models.ErrInvalidScenario)
	}
	labels := make(map[string]struct{}, len(s.Actions))
	for _, a := range s.Actions {
		if a.Action == "" {
			return fmt.Errorf("%w: action with empty label", models.ErrInvalidScenario)
		}
		if _, dup := labels[a.Action]; dup {
			return fmt.Errorf("%w: duplicate action %q", models.ErrInvalidScenario, a.Action)
		}
		labels[a.Action] = struct{}{}
	}
	if _, ok := labels[s.CorrectAction.Action]; !ok {
		return fmt.Errorf("%w: correct action %q is not among the offered actions", models.ErrInvalidScenario, s.CorrectAction.Action)
	}

	if want := s.Street.BoardSize(); len(s.Board) != want {
		return fmt.Errorf("%w: street %q needs %d board cards, got %d", models.ErrInvalidScenario, s.Street, want, len(s.Board))
	}

	seen := cardSet{}
	for i, code := range s.Hero.HoleCards {
		if err := seen.add(code, fmt.Sprintf("hero hole card %d", i+1)); err != nil {
			return err
		}
	}
	for i, opp := range s.Opponents {
		if strings.TrimSpace(opp.Position) == "" {
			return fmt.Errorf("%w: opponent %d has no position", models.ErrInvalidScenario, i+1)
		}
		for j, code := range opp.HoleCards {
			if err := seen.add(code, fmt.Sprintf("opponent %d hole card %d", i+1, j+1)); err != nil {
				return err
			}
		}
	}
	for i, code := range s.Board {
		if err := seen.add(code, fmt.Sprintf("board card %d", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// bestAction returns the first action with the highest expected value.
func bestAction(s models.Scenario) (models.GtoAction, bool) {
	if len(s.Actions) == 0 {
		return models.GtoAction{}, false
	}
	best := s.Actions[0]
	for _, a := range s.Actions[1:] {
		if a.ExpectedValue > best.ExpectedValue {
			best = a
		}
	}
	return best, true
}
