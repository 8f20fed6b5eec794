package catalog

import (
	"fmt"

	"chatgto-server/internal/models"

	"go.uber.org/zap"
)

// Options tune catalog construction.
type Options struct {
	// StrictEV turns a correct action that is not the highest-EV option into a
	// load error instead of a warning.
	StrictEV bool
	Logger   *zap.Logger
}

// Catalog is the immutable set of practice scenarios. It is safe for
// concurrent use because nothing mutates it after New returns.
type Catalog struct {
	scenarios []models.Scenario
	byID      map[string]int
	stages    map[models.Street]int
}

// New validates scenarios and the stage mapping and builds a Catalog.
// Insertion order is preserved for all list queries.
func New(scenarios []models.Scenario, stages map[models.Street]string, opts Options) (*Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("Catalog")

	c := &Catalog{
		scenarios: make([]models.Scenario, 0, len(scenarios)),
		byID:      make(map[string]int, len(scenarios)),
		stages:    make(map[models.Street]int, len(stages)),
	}

	for i, s := range scenarios {
		if err := validateScenario(s); err != nil {
			return nil, fmt.Errorf("scenario #%d (%q): %w", i, s.ID, err)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate scenario id %q", models.ErrInvalidScenario, s.ID)
		}
		if best, ok := bestAction(s); ok && best.ExpectedValue > s.CorrectAction.ExpectedValue {
			if opts.StrictEV {
				return nil, fmt.Errorf("%w: scenario %q: correct action %q (ev %.2f) is below %q (ev %.2f)",
					models.ErrInvalidScenario, s.ID, s.CorrectAction.Action, s.CorrectAction.ExpectedValue, best.Action, best.ExpectedValue)
			}
			log.Warn("Correct action is not the highest EV option",
				zap.String("scenarioID", s.ID),
				zap.String("correctAction", s.CorrectAction.Action),
				zap.Float64("correctEV", s.CorrectAction.ExpectedValue),
				zap.String("bestAction", best.Action),
				zap.Float64("bestEV", best.ExpectedValue),
			)
		}
		c.byID[s.ID] = len(c.scenarios)
		c.scenarios = append(c.scenarios, s.Clone())
	}

	for stage, id := range stages {
		if !stage.Valid() {
			return nil, fmt.Errorf("%w: stage %q", models.ErrInvalidStreet, stage)
		}
		idx, ok := c.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: stage %q maps to unknown scenario %q", models.ErrInvalidScenario, stage, id)
		}
		if c.scenarios[idx].Street != stage {
			return nil, fmt.Errorf("%w: stage %q maps to scenario %q on street %q",
				models.ErrInvalidScenario, stage, id, c.scenarios[idx].Street)
		}
		c.stages[stage] = idx
	}

	log.Debug("Catalog built", zap.Int("scenarios", len(c.scenarios)), zap.Int("stages", len(c.stages)))
	return c, nil
}

// FindByID returns the scenario with exactly the given id.
func (c *Catalog) FindByID(id string) (models.Scenario, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Scenario{}, fmt.Errorf("%w: id %q", models.ErrScenarioNotFound, id)
	}
	return c.scenarios[idx].Clone(), nil
}

// FindByCategory returns every scenario of the category in insertion order.
// The result is never nil.
func (c *Catalog) FindByCategory(category string) []models.Scenario {
	return c.FindByCategoryAndStreet(category, nil)
}

// FindByCategoryAndStreet narrows FindByCategory to one street. A nil street
// disables the street filter.
func (c *Catalog) FindByCategoryAndStreet(category string, street *models.Street) []models.Scenario {
	out := make([]models.Scenario, 0)
	for _, s := range c.scenarios {
		if s.Category != category {
			continue
		}
		if street != nil && s.Street != *street {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// FindByStage returns the demonstration scenario registered for a stage.
func (c *Catalog) FindByStage(stage models.Street) (models.Scenario, error) {
	idx, ok := c.stages[stage]
	if !ok {
		return models.Scenario{}, fmt.Errorf("%w: stage %q", models.ErrScenarioNotFound, stage)
	}
	return c.scenarios[idx].Clone(), nil
}

// All returns every scenario in insertion order.
func (c *Catalog) All() []models.Scenario {
	out := make([]models.Scenario, 0, len(c.scenarios))
	for _, s := range c.scenarios {
		out = append(out, s.Clone())
	}
	return out
}

// Len is the number of scenarios.
func (c *Catalog) Len() int {
	return len(c.scenarios)
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range c.scenarios {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}
