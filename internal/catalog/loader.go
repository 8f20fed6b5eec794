package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"chatgto-server/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Scenarios []seedScenario    `yaml:"scenarios"`
	Stages    map[string]string `yaml:"stages"`
}

type seedSeat struct {
	Position  string   `yaml:"position"`
	StackSize int      `yaml:"stack_size"`
	HoleCards []string `yaml:"hole_cards"`
}

type seedScenario struct {
	ID            string             `yaml:"id"`
	Category      string             `yaml:"category"`
	Street        string             `yaml:"street"`
	Hero          seedSeat           `yaml:"hero"`
	Opponents     []seedSeat         `yaml:"opponents"`
	Board         []string           `yaml:"board"`
	Actions       []models.GtoAction `yaml:"actions"`
	CorrectAction string             `yaml:"correct_action"`
}

// LoadDefault builds the catalog from the embedded seed data.
func LoadDefault(opts Options) (*Catalog, error) {
	return Parse(defaultSeed, opts)
}

// LoadFile builds the catalog from a YAML file on disk.
func LoadFile(path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML seed data and builds the catalog from it.
func Parse(data []byte, opts Options) (*Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog yaml: %w", err)
	}

	scenarios := make([]models.Scenario, 0, len(f.Scenarios))
	for i, raw := range f.Scenarios {
		s, err := raw.toScenario()
		if err != nil {
			return nil, fmt.Errorf("scenario #%d (%q): %w", i, raw.ID, err)
		}
		scenarios = append(scenarios, s)
	}

	stages := make(map[models.Street]string, len(f.Stages))
	for name, id := range f.Stages {
		stage, err := models.ParseStreet(name)
		if err != nil {
			return nil, fmt.Errorf("stages: %w", err)
		}
		stages[stage] = id
	}

	return New(scenarios, stages, opts)
}

func (raw seedScenario) toScenario() (models.Scenario, error) {
	street, err := models.ParseStreet(raw.Street)
	if err != nil {
		return models.Scenario{}, err
	}
	heroCards, err := holeCards(raw.Hero.HoleCards)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("hero: %w", err)
	}

	s := models.Scenario{
		ID:       raw.ID,
		Category: raw.Category,
		Street:   street,
		Hero: models.Hero{
			Position:  raw.Hero.Position,
			StackSize: raw.Hero.StackSize,
			HoleCards: heroCards,
		},
		Opponents: make([]models.Opponent, 0, len(raw.Opponents)),
		Board:     canonicalCards(raw.Board),
		Actions:   append([]models.GtoAction(nil), raw.Actions...),
	}
	for i, o := range raw.Opponents {
		cards, err := holeCards(o.HoleCards)
		if err != nil {
			return models.Scenario{}, fmt.Errorf("opponent %d: %w", i+1, err)
		}
		s.Opponents = append(s.Opponents, models.Opponent{Position: o.Position, HoleCards: cards})
	}

	// The correct action is referenced by label in seed data.
	correct, ok := s.FindAction(raw.CorrectAction)
	if !ok {
		return models.Scenario{}, fmt.Errorf("%w: correct action %q is not among the offered actions",
			models.ErrInvalidScenario, raw.CorrectAction)
	}
	s.CorrectAction = correct
	return s, nil
}

func holeCards(codes []string) ([2]string, error) {
	var out [2]string
	if len(codes) != 2 {
		return out, fmt.Errorf("%w: need 2 hole cards, got %d", models.ErrInvalidScenario, len(codes))
	}
	copy(out[:], canonicalCards(codes))
	return out, nil
}
