package catalog

import (
	"errors"
	"testing"

	"chatgto-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScenario(id, category string, street models.Street) models.Scenario {
	board := []string{"2c", "3c", "4c", "5c", "6c"}[:street.BoardSize()]
	return models.Scenario{
		ID:       id,
		Category: category,
		Street:   street,
		Hero: models.Hero{
			Position:  "Button",
			StackSize: 100,
			HoleCards: [2]string{"As", "Ks"},
		},
		Board: append([]string{}, board...),
		Actions: []models.GtoAction{
			{Action: "Fold", ExpectedValue: 0},
			{Action: "Raise", ExpectedValue: 5},
		},
		CorrectAction: models.GtoAction{Action: "Raise", ExpectedValue: 5},
	}
}

func TestLoadDefault_WellFormed(t *testing.T) {
	c, err := LoadDefault(Options{StrictEV: true})
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	for _, s := range c.All() {
		_, ok := s.FindAction(s.CorrectAction.Action)
		assert.True(t, ok, "correct action of %q must be offered", s.ID)
		assert.Len(t, s.Board, s.Street.BoardSize(), "board of %q", s.ID)
	}

	for _, stage := range models.Streets {
		s, err := c.FindByStage(stage)
		require.NoError(t, err, "stage %s", stage)
		assert.Equal(t, stage, s.Street)
		assert.NotEmpty(t, s.Opponents, "stage demo %q should have opponents", s.ID)
	}

	assert.Equal(t, []string{"cash_game", "placeholder"}, c.Categories())
}

func TestLoadDefault_SeedScenarios(t *testing.T) {
	c, err := LoadDefault(Options{})
	require.NoError(t, err)

	s, err := c.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "cash_game", s.Category)
	assert.Equal(t, models.StreetPreflop, s.Street)
	assert.Equal(t, [2]string{"As", "Ks"}, s.Hero.HoleCards)
	require.Len(t, s.Actions, 3)
	assert.Equal(t, "Fold", s.Actions[0].Action)
	assert.Equal(t, -0.5, s.Actions[0].ExpectedValue)
	assert.Equal(t, "Raise", s.CorrectAction.Action)
	assert.Equal(t, 10.0, s.CorrectAction.ExpectedValue)

	s, err = c.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Fold", s.CorrectAction.Action)
	assert.Equal(t, -4.5, s.Actions[1].ExpectedValue)
}

func TestFindByID_NotFound(t *testing.T) {
	c, err := LoadDefault(Options{})
	require.NoError(t, err)

	_, err = c.FindByID("does-not-exist")
	assert.True(t, errors.Is(err, models.ErrScenarioNotFound))
}

func TestFindByCategory_InsertionOrder(t *testing.T) {
	c, err := New([]models.Scenario{
		testScenario("b", "cash_game", models.StreetPreflop),
		testScenario("x", "tournament", models.StreetPreflop),
		testScenario("a", "cash_game", models.StreetFlop),
		testScenario("c", "cash_game", models.StreetRiver),
	}, nil, Options{})
	require.NoError(t, err)

	got := c.FindByCategory("cash_game")
	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)

	empty := c.FindByCategory("CASH_GAME")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFindByCategoryAndStreet(t *testing.T) {
	c, err := New([]models.Scenario{
		testScenario("p1", "cash_game", models.StreetPreflop),
		testScenario("f1", "cash_game", models.StreetFlop),
		testScenario("p2", "cash_game", models.StreetPreflop),
	}, nil, Options{})
	require.NoError(t, err)

	flop := models.StreetFlop
	got := c.FindByCategoryAndStreet("cash_game", &flop)
	require.Len(t, got, 1)
	assert.Equal(t, "f1", got[0].ID)

	assert.Equal(t, c.FindByCategory("cash_game"), c.FindByCategoryAndStreet("cash_game", nil))

	turn := models.StreetTurn
	assert.Empty(t, c.FindByCategoryAndStreet("cash_game", &turn))
}

func TestFindByStage_Unmapped(t *testing.T) {
	c, err := New([]models.Scenario{testScenario("p1", "cash_game", models.StreetPreflop)},
		map[models.Street]string{models.StreetPreflop: "p1"}, Options{})
	require.NoError(t, err)

	s, err := c.FindByStage(models.StreetPreflop)
	require.NoError(t, err)
	assert.Equal(t, "p1", s.ID)

	_, err = c.FindByStage(models.StreetRiver)
	assert.ErrorIs(t, err, models.ErrScenarioNotFound)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c, err := New([]models.Scenario{testScenario("p1", "cash_game", models.StreetFlop)}, nil, Options{})
	require.NoError(t, err)

	s, err := c.FindByID("p1")
	require.NoError(t, err)
	s.Actions[0].Action = "Mutated"
	s.Board[0] = "Ah"

	again, err := c.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Fold", again.Actions[0].Action)
	assert.Equal(t, "2c", again.Board[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Scenario)
		wantErr error
	}{
		{"empty id", func(s *models.Scenario) { s.ID = "" }, models.ErrInvalidScenario},
		{"empty category", func(s *models.Scenario) { s.Category = " " }, models.ErrInvalidScenario},
		{"unknown street", func(s *models.Scenario) { s.Street = "showdown" }, models.ErrInvalidStreet},
		{"no actions", func(s *models.Scenario) { s.Actions = nil }, models.ErrInvalidScenario},
		{"duplicate labels", func(s *models.Scenario) {
			s.Actions = append(s.Actions, models.GtoAction{Action: "Fold", ExpectedValue: 1})
		}, models.ErrInvalidScenario},
		{"correct action not offered", func(s *models.Scenario) {
			s.CorrectAction = models.GtoAction{Action: "Call", ExpectedValue: 5}
		}, models.ErrInvalidScenario},
		{"board too short for street", func(s *models.Scenario) { s.Board = s.Board[:2] }, models.ErrInvalidScenario},
		{"bad card code", func(s *models.Scenario) { s.Hero.HoleCards[1] = "Xx" }, models.ErrInvalidCard},
		{"empty card code", func(s *models.Scenario) { s.Board[0] = "" }, models.ErrInvalidCard},
		{"opponent without position", func(s *models.Scenario) {
			s.Opponents = []models.Opponent{{HoleCards: [2]string{"Qd", "Qh"}}}
		}, models.ErrInvalidScenario},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScenario("s1", "cash_game", models.StreetFlop)
			tt.mutate(&s)
			_, err := New([]models.Scenario{s}, nil, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_DuplicateCards(t *testing.T) {
	s := testScenario("s1", "cash_game", models.StreetFlop)
	s.Opponents = []models.Opponent{{Position: "BB", HoleCards: [2]string{"2c", "Qh"}}}

	_, err := New([]models.Scenario{s}, nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}

func TestNew_DuplicateIDs(t *testing.T) {
	_, err := New([]models.Scenario{
		testScenario("s1", "cash_game", models.StreetPreflop),
		testScenario("s1", "cash_game", models.StreetFlop),
	}, nil, Options{})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)
}

func TestNew_StageMapping(t *testing.T) {
	scenarios := []models.Scenario{testScenario("f1", "cash_game", models.StreetFlop)}

	_, err := New(scenarios, map[models.Street]string{models.StreetFlop: "missing"}, Options{})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)

	_, err = New(scenarios, map[models.Street]string{models.StreetTurn: "f1"}, Options{})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)
}

func TestNew_NonMaximalCorrectAction(t *testing.T) {
	s := testScenario("s1", "cash_game", models.StreetPreflop)
	s.Actions = []models.GtoAction{
		{Action: "Fold", ExpectedValue: 0},
		{Action: "Call", ExpectedValue: 7},
		{Action: "Raise", ExpectedValue: 5},
	}

	c, err := New([]models.Scenario{s}, nil, Options{})
	require.NoError(t, err, "trusted by default")
	got, err := c.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "Raise", got.CorrectAction.Action)

	_, err = New([]models.Scenario{s}, nil, Options{StrictEV: true})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "scenarios: [\n"},
		{"unknown correct action", `
scenarios:
  - id: a
    category: c
    street: preflop
    hero: {position: BTN, stack_size: 100, hole_cards: [As, Ks]}
    actions: [{action: Fold, ev: 0}]
    correct_action: Raise
`},
		{"three hole cards", `
scenarios:
  - id: a
    category: c
    street: preflop
    hero: {position: BTN, stack_size: 100, hole_cards: [As, Ks, Qs]}
    actions: [{action: Fold, ev: 0}]
    correct_action: Fold
`},
		{"unknown stage", `
scenarios:
  - id: a
    category: c
    street: preflop
    hero: {position: BTN, stack_size: 100, hole_cards: [As, Ks]}
    actions: [{action: Fold, ev: 0}]
    correct_action: Fold
stages:
  showdown: a
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), Options{})
			assert.Error(t, err)
		})
	}
}

func TestParse_LegacyStreetNames(t *testing.T) {
	c, err := Parse([]byte(`
scenarios:
  - id: a
    category: c
    street: post-flop
    hero: {position: BB, stack_size: 100, hole_cards: [Qh, Qd]}
    board: [Qc, 8h, 3s]
    actions: [{action: Bet, ev: 15}, {action: Check, ev: 5}]
    correct_action: Bet
stages:
  post-flop: a
`), Options{})
	require.NoError(t, err)

	s, err := c.FindByStage(models.StreetFlop)
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID)
	assert.Empty(t, s.Opponents)
}

func TestParse_CanonicalisesCardCodes(t *testing.T) {
	c, err := Parse([]byte(`
scenarios:
  - id: a
    category: c
    street: flop
    hero: {position: BB, stack_size: 100, hole_cards: [qh, QD]}
    opponents:
      - {position: UTG, hole_cards: [aC, kd]}
    board: [qc, 8H, 3s]
    actions: [{action: Bet, ev: 15}, {action: Check, ev: 5}]
    correct_action: Bet
`), Options{})
	require.NoError(t, err)

	s, err := c.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"Qh", "Qd"}, s.Hero.HoleCards)
	assert.Equal(t, [2]string{"Ac", "Kd"}, s.Opponents[0].HoleCards)
	assert.Equal(t, []string{"Qc", "8h", "3s"}, s.Board)
}
