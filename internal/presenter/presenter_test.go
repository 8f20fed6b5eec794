package presenter_test

import (
	"encoding/json"
	"testing"

	"chatgto-server/internal/catalog"
	"chatgto-server/internal/models"
	"chatgto-server/internal/presenter"
	"chatgto-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadDefault(catalog.Options{})
	require.NoError(t, err)
	return c
}

func decode(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestStageView_HidesOpponentCards(t *testing.T) {
	c := loadCatalog(t)
	for _, street := range models.Streets {
		s, err := c.FindByStage(street)
		require.NoError(t, err)

		view := presenter.StageView(s)
		assert.Equal(t, street.String(), view.Stage)

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		for _, o := range s.Opponents {
			for _, card := range o.HoleCards {
				assert.NotContains(t, string(raw), `"`+card+`"`, "opponent card leaked on %s", street)
			}
		}

		body := decode(t, view)
		opponents, ok := body["opponents"].([]any)
		require.True(t, ok)
		for _, o := range opponents {
			assert.Equal(t, []string{"position"}, keys(o.(map[string]any)))
		}
	}
}

func TestStageView_StreetFieldsFollowBoard(t *testing.T) {
	c := loadCatalog(t)

	cases := []struct {
		street  models.Street
		present []string
		absent  []string
	}{
		{models.StreetPreflop, nil, []string{"flop", "turn", "river"}},
		{models.StreetFlop, []string{"flop"}, []string{"turn", "river"}},
		{models.StreetTurn, []string{"flop", "turn"}, []string{"river"}},
		{models.StreetRiver, []string{"flop", "turn", "river"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.street.String(), func(t *testing.T) {
			s, err := c.FindByStage(tc.street)
			require.NoError(t, err)

			body := decode(t, presenter.StageView(s))
			for _, k := range tc.present {
				assert.Contains(t, body, k)
			}
			for _, k := range tc.absent {
				assert.NotContains(t, body, k)
			}
		})
	}

	s, err := c.FindByStage(models.StreetRiver)
	require.NoError(t, err)
	view := presenter.StageView(s)
	assert.Equal(t, []string{"7c", "8c", "9c"}, view.Flop)
	assert.Equal(t, "2h", view.Turn)
	assert.Equal(t, "3d", view.River)
}

func TestStageView_EmptyOpponentsEncodeAsArray(t *testing.T) {
	s := models.Scenario{
		ID:            "solo",
		Category:      "cash_game",
		Street:        models.StreetPreflop,
		Hero:          models.Hero{Position: "Button", StackSize: 100, HoleCards: [2]string{"As", "Ks"}},
		Actions:       []models.GtoAction{{Action: "Fold"}},
		CorrectAction: models.GtoAction{Action: "Fold"},
	}

	raw, err := json.Marshal(presenter.StageView(s))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"opponents":[]`)
}

func TestFlatView(t *testing.T) {
	c := loadCatalog(t)
	s, err := c.FindByID("1")
	require.NoError(t, err)

	view := presenter.FlatView(s)
	assert.Equal(t, "1", view.ID)
	assert.Equal(t, "cash_game", view.Category)
	assert.Equal(t, "Button", view.Position)
	assert.Equal(t, 100, view.StackSize)
	assert.Equal(t, []string{"As", "Ks"}, view.HoleCards)
	assert.Equal(t, []string{"Fold", "Call", "Raise"}, view.ActionOptions)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"community_cards":[]`)
	assert.NotContains(t, string(raw), `"ev"`)
}

func TestGtoView_LegacyStreetName(t *testing.T) {
	c := loadCatalog(t)

	s, err := c.FindByID("1")
	require.NoError(t, err)
	view := presenter.GtoView(s)
	assert.Equal(t, "pre-flop", view.Street)
	assert.Equal(t, "Raise", view.CorrectAction.Action)
	assert.Len(t, view.GtoActions, 3)

	s, err = c.FindByStage(models.StreetFlop)
	require.NoError(t, err)
	assert.Equal(t, "post-flop", presenter.GtoView(s).Street)
	assert.Equal(t, []string{"Qc", "8h", "3s"}, presenter.GtoView(s).CommunityCards)
}

func TestListViewsNeverNil(t *testing.T) {
	assert.NotNil(t, presenter.FlatViews(nil))
	assert.NotNil(t, presenter.GtoViews(nil))

	raw, err := json.Marshal(presenter.FlatViews(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFeedback_WireShape(t *testing.T) {
	c := loadCatalog(t)
	s, err := c.FindByID("1")
	require.NoError(t, err)

	fb, err := service.Evaluate(s, "Call")
	require.NoError(t, err)

	body := decode(t, presenter.Feedback(fb))
	assert.Equal(t, false, body["is_correct"])
	assert.Equal(t, 8.0, body["chosen_action_ev"])
	assert.Equal(t, -2.0, body["ev_difference"])
	assert.Len(t, body["alternative_line"], 2)
	correct := body["correct_action"].(map[string]any)
	assert.Equal(t, "Raise", correct["action"])
	assert.Equal(t, 10.0, correct["ev"])
}

func TestFeedback_NoAlternativesIsNull(t *testing.T) {
	raw, err := json.Marshal(presenter.Feedback(models.Feedback{IsCorrect: true, Explanation: models.ExplanationCorrect}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"alternative_line":null`)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
