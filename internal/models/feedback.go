package models

// Attempt is a user's submitted choice for a scenario.
type Attempt struct {
	ScenarioID string
	Action     string
}

// Feedback is the verdict produced for an Attempt.
// AlternativeLines is nil when the scenario offers no other action.
type Feedback struct {
	IsCorrect         bool
	ChosenActionValue float64
	CorrectAction     GtoAction
	EVDifference      float64
	Explanation       string
	AlternativeLines  []GtoAction
}

// Fallback explanations used when the chosen action carries none.
const (
	ExplanationCorrect   = "Correct!"
	ExplanationIncorrect = "Incorrect."
)
