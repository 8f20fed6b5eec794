package service

import (
	"chatgto-server/internal/models"
)

// ScenarioCatalog is the read-only lookup surface the practice flows need.
type ScenarioCatalog interface {
	FindByID(id string) (models.Scenario, error)
	FindByCategory(category string) []models.Scenario
	FindByCategoryAndStreet(category string, street *models.Street) []models.Scenario
	FindByStage(stage models.Street) (models.Scenario, error)
}

// PracticeService serves practice scenarios and grades attempts.
type PracticeService interface {
	// ListByCategory returns scenarios of a category in catalog order.
	ListByCategory(category string) []models.Scenario
	// ListByCategoryAndStreet additionally filters by street; nil means any street.
	ListByCategoryAndStreet(category string, street *models.Street) []models.Scenario
	// ScenarioForStage returns the demonstration scenario of a stage.
	// Returns models.ErrScenarioNotFound if the stage has none.
	ScenarioForStage(stage models.Street) (models.Scenario, error)
	// Evaluate grades an attempt.
	// Returns models.ErrScenarioNotFound or models.ErrInvalidAction.
	Evaluate(attempt models.Attempt) (models.Feedback, error)
}
