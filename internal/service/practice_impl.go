package service

import (
	"chatgto-server/internal/models"

	"go.uber.org/zap"
)

// Compile-time check to ensure practiceServiceImpl implements PracticeService
var _ PracticeService = (*practiceServiceImpl)(nil)

type practiceServiceImpl struct {
	catalog ScenarioCatalog
	logger  *zap.Logger
}

// NewPracticeService creates a PracticeService over an immutable catalog.
func NewPracticeService(catalog ScenarioCatalog, logger *zap.Logger) PracticeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &practiceServiceImpl{
		catalog: catalog,
		logger:  logger.Named("PracticeService"),
	}
}

func (s *practiceServiceImpl) ListByCategory(category string) []models.Scenario {
	return s.catalog.FindByCategory(category)
}

func (s *practiceServiceImpl) ListByCategoryAndStreet(category string, street *models.Street) []models.Scenario {
	return s.catalog.FindByCategoryAndStreet(category, street)
}

func (s *practiceServiceImpl) ScenarioForStage(stage models.Street) (models.Scenario, error) {
	scenario, err := s.catalog.FindByStage(stage)
	if err != nil {
		s.logger.Debug("No demonstration scenario for stage", zap.String("stage", stage.String()))
		return models.Scenario{}, err
	}
	return scenario, nil
}

// Evaluate resolves the scenario and delegates to the pure Evaluate function.
// Attempts are neither stored nor logged.
func (s *practiceServiceImpl) Evaluate(attempt models.Attempt) (models.Feedback, error) {
	scenario, err := s.catalog.FindByID(attempt.ScenarioID)
	if err != nil {
		return models.Feedback{}, err
	}
	return Evaluate(scenario, attempt.Action)
}
