package handler

import (
	"fmt"
	"net/http"
	"strings"

	"chatgto-server/internal/models"
	"chatgto-server/internal/presenter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *PracticeHandler) listByCategory(c *gin.Context) {
	scenarios := h.practiceService.ListByCategory(c.Param("category"))
	c.JSON(http.StatusOK, presenter.FlatViews(scenarios))
}

func (h *PracticeHandler) listGtoScenarios(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		handleServiceError(c, fmt.Errorf("%w: query parameter 'category' is required", models.ErrBadRequest))
		return
	}

	var street *models.Street
	if raw, ok := c.GetQuery("street"); ok && raw != "" {
		parsed, err := models.ParseStreet(raw)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		street = &parsed
	}

	scenarios := h.practiceService.ListByCategoryAndStreet(category, street)
	c.JSON(http.StatusOK, presenter.GtoViews(scenarios))
}

func (h *PracticeHandler) scenarioForStage(c *gin.Context) {
	raw := c.DefaultQuery("stage", models.StreetPreflop.String())
	stage, err := models.ParseStreet(raw)
	if err != nil {
		handleServiceError(c, fmt.Errorf("%w: no scenario for stage %q", models.ErrScenarioNotFound, raw))
		return
	}

	scenario, err := h.practiceService.ScenarioForStage(stage)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.StageView(scenario))
}

func (h *PracticeHandler) submitAttempt(c *gin.Context) {
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid attempt request", zap.Error(err))
		handleServiceError(c, fmt.Errorf("%w: %v", models.ErrBadRequest, err))
		return
	}

	feedback, err := h.practiceService.Evaluate(models.Attempt{ScenarioID: req.ScenarioID, Action: req.Action})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result := "incorrect"
	if feedback.IsCorrect {
		result = "correct"
	}
	attemptsTotal.WithLabelValues(result).Inc()

	c.JSON(http.StatusOK, presenter.Feedback(feedback))
}
