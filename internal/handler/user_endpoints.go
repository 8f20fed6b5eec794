package handler

import (
	"fmt"
	"net/http"
	"strings"

	"chatgto-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *UserHandler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid create user request", zap.Error(err))
		handleServiceError(c, fmt.Errorf("%w: %v", models.ErrBadRequest, err))
		return
	}

	if tokenUID := c.GetString(ctxTokenUID); tokenUID != "" && tokenUID != strings.TrimSpace(req.FirebaseUID) {
		h.logger.Warn("Token uid does not match request",
			zap.String("tokenUID", tokenUID), zap.String("firebaseUID", req.FirebaseUID))
		handleServiceError(c, models.ErrForbidden)
		return
	}

	if _, err := h.userService.CreateUser(c.Request.Context(), req.FirebaseUID, req.Email); err != nil {
		userCreateFailuresTotal.Inc()
		handleServiceError(c, err)
		return
	}

	usersCreatedTotal.Inc()
	c.JSON(http.StatusCreated, models.MessageResponse{Message: "User created successfully"})
}
