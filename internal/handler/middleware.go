package handler

import (
	"context"
	"strings"

	"chatgto-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityVerifier checks client ID tokens. Implemented by identity.Firebase.
type IdentityVerifier interface {
	Available() bool
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// ctxTokenUID holds the uid of a verified ID token.
const ctxTokenUID = "token_uid"

// IDTokenMiddleware verifies an optional bearer ID token. Matching the token
// uid against the request body is left to the handler.
func (h *UserHandler) IDTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.identity == nil || !h.identity.Available() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if h.requireToken {
				tokenVerificationsTotal.WithLabelValues("missing").Inc()
				handleServiceError(c, models.ErrUnauthorized)
				return
			}
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			h.logger.Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrUnauthorized)
			return
		}

		uid, err := h.identity.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			h.logger.Warn("ID token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrUnauthorized)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(ctxTokenUID, uid)
		c.Next()
	}
}
