package handler

import (
	"net/http"

	"chatgto-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PracticeHandler serves scenarios and grades attempts.
type PracticeHandler struct {
	practiceService service.PracticeService
	logger          *zap.Logger
}

func NewPracticeHandler(practiceService service.PracticeService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.Named("PracticeHandler"),
	}
}

func (h *PracticeHandler) RegisterRoutes(router gin.IRouter) {
	practice := router.Group("/practice")
	{
		practice.GET("/scenarios/:category", h.listByCategory)
		practice.GET("/scenarios", h.listGtoScenarios)
		practice.GET("/scenario", h.scenarioForStage)
		practice.POST("/attempt", h.submitAttempt)
	}
}

// UserHandler creates user profiles.
type UserHandler struct {
	userService  service.UserService
	identity     IdentityVerifier
	requireToken bool
	logger       *zap.Logger
}

// NewUserHandler wires user creation. With requireToken set, requests without
// a bearer token are rejected whenever the identity provider is available.
func NewUserHandler(userService service.UserService, identity IdentityVerifier, requireToken bool, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService:  userService,
		identity:     identity,
		requireToken: requireToken,
		logger:       logger.Named("UserHandler"),
	}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/users", h.IDTokenMiddleware(), h.createUser)
}

// RegisterServiceRoutes mounts the root greeting and health probes.
func RegisterServiceRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"Hello": "World"})
	})

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
}
