package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatgto-server/internal/catalog"
	"chatgto-server/internal/config"
	"chatgto-server/internal/database"
	"chatgto-server/internal/handler"
	"chatgto-server/internal/identity"
	"chatgto-server/internal/logger"
	"chatgto-server/internal/middleware"
	"chatgto-server/internal/repository"
	"chatgto-server/internal/service"
	"chatgto-server/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		Service:     cfg.ServiceName,
		Environment: cfg.Env,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	zap.L().Info("Starting chatgto server",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.ServerPort),
		zap.String("basePath", cfg.BasePath),
	)

	ctx := context.Background()

	// --- Scenario catalog ---
	catalogOpts := catalog.Options{StrictEV: cfg.CatalogStrictEV, Logger: appLogger.Named("catalog")}
	var scenarios *catalog.Catalog
	if cfg.CatalogPath != "" {
		scenarios, err = catalog.LoadFile(cfg.CatalogPath, catalogOpts)
	} else {
		scenarios, err = catalog.LoadDefault(catalogOpts)
	}
	if err != nil {
		zap.L().Fatal("Failed to load scenario catalog", zap.Error(err))
	}
	zap.L().Info("Scenario catalog loaded",
		zap.Int("scenarios", scenarios.Len()),
		zap.Strings("categories", scenarios.Categories()),
	)

	// --- Tracing ---
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.OtelEnabled,
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Env,
		Endpoint:     cfg.OtelEndpoint,
		SamplerRatio: cfg.OtelSamplerRatio,
	}, appLogger)
	if err != nil {
		zap.L().Warn("Tracing disabled", zap.Error(err))
	}

	// --- Document store ---
	mongoClient, mongoDB, err := database.ConnectMongo(ctx, cfg.DatabaseURL, cfg.MongoDatabase, appLogger)
	if err != nil {
		zap.L().Fatal("Failed to set up document store", zap.Error(err))
	}

	// --- Identity provider ---
	firebaseAuth := identity.NewFirebase(ctx, cfg.FirebaseCredentialsPath, appLogger)

	// --- Optional Redis for rate limiting ---
	var redisClient *redis.Client
	if cfg.RateLimitPerMinute > 0 && cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if _, err := redisClient.Ping(pingCtx).Result(); err != nil {
			zap.L().Warn("Redis ping failed, rate limiter falls back to in-memory store", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		}
		cancel()
	}

	// --- Services ---
	userRepo := repository.NewMongoUserRepository(mongoDB, appLogger)
	practiceService := service.NewPracticeService(scenarios, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.DebugMode)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapLogger(appLogger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.GetAllowedOrigins(), appLogger))
	if cfg.OtelEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	// Registered before the routes so the request metrics cover them.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	handler.RegisterServiceRoutes(router)

	api := router.Group(cfg.BasePath)
	if cfg.RateLimitPerMinute > 0 {
		api.Use(middleware.RateLimit(cfg.RateLimitPerMinute, redisClient, appLogger))
		zap.L().Info("Rate limiter enabled",
			zap.Int("perMinute", cfg.RateLimitPerMinute),
			zap.Bool("redis", redisClient != nil),
		)
	}
	handler.NewPracticeHandler(practiceService, appLogger).RegisterRoutes(api)
	handler.NewUserHandler(userService, firebaseAuth, cfg.AuthRequireToken, appLogger).RegisterRoutes(api)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	// Resources close in reverse order of construction.
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Error closing Redis client", zap.Error(err))
		}
	}
	database.CloseMongo(shutdownCtx, mongoClient, appLogger)
	if err := shutdownTracing(shutdownCtx); err != nil {
		zap.L().Error("Error shutting down tracer provider", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
