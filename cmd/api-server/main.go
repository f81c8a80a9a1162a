package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"mediahub/database"
	"mediahub/internal/api/handler"
	"mediahub/internal/api/middleware"
	"mediahub/internal/api/repository"
	"mediahub/internal/api/service"
	"mediahub/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Redis is optional, the rate limiter degrades to in-process buckets
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		logger.Info("Redis rate limiting enabled", "addr", cfg.RedisAddr)
	} else {
		logger.Info("Redis not configured, using in-process rate limiting")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	mediaService := service.NewMediaService(mediaRepo)
	ratingService := service.NewRatingService(ratingRepo, mediaRepo)
	recommendationService := service.NewRecommendationService(ratingRepo, mediaRepo)
	leaderboardService := service.NewLeaderboardService(ratingRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, mediaRepo)
	userService := service.NewUserService(userRepo, mediaRepo, ratingRepo, favoriteRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	userHandler := handler.NewUserHandler(userService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RateLimit(rdb, cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authed := api.Group("", middleware.AuthMiddleware(authService))

	authHandler.RegisterRoutes(api)
	mediaHandler.RegisterRoutes(api, authed)
	ratingHandler.RegisterRoutes(api, authed)
	recommendationHandler.RegisterRoutes(authed)
	leaderboardHandler.RegisterRoutes(api)
	favoriteHandler.RegisterRoutes(authed)
	userHandler.RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting API server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
