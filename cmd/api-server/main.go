package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bookreview/database"
	"bookreview/internal/config"
	"bookreview/internal/http-api/handler"
	"bookreview/internal/http-api/middleware"
	"bookreview/internal/http-api/repository"
	"bookreview/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	if err := database.EnsureAdmin(db, cfg, logger); err != nil {
		log.Fatalf("could not bootstrap admin: %v", err)
	}

	rdb := database.ConnectRedis(cfg, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	bookService := service.NewBookService(bookRepo)
	reviewService := service.NewReviewService(reviewRepo, commentRepo, bookRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, reviewRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	bookHandler := handler.NewBookHandler(bookService, reviewService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(float64(cfg.RateLimitRPS), cfg.RateLimitBurst))

	// Authentication
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", middleware.RegisterRateLimit(rdb), authHandler.Register)
	authRoutes.POST("/login", middleware.LoginRateLimit(rdb), authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/revoke", authHandler.RevokeToken)

	// Catalog: public reads resolve the viewer when a token is present,
	// mutations are admin only
	booksPublic := api.Group("/books")
	booksPublic.Use(middleware.OptionalAuth(authService))
	booksAdmin := api.Group("/books")
	booksAdmin.Use(middleware.AuthMiddleware(authService), middleware.RequireAdmin())
	bookHandler.RegisterRoutes(booksPublic, booksAdmin)

	// Reviews, comments, likes require authentication
	booksAuth := api.Group("/books")
	booksAuth.Use(middleware.AuthMiddleware(authService))
	reviewRoutes := api.Group("/reviews")
	reviewRoutes.Use(middleware.AuthMiddleware(authService))
	commentRoutes := api.Group("/comments")
	commentRoutes.Use(middleware.AuthMiddleware(authService))

	reviewHandler.RegisterRoutes(booksAuth, reviewRoutes)
	commentHandler.RegisterRoutes(reviewRoutes, commentRoutes)
	likeHandler.RegisterRoutes(reviewRoutes)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
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
