package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streamflix/streaming-api/internal/api/handler"
	"github.com/streamflix/streaming-api/internal/api/middleware"
	"github.com/streamflix/streaming-api/internal/core/service"
	"github.com/streamflix/streaming-api/internal/infrastructure/config"
	mongodb "github.com/streamflix/streaming-api/internal/infrastructure/db/mongo"
	redisdb "github.com/streamflix/streaming-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/streamflix/streaming-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("streaming"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	sessionStore := redisdb.NewRevokedSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL)
	sessionService := service.NewSessionService(userRepo, sessionStore, cfg.JWTSecret)
	catalogService := service.NewCatalogService(movieRepo, log)
	favoritesService := service.NewFavoritesService(userRepo, movieRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(catalogService)
	favoriteHandler := handler.NewFavoriteHandler(favoritesService)
	userHandler := handler.NewUserHandler()

	sessionMiddleware := middleware.Session(sessionService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Session-gated routes ---
	protected := e.Group("", sessionMiddleware)
	protected.GET("/movies", movieHandler.List)
	protected.GET("/movies/:id", movieHandler.Get)
	protected.GET("/random", movieHandler.Random)
	protected.GET("/favorites", favoriteHandler.List)
	protected.POST("/favorite", favoriteHandler.Add)
	protected.DELETE("/favorite", favoriteHandler.Remove)
	protected.GET("/current", userHandler.Current)
	protected.POST("/logout", authHandler.Logout)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics exposition ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
