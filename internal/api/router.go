package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nine-chairs/myflix-api/docs"
	"github.com/nine-chairs/myflix-api/internal/api/handler"
	"github.com/nine-chairs/myflix-api/internal/api/middleware"
	"github.com/nine-chairs/myflix-api/internal/core/service"
	"github.com/nine-chairs/myflix-api/internal/infrastructure/config"
	mongodb "github.com/nine-chairs/myflix-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nine-chairs/myflix-api/internal/infrastructure/db/redis"
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
	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	e.Use(echomiddleware.CORSWithConfig(corsConfig))
	e.Use(echoprometheus.NewMiddleware("myflix"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, 0, 0)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo, log)
	movieService := service.NewMovieService(movieRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	gate := middleware.Auth(authService, log)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to myFlix")
	})
	e.POST("/users", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Catalog (token required) ---
	e.GET("/movies", movieHandler.List, gate)
	e.GET("/movies/:title", movieHandler.GetByTitle, gate)
	e.GET("/genres/:name", movieHandler.GetGenre, gate)
	e.GET("/directors/:name", movieHandler.GetDirector, gate)

	// --- Users (token required; mutations additionally ownership-checked) ---
	e.GET("/users", userHandler.List, gate)
	e.GET("/users/:username", userHandler.Get, gate)
	e.PUT("/users/:username", userHandler.Update, gate)
	e.DELETE("/users/:username", userHandler.Delete, gate)
	e.GET("/users/:username/movies", userHandler.ListFavorites, gate)
	e.POST("/users/:username/movies/:movieID", userHandler.AddFavorite, gate)
	e.DELETE("/users/:username/movies/:movieID", userHandler.RemoveFavorite, gate)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
