package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomyolivera/star-wars-api/internal/api/handler"
	"github.com/tomyolivera/star-wars-api/internal/api/middleware"
	"github.com/tomyolivera/star-wars-api/internal/core/domain"
	"github.com/tomyolivera/star-wars-api/internal/core/service"
	mongodb "github.com/tomyolivera/star-wars-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tomyolivera/star-wars-api/internal/infrastructure/db/redis"
	"github.com/tomyolivera/star-wars-api/internal/infrastructure/swapi"
	"github.com/tomyolivera/star-wars-api/internal/pkg/config"
	"github.com/tomyolivera/star-wars-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each route carries an explicit access policy consumed by the two guards.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("starwars"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpirationHours)
	users := mongodb.NewUserRepository(db)
	movies := mongodb.NewMovieRepository(db)
	cache := redisdb.NewMovieCache(rdb)
	films := swapi.NewClient(cfg.SwapiURL)

	authService := service.NewAuthService(users, issuer, log)
	movieService := service.NewMovieService(movies, films, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)

	// --- Route policies ---
	public := middleware.Public()
	authed := middleware.Authenticated()
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	guarded := func(p middleware.Policy) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{
			middleware.Auth(p, issuer, users),
			middleware.RBAC(p),
		}
	}

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login, guarded(public)...)
	auth.POST("/register", authHandler.Register, guarded(public)...)

	// --- Movie routes ---
	mv := e.Group("/api/movies")
	mv.GET("", movieHandler.List, guarded(authed)...)
	mv.GET("/seed", movieHandler.Seed, guarded(adminOnly)...)
	mv.GET("/:id", movieHandler.Get, guarded(authed)...)
	mv.POST("", movieHandler.Create, guarded(adminOnly)...)
	mv.PUT("/:id", movieHandler.Update, guarded(adminOnly)...)
	mv.DELETE("/:id", movieHandler.Delete, guarded(adminOnly)...)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
