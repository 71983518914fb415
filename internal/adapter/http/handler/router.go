package handler

import (
	"github.com/CAR-dano/cardano-backend-sub000/internal/adapter/http/middleware"
	redisStorage "github.com/CAR-dano/cardano-backend-sub000/internal/adapter/storage/redis"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	InspectionSvc  ports.InspectionService
	ChainReadSvc   ports.ChainReadService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	RateLimit      *redisStorage.RateLimitStore // nil disables rate limiting
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	rules := middleware.DefaultRateLimitRules()
	limiter := func(group string) gin.HandlerFunc {
		if deps.RateLimit == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimit, group, rules[group], deps.Logger)
	}

	// --- Inspections (JWT-authenticated) ---
	inspectionHandler := NewInspectionHandler(deps.InspectionSvc)
	inspections := v1.Group("/inspections", jwtAuth, limiter("inspections"))
	{
		inspections.POST("", inspectionHandler.Create)
		inspections.GET("", inspectionHandler.List)
		inspections.GET("/:id", inspectionHandler.Get)
		inspections.POST("/:id/approve", inspectionHandler.Approve)
		inspections.POST("/:id/mint", limiter("mint"), inspectionHandler.Mint)
	}

	// --- Chain reads (public) ---
	chainHandler := NewChainHandler(deps.ChainReadSvc)
	chain := v1.Group("/chain", limiter("chain"))
	{
		chain.GET("/txs/:id/metadata", chainHandler.GetTransactionMetadata)
		chain.GET("/assets/:id", chainHandler.GetAsset)
	}

	return r
}
