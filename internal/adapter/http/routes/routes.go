package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"pokereview/internal/adapter/http/handler"
	"pokereview/internal/adapter/http/middleware"
	"pokereview/pkg/auth"
	"pokereview/pkg/metrics"
)

type HandlersConfig struct {
	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	CountryHandler  *handler.CountryHandler
	OwnerHandler    *handler.OwnerHandler
	PokemonHandler  *handler.PokemonHandler
	ReviewerHandler *handler.ReviewerHandler
	ReviewHandler   *handler.ReviewHandler
}

func SetupRouter(handlers HandlersConfig, jwt *auth.JWT, appMetrics *metrics.AppMetrics) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("pokereview"))
	router.Use(middleware.LoggingMiddleware())

	if appMetrics != nil {
		responseCache := middleware.NewResponseCache(appMetrics)
		router.Use(responseCache.CacheMiddleware())
		router.Use(middleware.MetricsMiddleware(appMetrics))
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupPublicRoutes(router, handlers.AuthHandler)
	setupProtectedRoutes(router, handlers, jwt)

	return router
}

// SetupRouterForTests skips telemetry and caching so handler tests see
// every request uncached.
func SetupRouterForTests(handlers HandlersConfig, jwt *auth.JWT) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupPublicRoutes(router, handlers.AuthHandler)
	setupProtectedRoutes(router, handlers, jwt)

	return router
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	if authHandler == nil {
		return
	}

	public := router.Group("/auth")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig, jwt *auth.JWT) {
	protected := router.Group("/")
	protected.Use(middleware.JwtMiddleware(jwt))
	{
		if h := handlers.CategoryHandler; h != nil {
			protected.GET("/categories", h.List)
			protected.GET("/categories/:id", h.Get)
			protected.GET("/categories/:id/pokemon", h.PokemonByCategory)
			protected.POST("/categories", h.Create)
			protected.PUT("/categories/:id", h.Update)
			protected.DELETE("/categories/:id", h.Delete)
		}

		if h := handlers.CountryHandler; h != nil {
			protected.GET("/countries", h.List)
			protected.GET("/countries/:id", h.Get)
			protected.POST("/countries", h.Create)
			protected.PUT("/countries/:id", h.Update)
			protected.DELETE("/countries/:id", h.Delete)
		}

		if h := handlers.OwnerHandler; h != nil {
			protected.GET("/owners", h.List)
			protected.GET("/owners/:id", h.Get)
			protected.GET("/owners/:id/pokemon", h.PokemonByOwner)
			protected.GET("/owners/:id/country", h.CountryByOwner)
			protected.POST("/owners", h.Create)
			protected.PUT("/owners/:id", h.Update)
			protected.DELETE("/owners/:id", h.Delete)
		}

		if h := handlers.PokemonHandler; h != nil {
			protected.GET("/pokemon", h.List)
			protected.GET("/pokemon/:id", h.Get)
			protected.GET("/pokemon/:id/rating", h.Rating)
			protected.GET("/pokemon/:id/reviews", h.Reviews)
			protected.POST("/pokemon", h.Create)
			protected.PUT("/pokemon/:id", h.Update)
			protected.DELETE("/pokemon/:id", h.Delete)
		}

		if h := handlers.ReviewerHandler; h != nil {
			protected.GET("/reviewers", h.List)
			protected.GET("/reviewers/:id", h.Get)
			protected.GET("/reviewers/:id/reviews", h.Reviews)
			protected.POST("/reviewers", h.Create)
			protected.PUT("/reviewers/:id", h.Update)
			protected.DELETE("/reviewers/:id", h.Delete)
		}

		if h := handlers.ReviewHandler; h != nil {
			protected.GET("/reviews", h.List)
			protected.GET("/reviews/:id", h.Get)
			protected.POST("/reviews", h.Create)
			protected.PUT("/reviews/:id", h.Update)
			protected.DELETE("/reviews/:id", h.Delete)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
