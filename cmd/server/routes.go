package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/regbot/server/api/rest/assistant"
	"github.com/regbot/server/api/rest/dashboard"
	"github.com/regbot/server/api/rest/documents"
	"github.com/regbot/server/api/rest/guidelines"
	"github.com/regbot/server/api/rest/health"
)

const (
	// uploads run a full extract+embed cycle, keep them rare
	uploadRateLimit = 10

	// assistant calls burn LLM tokens
	assistantRateLimit = 30
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		documents.RegisterRoutes(v1, server.services.Pipeline, server.docs, rateLimiter(uploadRateLimit))
		guidelines.RegisterRoutes(v1, server.gls)
		dashboard.RegisterRoutes(v1, server.services.Dashboard)
		assistant.RegisterRoutes(v1, server.services.Assistant, rateLimiter(assistantRateLimit))
	}
}

// builds a per-client-IP rate limiting middleware allowing n requests per minute
func rateLimiter(n int64) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  n,
	}

	return mgin.NewMiddleware(limiter.New(memorystore.NewStore(), rate))
}
