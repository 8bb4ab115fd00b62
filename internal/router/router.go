package router

import (
	"github.com/gin-gonic/gin"

	"quoteparse/internal/handler"
	"quoteparse/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	quoteH *handler.QuoteHandler,
	pageH *handler.PageHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Original routes kept for existing clients
	r.POST("/extract-items", quoteH.Extract)
	r.POST("/upload", pageH.Dump)

	v1 := r.Group("/api/v1")

	quotes := v1.Group("/quotes")
	quotes.POST("/extract", quoteH.Extract)
	quotes.POST("/export", quoteH.Export)

	v1.POST("/pages/dump", pageH.Dump)
	v1.GET("/vendors", quoteH.Vendors)

	return r
}
