package routes

import (
	"net/http"
	"time"

	"tripdesk/handlers"
	"tripdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the package-search endpoints.
func RegisterSearchRoutes(r *gin.Engine, sh *handlers.SearchHandler) {
	api := r.Group("/api/search")
	{
		api.POST("/packages", sh.SearchPackages)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.SearchHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, sh)
	RegisterHealthRoute(r)
}
