package routes

import (
	"strings"
	"time"

	"odontocarol/config"
	"odontocarol/handlers"
	"odontocarol/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the public service catalog endpoint.
func RegisterServiceRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/servicios")
	{
		api.GET("", h.ListServices)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	origins := strings.Split(config.AppConfig.AllowedOrigins, ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, h)
	RegisterBookingRoutes(r, h)
}
