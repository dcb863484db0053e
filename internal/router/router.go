package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mergington-dev/activities/internal/handlers"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	staticDir := os.Getenv("STATIC_DIR")

	if staticDir == "" {
		staticDir = "./static"
	}

	r.GET("/", handlers.Root)
	r.Static("/static", staticDir)
	r.GET("/health", handlers.HealthCheck)

	activities := r.Group("/activities")
	{
		activities.GET("", handlers.ListActivities)
		activities.POST("/:name/signup", handlers.SignupForActivity)
		activities.DELETE("/:name/unregister", handlers.UnregisterFromActivity)
	}

	return r
}
