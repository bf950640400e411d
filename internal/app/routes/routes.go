package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/iug/student-portal/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
) {
	api := router.Group("/api")

	// Auth routes
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// Catalog routes (public, feed the registration form's selects)
	api.GET("/faculties", catalogController.GetFaculties)

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
