package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-catalog/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, releaseHandler *handlers.ReleaseHandler, tagHandler *handlers.TagHandler, healthHandler *handlers.HealthHandler) {
	api := router.Group("/api/v1")

	projectRoutes := NewProjectRoutes(projectHandler, releaseHandler)
	projectRoutes.RegisterRoutes(api)

	releaseRoutes := NewReleaseRoutes(releaseHandler)
	releaseRoutes.RegisterRoutes(api)

	tagRoutes := NewTagRoutes(tagHandler)
	tagRoutes.RegisterRoutes(api)

	api.GET("/health", healthHandler.Health)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
