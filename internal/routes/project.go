package routes

import (
	"github.com/gin-gonic/gin"

	"project-catalog/internal/handlers"
)

type ProjectRoutes struct {
	projectHandler *handlers.ProjectHandler
	releaseHandler *handlers.ReleaseHandler
}

func NewProjectRoutes(projectHandler *handlers.ProjectHandler, releaseHandler *handlers.ReleaseHandler) *ProjectRoutes {
	return &ProjectRoutes{
		projectHandler: projectHandler,
		releaseHandler: releaseHandler,
	}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.projectHandler.ListProjects)
		projects.POST("", r.projectHandler.CreateProject)
		projects.GET("/slug/:slug", r.projectHandler.GetProjectBySlug)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.PUT("/:id", r.projectHandler.UpdateProject)
		projects.DELETE("/:id", r.projectHandler.DeleteProject)
		projects.POST("/:id/icon", r.projectHandler.UploadIcon)

		projects.GET("/:id/releases", r.releaseHandler.ListReleases)
		projects.POST("/:id/releases", r.releaseHandler.CreateRelease)
		projects.GET("/:id/releases/:releaseId", r.releaseHandler.GetProjectRelease)
	}
}
