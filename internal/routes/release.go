package routes

import (
	"github.com/gin-gonic/gin"

	"project-catalog/internal/handlers"
)

type ReleaseRoutes struct {
	releaseHandler *handlers.ReleaseHandler
}

func NewReleaseRoutes(releaseHandler *handlers.ReleaseHandler) *ReleaseRoutes {
	return &ReleaseRoutes{
		releaseHandler: releaseHandler,
	}
}

func (r *ReleaseRoutes) RegisterRoutes(router *gin.RouterGroup) {
	releases := router.Group("/releases")
	{
		releases.GET("/:id", r.releaseHandler.GetRelease)
		releases.PUT("/:id", r.releaseHandler.UpdateRelease)
		releases.DELETE("/:id", r.releaseHandler.DeleteRelease)
		releases.GET("/:id/structure", r.releaseHandler.GetStructure)
		releases.PUT("/:id/structure", r.releaseHandler.UpdateStructure)
		releases.PUT("/:id/status", r.releaseHandler.UpdateStatus)
	}
}
