package routes

import (
	"github.com/gin-gonic/gin"

	"project-catalog/internal/handlers"
)

type TagRoutes struct {
	tagHandler *handlers.TagHandler
}

func NewTagRoutes(tagHandler *handlers.TagHandler) *TagRoutes {
	return &TagRoutes{
		tagHandler: tagHandler,
	}
}

func (r *TagRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	{
		tags.GET("", r.tagHandler.ListTags)
		tags.POST("", r.tagHandler.CreateTag)
		tags.GET("/:id", r.tagHandler.GetTag)
		tags.PUT("/:id", r.tagHandler.UpdateTag)
		tags.DELETE("/:id", r.tagHandler.DeleteTag)
	}
}
