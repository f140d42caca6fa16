package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-catalog/internal/pagination"
	"project-catalog/internal/responses"
	"project-catalog/internal/services"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	query := services.ListTagsQuery{
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "pageSize", pagination.DefaultPageSize),
		Search:   c.Query("search"),
	}

	page, err := h.tagService.List(c.Request.Context(), query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, page, "")
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagService.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, tag, "")
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req services.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, tag, "Tag created successfully")
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, tag, "Tag updated successfully")
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.tagService.Remove(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
