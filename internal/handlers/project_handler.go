package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
	"project-catalog/internal/responses"
	"project-catalog/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	query := services.ListProjectsQuery{
		Page:      queryInt(c, "page", 0),
		PageSize:  queryInt(c, "pageSize", pagination.DefaultPageSize),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if status := c.Query("status"); status != "" {
		s := models.ProjectStatus(status)
		query.Status = &s
	}
	if ownerID := c.Query("ownerId"); ownerID != "" {
		owner, err := uuid.Parse(ownerID)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid ownerId format")
			return
		}
		query.OwnerID = &owner
	}
	for _, raw := range c.QueryArray("tagIds") {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid tagIds format")
			return
		}
		query.TagIDs = append(query.TagIDs, tagID)
	}

	page, err := h.projectService.List(c.Request.Context(), query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, page, "")
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, project, "")
}

func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Slug is required")
		return
	}
	project, err := h.projectService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, project, "")
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, project, "Project created successfully")
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, project, "Project updated successfully")
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.projectService.Remove(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) UploadIcon(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "A file upload named 'file' is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxIconSizeBytes+1))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read uploaded file")
		return
	}

	project, err := h.projectService.UploadIcon(c.Request.Context(), id, data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, project, "Project icon updated successfully")
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
