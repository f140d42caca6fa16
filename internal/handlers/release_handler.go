package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-catalog/internal/models"
	"project-catalog/internal/pagination"
	"project-catalog/internal/responses"
	"project-catalog/internal/services"
)

type ReleaseHandler struct {
	releaseService *services.ReleaseService
}

func NewReleaseHandler(releaseService *services.ReleaseService) *ReleaseHandler {
	return &ReleaseHandler{
		releaseService: releaseService,
	}
}

func (h *ReleaseHandler) ListReleases(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	query := services.ListReleasesQuery{
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "pageSize", pagination.DefaultPageSize),
		Version:  c.Query("version"),
	}
	if status := c.Query("status"); status != "" {
		s := models.ReleaseStatus(status)
		query.Status = &s
	}

	page, err := h.releaseService.List(c.Request.Context(), projectID, query)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, page, "")
}

func (h *ReleaseHandler) CreateRelease(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.CreateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	release, err := h.releaseService.Create(c.Request.Context(), projectID, req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, release, "Release created successfully")
}

func (h *ReleaseHandler) GetProjectRelease(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	releaseID, ok := pathUUID(c, "releaseId")
	if !ok {
		return
	}

	release, err := h.releaseService.Get(c.Request.Context(), releaseID, &projectID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, release, "")
}

func (h *ReleaseHandler) GetRelease(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	release, err := h.releaseService.Get(c.Request.Context(), id, nil)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, release, "")
}

func (h *ReleaseHandler) UpdateRelease(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	release, err := h.releaseService.Update(c.Request.Context(), id, req, nil)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, release, "Release updated successfully")
}

func (h *ReleaseHandler) DeleteRelease(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.releaseService.Remove(c.Request.Context(), id, nil); err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateStructureRequest struct {
	SnapshotID string         `json:"snapshotId" binding:"required"`
	Structure  models.JSONMap `json:"structure" binding:"required"`
}

func (h *ReleaseHandler) UpdateStructure(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req updateStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	release, err := h.releaseService.UpdateStructure(c.Request.Context(), id, req.SnapshotID, req.Structure)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, release, "Release structure updated successfully")
}

type updateStatusRequest struct {
	Status models.ReleaseStatus `json:"status" binding:"required"`
}

func (h *ReleaseHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	release, err := h.releaseService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, release, "Release status updated successfully")
}

func (h *ReleaseHandler) GetStructure(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	structure, err := h.releaseService.GetStructure(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, http.StatusOK, structure, "")
}
