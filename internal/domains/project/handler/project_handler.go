package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/project"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

type ProjectHandler struct {
	svc      project.Service
	maxFiles int
}

func NewProjectHandler(svc project.Service, maxFiles int) *ProjectHandler {
	return &ProjectHandler{svc: svc, maxFiles: maxFiles}
}

// Create handles POST /api/projects/create (multipart)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	files, err := uploads.FormImages(c, h.maxFiles)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Created(c, "Project created successfully", p)
}

// List handles GET /api/projects?page&limit&active
func (h *ProjectHandler) List(c *gin.Context) {
	filter := project.ListFilter{
		ActiveOnly: c.Query("active") == "true",
		Page:       pagination.FromQuery(c, 10, "order"),
	}

	items, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list projects")
		return
	}

	if items == nil {
		items = []project.Project{}
	}
	response.Paginated(c, items, len(items), filter.Page.Envelope(total))
}

// Get handles GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, p)
}

// Update handles PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req project.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	files, err := uploads.FormImages(c, h.maxFiles)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated successfully", p)
}

// RemoveImage handles DELETE /api/projects/:id/images/*storageId
// The storage ID contains slashes, so the route uses a wildcard.
func (h *ProjectHandler) RemoveImage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	storageID := strings.TrimPrefix(c.Param("storageId"), "/")
	if storageID == "" {
		response.BadRequest(c, "Image ID is required")
		return
	}

	p, err := h.svc.RemoveImage(c.Request.Context(), id, storageID)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Image removed successfully", p)
}

// ToggleStatus handles PATCH /api/projects/:id/toggle-status
func (h *ProjectHandler) ToggleStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	p, err := h.svc.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project status updated", p)
}

// Delete handles DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}

// Stats handles GET /api/projects/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load project stats")
		return
	}
	response.OK(c, stats)
}

func (h *ProjectHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProjectHandler) translateError(c *gin.Context, err error) {
	var verrs validation.Errors
	var mediaErr *storage.MediaError
	switch {
	case errors.Is(err, project.ErrNotFound):
		response.NotFound(c, "Project not found")
	case errors.Is(err, project.ErrImageNotFound):
		response.NotFound(c, "Image not found on this project")
	case errors.As(err, &mediaErr):
		response.BadRequest(c, "Image upload failed: "+mediaErr.Reason)
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
