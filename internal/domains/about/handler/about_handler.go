package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/about"
	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/utils"
)

type AboutHandler struct {
	svc about.Service
}

func NewAboutHandler(svc about.Service) *AboutHandler {
	return &AboutHandler{svc: svc}
}

// Create handles POST /api/about/create (JSON body)
func (h *AboutHandler) Create(c *gin.Context) {
	var req about.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.svc.Create(c.Request.Context(), req, h.callerID(c))
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Created(c, "About content created successfully", doc)
}

// List handles GET /api/about?page&limit
func (h *AboutHandler) List(c *gin.Context) {
	filter := about.ListFilter{
		Page: pagination.FromQuery(c, 10, "createdAt"),
	}

	docs, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list about contents")
		return
	}

	if docs == nil {
		docs = []about.Document{}
	}
	response.Paginated(c, docs, len(docs), filter.Page.Envelope(total))
}

// GetActive handles GET /api/about/active — the version the public site shows.
func (h *AboutHandler) GetActive(c *gin.Context) {
	doc, err := h.svc.GetActive(c.Request.Context())
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, doc)
}

// Get handles GET /api/about/:id
func (h *AboutHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, doc)
}

// Update handles PUT /api/about/:id
func (h *AboutHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req about.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), id, req, h.callerID(c))
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "About content updated successfully", doc)
}

// Activate handles POST /api/about/:id/activate
func (h *AboutHandler) Activate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	doc, err := h.svc.Activate(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "About content activated successfully", doc)
}

// Delete handles DELETE /api/about/:id
func (h *AboutHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "About content deleted successfully", nil)
}

// Stats handles GET /api/about/admin/stats
func (h *AboutHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load about stats")
		return
	}
	response.OK(c, stats)
}

func (h *AboutHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// callerID returns the authenticated user's id when the auth middleware ran.
func (h *AboutHandler) callerID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func (h *AboutHandler) translateError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, about.ErrNotFound):
		response.NotFound(c, "About content not found")
	case errors.Is(err, about.ErrNoActiveDoc):
		response.NotFound(c, "No active about content")
	case errors.Is(err, about.ErrVersionTaken):
		response.ValidationFailed(c, "Validation failed", []string{"version: " + about.ErrVersionTaken.Error()})
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
