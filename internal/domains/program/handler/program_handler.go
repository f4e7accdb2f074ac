package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/program"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

type ProgramHandler struct {
	svc      program.Service
	maxFiles int
}

func NewProgramHandler(svc program.Service, maxFiles int) *ProgramHandler {
	return &ProgramHandler{svc: svc, maxFiles: maxFiles}
}

// Create handles POST /api/programs/create (multipart)
func (h *ProgramHandler) Create(c *gin.Context) {
	var req program.CreateRequest
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

	response.Created(c, "Program created successfully", p)
}

// List handles GET /api/programs?page&limit&programType&status&search
func (h *ProgramHandler) List(c *gin.Context) {
	filter := program.ListFilter{
		ProgramType: c.Query("programType"),
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		Page:        pagination.FromQuery(c, 10, "createdAt"),
	}

	items, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list programs")
		return
	}

	if items == nil {
		items = []program.Program{}
	}
	response.Paginated(c, items, len(items), filter.Page.Envelope(total))
}

// Get handles GET /api/programs/:id — id or slug.
func (h *ProgramHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, p)
}

// Update handles PUT /api/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req program.UpdateRequest
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

	response.Success(c, http.StatusOK, "Program updated successfully", p)
}

// Delete handles DELETE /api/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Program deleted successfully", nil)
}

// Stats handles GET /api/programs/stats
func (h *ProgramHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load program stats")
		return
	}
	response.OK(c, stats)
}

func (h *ProgramHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProgramHandler) translateError(c *gin.Context, err error) {
	var verrs validation.Errors
	var mediaErr *storage.MediaError
	switch {
	case errors.Is(err, program.ErrNotFound):
		response.NotFound(c, "Program not found")
	case errors.Is(err, program.ErrSlugTaken):
		response.ValidationFailed(c, "A program with this title already exists", []string{"slug: already in use"})
	case errors.As(err, &mediaErr):
		response.BadRequest(c, "Image upload failed: "+mediaErr.Reason)
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
