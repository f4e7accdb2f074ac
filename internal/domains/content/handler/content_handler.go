package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/content"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

type ContentHandler struct {
	svc      content.Service
	maxFiles int
}

func NewContentHandler(svc content.Service, maxFiles int) *ContentHandler {
	return &ContentHandler{svc: svc, maxFiles: maxFiles}
}

// Create handles POST /api/content/create (multipart, up to maxFiles images)
func (h *ContentHandler) Create(c *gin.Context) {
	var req content.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Creator is optional: only recorded when a valid session rode along.
	if id, ok := c.Get("userID"); ok {
		userID := id.(uuid.UUID)
		req.CreatorID = &userID
	}

	files, ok := h.formImages(c)
	if !ok {
		return
	}

	doc, err := h.svc.Create(c.Request.Context(), req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Created(c, "Content created successfully", doc)
}

// List handles GET /api/content?page&limit&status&search&tags&sortBy&sortOrder
func (h *ContentHandler) List(c *gin.Context) {
	filter := content.ListFilter{
		Status: c.Query("status"),
		Tags:   parse.StringList(c.Query("tags")),
		Search: c.Query("search"),
		Page:   pagination.FromQuery(c, 10, "createdAt"),
	}

	items, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list content")
		return
	}

	if items == nil {
		items = []content.Content{}
	}
	response.Paginated(c, items, len(items), filter.Page.Envelope(total))
}

// Get handles GET /api/content/:id — accepts id or slug, bumps the view
// counter as a side effect.
func (h *ContentHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, doc)
}

// Update handles PUT /api/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req content.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	files, ok := h.formImages(c)
	if !ok {
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), id, req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Content updated successfully", doc)
}

// PatchCaptions handles PATCH /api/content/:id/captions
func (h *ContentHandler) PatchCaptions(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var patch content.CaptionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.svc.PatchCaptions(c.Request.Context(), id, patch)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Captions updated successfully", doc)
}

// Delete handles DELETE /api/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Content deleted successfully", nil)
}

// Stats handles GET /api/content/stats
func (h *ContentHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load content stats")
		return
	}
	response.OK(c, stats)
}

func (h *ContentHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ContentHandler) formImages(c *gin.Context) ([]*multipart.FileHeader, bool) {
	files, err := uploads.FormImages(c, h.maxFiles)
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	return files, true
}

func (h *ContentHandler) translateError(c *gin.Context, err error) {
	var verrs validation.Errors
	var parseErr *parse.ParseError
	var mediaErr *storage.MediaError
	switch {
	case errors.Is(err, content.ErrNotFound):
		response.NotFound(c, "Content not found")
	case errors.Is(err, content.ErrSlugTaken):
		response.ValidationFailed(c, "Slug already in use", []string{"slug: already in use"})
	case errors.As(err, &parseErr):
		response.ValidationFailed(c, "Validation failed", []string{parseErr.Error()})
	case errors.As(err, &mediaErr):
		response.BadRequest(c, "Image upload failed: "+mediaErr.Reason)
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
