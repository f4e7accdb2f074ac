package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/gallery"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/pagination"
	"nonprofit-cms-backend/internal/shared/parse"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

type GalleryHandler struct {
	svc      gallery.Service
	maxFiles int
}

func NewGalleryHandler(svc gallery.Service, maxFiles int) *GalleryHandler {
	return &GalleryHandler{svc: svc, maxFiles: maxFiles}
}

// Create handles POST /api/gallery/create (multipart, >= 1 image)
func (h *GalleryHandler) Create(c *gin.Context) {
	var req gallery.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	files, err := uploads.FormImages(c, h.maxFiles)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Created(c, "Gallery item created successfully", item)
}

// List handles GET /api/gallery?page&limit&category&tags&search&sortBy&sortOrder
func (h *GalleryHandler) List(c *gin.Context) {
	filter := gallery.ListFilter{
		Category: c.Query("category"),
		Tags:     parse.StringList(c.Query("tags")),
		Search:   c.Query("search"),
		Page:     pagination.FromQuery(c, 12, "createdAt"),
	}

	items, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list gallery items")
		return
	}

	if items == nil {
		items = []gallery.Item{}
	}
	response.Paginated(c, items, len(items), filter.Page.Envelope(total))
}

// Get handles GET /api/gallery/:id — bumps the view counter.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.OK(c, item)
}

// Like handles POST /api/gallery/:id/like
func (h *GalleryHandler) Like(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	item, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		h.translateError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Liked", item)
}

// Update handles PUT /api/gallery/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req gallery.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	files, err := uploads.FormImages(c, h.maxFiles)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req, files)
	if err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gallery item updated successfully", item)
}

// Delete handles DELETE /api/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.translateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Gallery item deleted successfully", nil)
}

// Stats handles GET /api/gallery/stats
func (h *GalleryHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to load gallery stats")
		return
	}
	response.OK(c, stats)
}

func (h *GalleryHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *GalleryHandler) translateError(c *gin.Context, err error) {
	var verrs validation.Errors
	var mediaErr *storage.MediaError
	switch {
	case errors.Is(err, gallery.ErrNotFound):
		response.NotFound(c, "Gallery item not found")
	case errors.Is(err, gallery.ErrNoImages):
		response.ValidationFailed(c, "At least one image is required", []string{"images: at least one image is required"})
	case errors.Is(err, gallery.ErrLastImageGone):
		response.ValidationFailed(c, "A gallery item must keep at least one image", []string{"images: cannot remove the last image"})
	case errors.As(err, &mediaErr):
		response.BadRequest(c, "Image upload failed: "+mediaErr.Reason)
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
