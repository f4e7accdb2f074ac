package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nonprofit-cms-backend/internal/domains/user"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/internal/shared/utils"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		h.translateAuthError(c, err)
		return
	}

	// Token and user ride at the top level: the frontend stores both
	// straight out of the envelope.
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"token":   auth.Token,
		"user":    auth.User,
	})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		h.translateAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   auth.Token,
		"user":    auth.User,
	})
}

// GetProfile handles GET /api/auth/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	dto, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			response.Unauthorized(c, "Unauthorized: user not found")
			return
		}
		response.InternalServerError(c, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto})
}

// UpdateProfile handles PUT /api/auth/profile (multipart, optional avatar)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	var req user.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	avatar, err := c.FormFile("profileImage")
	if err != nil {
		avatar = nil // no file attached
	}

	dto, err := h.svc.UpdateProfile(c.Request.Context(), userID, req, avatar)
	if err != nil {
		h.translateAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    dto,
	})
}

// ChangePassword handles PUT /api/auth/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, user.ErrWrongPassword):
			response.Unauthorized(c, "Current password is incorrect")
		case errors.Is(err, user.ErrSamePassword):
			response.BadRequest(c, "New password must differ from the current one")
		default:
			h.translateAuthError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *UserHandler) translateAuthError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		response.ValidationFailed(c, "Username already taken", []string{"username: already taken"})
	case errors.Is(err, user.ErrEmailTaken):
		response.ValidationFailed(c, "Email already registered", []string{"email: already registered"})
	case errors.Is(err, user.ErrNotFound):
		response.NotFound(c, "User not found")
	case utils.AsValidationErrors(err, &verrs):
		response.ValidationFailed(c, "Validation failed", utils.ValidationMessages(err))
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
