package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 30).Error("username must be 3-30 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be at least 6 characters"),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// UpdateProfileRequest arrives as multipart so the avatar can ride along.
// Nil pointer means "leave the field alone".
type UpdateProfileRequest struct {
	Username *string `form:"username"`
	Email    *string `form:"email"`
	Bio      *string `form:"bio"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != nil, validation.Length(3, 30).Error("username must be 3-30 characters")),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email.Error("invalid email format")),
		),
		validation.Field(&r.Bio,
			validation.When(r.Bio != nil, validation.Length(0, 500).Error("bio must be at most 500 characters")),
		),
	)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("current password is required")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("new password is required"),
			validation.Length(6, 128).Error("new password must be at least 6 characters"),
		),
	)
}

// AuthResponse is the login/register payload: token plus safe user view.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
