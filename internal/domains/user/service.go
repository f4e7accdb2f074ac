package user

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

// Service is the business logic contract for auth and profiles.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest, avatar *multipart.FileHeader) (*UserDTO, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error
	// Exists backs the auth middleware's identity re-resolution.
	Exists(ctx context.Context, id uuid.UUID) error
}
