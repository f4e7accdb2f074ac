package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"nonprofit-cms-backend/internal/domains/user"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo  user.Repository
	media storage.MediaStore
	jwt   *jwt.Manager
}

func NewUserService(repo user.Repository, media storage.MediaStore, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, media: media, jwt: jwtManager}
}

// Register creates an account and issues a session token.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Pre-check both unique fields so the caller learns which one conflicts.
	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if taken {
		return nil, user.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(newUser.ID.String(), newUser.Username, newUser.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{Token: token, User: newUser.ToDTO()}, nil
}

// Login verifies credentials and issues a session token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID.String(), u.Username, u.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{Token: token, User: u.ToDTO()}, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

// UpdateProfile patches the profile fields and optionally replaces the
// avatar. A newly stored avatar that cannot be persisted is compensated;
// the previous avatar is deleted best-effort only after the row is saved.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req user.UpdateProfileRequest, avatar *multipart.FileHeader) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}

	oldImageID := u.ProfileImageID
	var stored []uploads.Image
	if avatar != nil {
		stored, err = uploads.Collect(ctx, s.media, "avatars", []*multipart.FileHeader{avatar})
		if err != nil {
			return nil, err
		}
		u.ProfileImageURL = stored[0].URL
		u.ProfileImageID = stored[0].StorageID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		uploads.Rollback(s.media, stored)
		return nil, err
	}

	if avatar != nil && oldImageID != "" {
		uploads.Cleanup(s.media, []string{oldImageID})
	}

	dto := u.ToDTO()
	return &dto, nil
}

// ChangePassword requires the current credential, rejects reuse, rehashes.
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	if req.CurrentPassword == req.NewPassword {
		return user.ErrSamePassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, string(newHash))
}

func (s *userService) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.FindByID(ctx, id)
	return err
}
