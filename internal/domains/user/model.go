package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. PasswordHash is write-only: it never leaves
// the domain package through a DTO.
type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	PasswordHash    string
	Bio             string
	ProfileImageURL string
	ProfileImageID  string // media-store key, needed to delete the old avatar
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserDTO is the read shape. No password material, no storage keys.
type UserDTO struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profileImage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
