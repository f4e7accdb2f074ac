package project

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest, files []*multipart.FileHeader) (*Project, error)
	Get(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context, filter ListFilter) ([]Project, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest, files []*multipart.FileHeader) (*Project, error)
	RemoveImage(ctx context.Context, id uuid.UUID, storageID string) (*Project, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
