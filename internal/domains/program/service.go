package program

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest, files []*multipart.FileHeader) (*Program, error)
	Get(ctx context.Context, idOrSlug string) (*Program, error)
	List(ctx context.Context, filter ListFilter) ([]Program, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest, files []*multipart.FileHeader) (*Program, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
