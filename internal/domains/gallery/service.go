package gallery

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest, files []*multipart.FileHeader) (*Item, error)
	Get(ctx context.Context, id uuid.UUID) (*Item, error)
	Like(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest, files []*multipart.FileHeader) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
