package content

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

// Service is the business logic contract for content.
type Service interface {
	Create(ctx context.Context, req CreateRequest, files []*multipart.FileHeader) (*Content, error)
	Get(ctx context.Context, idOrSlug string) (*Content, error)
	List(ctx context.Context, filter ListFilter) ([]Content, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest, files []*multipart.FileHeader) (*Content, error)
	PatchCaptions(ctx context.Context, id uuid.UUID, patch CaptionPatch) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
