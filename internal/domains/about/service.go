package about

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest, updatedBy *uuid.UUID) (*Document, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
	GetActive(ctx context.Context) (*Document, error)
	List(ctx context.Context, filter ListFilter) ([]Document, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest, updatedBy *uuid.UUID) (*Document, error)
	Activate(ctx context.Context, id uuid.UUID) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
