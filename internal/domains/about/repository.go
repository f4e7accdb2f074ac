package about

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindActive(ctx context.Context) (*Document, error)
	List(ctx context.Context, filter ListFilter) ([]Document, int64, error)
	Update(ctx context.Context, doc *Document) error
	// Activate deactivates every other version and activates id in a single
	// transaction, so concurrent calls cannot leave two versions active.
	Activate(ctx context.Context, id uuid.UUID) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
