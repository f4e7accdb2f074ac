package content

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for content documents.
type Repository interface {
	Create(ctx context.Context, c *Content) error
	// FindByIDOrSlug resolves a path parameter that may be either form.
	FindByIDOrSlug(ctx context.Context, idOrSlug string) (*Content, error)
	// FindAndIncrementViews is the read-by-id endpoint's atomic
	// view-counter bump: a relative write, never read-modify-write.
	FindAndIncrementViews(ctx context.Context, idOrSlug string) (*Content, error)
	List(ctx context.Context, filter ListFilter) ([]Content, int64, error)
	Update(ctx context.Context, c *Content) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
