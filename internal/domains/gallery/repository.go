package gallery

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindAndIncrementViews bumps the view counter atomically on read.
	FindAndIncrementViews(ctx context.Context, id uuid.UUID) (*Item, error)
	// IncrementLikes is a relative write: concurrent likes are never lost.
	IncrementLikes(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]Item, int64, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
