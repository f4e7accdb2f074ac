package program

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Program) error
	FindByIDOrSlug(ctx context.Context, idOrSlug string) (*Program, error)
	List(ctx context.Context, filter ListFilter) ([]Program, int64, error)
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
