package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// AuthorRepository indexes authors by ID.
// Get returns (nil, nil) when the author does not exist.
type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	Get(ctx context.Context, id string) (*entity.Author, error)
	// List returns authors in creation order.
	List(ctx context.Context) ([]*entity.Author, error)
	Count(ctx context.Context) (int, error)
}
