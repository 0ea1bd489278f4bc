package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// MagazineRepository indexes magazines by ID.
// Get returns (nil, nil) when the magazine does not exist.
type MagazineRepository interface {
	Create(ctx context.Context, magazine *entity.Magazine) error
	Get(ctx context.Context, id string) (*entity.Magazine, error)
	// List returns magazines in creation order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	Count(ctx context.Context) (int, error)
}
