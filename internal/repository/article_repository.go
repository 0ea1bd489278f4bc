package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// ArticleRepository reads articles from the registry that owns them.
// Articles are registered by entity construction, so there is no Create.
type ArticleRepository interface {
	Get(ctx context.Context, id string) (*entity.Article, error)
	// List returns articles in registry order.
	List(ctx context.Context) ([]*entity.Article, error)
	Count(ctx context.Context) (int, error)
}
