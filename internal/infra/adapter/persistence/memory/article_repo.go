package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface on top of an entity.Registry.
type ArticleRepo struct{ reg *entity.Registry }

// NewArticleRepo creates an article repository reading from reg.
func NewArticleRepo(reg *entity.Registry) repository.ArticleRepository {
	return &ArticleRepo{reg: reg}
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	art, ok := repo.reg.Find(id)
	if !ok {
		return nil, nil
	}
	return art, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return repo.reg.All(), nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return repo.reg.Len(), nil
}
