package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface in memory.
type AuthorRepo struct{ ix *index[*entity.Author] }

// NewAuthorRepo creates an empty author repository.
func NewAuthorRepo() repository.AuthorRepository {
	return &AuthorRepo{ix: newIndex[*entity.Author]()}
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	if author == nil {
		return fmt.Errorf("Create: %w", ErrNilEntity)
	}
	if err := repo.ix.add(ctx, author.ID(), author); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AuthorRepo) Get(ctx context.Context, id string) (*entity.Author, error) {
	a, ok, err := repo.ix.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	authors, err := repo.ix.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return authors, nil
}

func (repo *AuthorRepo) Count(ctx context.Context) (int, error) {
	n, err := repo.ix.count(ctx)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
