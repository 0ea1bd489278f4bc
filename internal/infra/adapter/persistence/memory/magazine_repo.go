package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface in memory.
type MagazineRepo struct{ ix *index[*entity.Magazine] }

// NewMagazineRepo creates an empty magazine repository.
func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{ix: newIndex[*entity.Magazine]()}
}

func (repo *MagazineRepo) Create(ctx context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return fmt.Errorf("Create: %w", ErrNilEntity)
	}
	if err := repo.ix.add(ctx, magazine.ID(), magazine); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *MagazineRepo) Get(ctx context.Context, id string) (*entity.Magazine, error) {
	a, ok, err := repo.ix.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := repo.ix.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return magazines, nil
}

func (repo *MagazineRepo) Count(ctx context.Context) (int, error) {
	n, err := repo.ix.count(ctx)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
