package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateID is returned when an entity with the same ID is already indexed.
	ErrDuplicateID = errors.New("id already exists")

	// ErrNilEntity is returned when Create is called with a nil entity.
	ErrNilEntity = errors.New("entity is nil")
)

// index is an insertion-ordered, ID-keyed set of entities.
type index[T any] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []T
}

func newIndex[T any]() *index[T] {
	return &index[T]{byID: make(map[string]T)}
}

func (ix *index[T]) add(ctx context.Context, id string, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, ok := ix.byID[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	ix.byID[id] = v
	ix.order = append(ix.order, v)
	return nil
}

func (ix *index[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	v, ok := ix.byID[id]
	return v, ok, nil
}

func (ix *index[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]T, len(ix.order))
	copy(out, ix.order)
	return out, nil
}

func (ix *index[T]) count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.order), nil
}
