package inventorymock

import (
	"context"

	domain "github.com/Yughie/Phylab-System/internal/domain/inventory"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, it *domain.Item) error
	GetByItemKeyFn func(ctx context.Context, itemKey string) (*domain.Item, error)
	SaveFn         func(ctx context.Context, it *domain.Item) error
	DeleteFn       func(ctx context.Context, itemKey string) error
	ListFn         func(ctx context.Context) ([]domain.Item, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, it *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetByItemKey(ctx context.Context, itemKey string) (*domain.Item, error) {
	if m.GetByItemKeyFn != nil {
		return m.GetByItemKeyFn(ctx, itemKey)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, it *domain.Item) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, it)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, itemKey string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, itemKey)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
