package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByItemKey(ctx context.Context, itemKey string) (*Item, error)
	Save(ctx context.Context, it *Item) error
	Delete(ctx context.Context, itemKey string) error
	List(ctx context.Context) ([]Item, error)
}
