package mysql

import (
	"context"
	"errors"

	inventoryDomain "github.com/Yughie/Phylab-System/internal/domain/inventory"

	"gorm.io/gorm"
)

type InventoryRepository struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository { return &InventoryRepository{db: db} }

func (r *InventoryRepository) Create(ctx context.Context, it *inventoryDomain.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *InventoryRepository) GetByItemKey(ctx context.Context, itemKey string) (*inventoryDomain.Item, error) {
	var out inventoryDomain.Item
	err := r.db.WithContext(ctx).Where("item_key = ?", itemKey).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventoryDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *InventoryRepository) Save(ctx context.Context, it *inventoryDomain.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, itemKey string) error {
	res := r.db.WithContext(ctx).Where("item_key = ?", itemKey).Delete(&inventoryDomain.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return inventoryDomain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventoryDomain.Item, error) {
	var out []inventoryDomain.Item
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}
