package inventory

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("inventory item not found")
	ErrDuplicateKey = errors.New("item key already exists")
)

// Item mirrors the lab catalog. The borrow side references it only through
// item_key, never a foreign key.
type Item struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemKey     string    `gorm:"column:item_key;size:100;not null;uniqueIndex:ux_inventory_items_item_key" json:"item_key"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Category    string    `gorm:"column:category;size:100" json:"category"`
	Stock       int       `gorm:"column:stock;not null;default:0" json:"stock"`
	Cabinet     string    `gorm:"column:cabinet;size:100" json:"cabinet"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ItemType    string    `gorm:"column:item_type;size:100" json:"type"`
	Use         string    `gorm:"column:use;size:255" json:"use"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string { return "inventory_items" }
