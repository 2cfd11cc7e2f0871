package inventory

import (
	"context"
	"errors"
	"log"

	inventoryDomain "github.com/Yughie/Phylab-System/internal/domain/inventory"
	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
)

var ErrInvalidStock = errors.New("stock cannot go negative")

// StockMirror pushes a catalog count to the external data store.
// Best-effort: callers log and discard its error.
type StockMirror interface {
	PushStock(ctx context.Context, itemKey string, stock int) error
	Enabled() bool
}

type Usecase struct {
	repo     inventoryDomain.Repository
	requests requestDomain.Repository
	mirror   StockMirror
}

func NewUsecase(repo inventoryDomain.Repository, requests requestDomain.Repository, mirror StockMirror) *Usecase {
	return &Usecase{repo: repo, requests: requests, mirror: mirror}
}

type UpsertInput struct {
	ItemKey     string `json:"item_key"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	Cabinet     string `json:"cabinet"`
	Description string `json:"description"`
	ItemType    string `json:"type"`
	Use         string `json:"use"`
	ImageURL    string `json:"image_url"`
}

// ItemWithLoans augments a catalog row with the quantity currently out on
// loan, reconciling stock against active borrow items.
type ItemWithLoans struct {
	inventoryDomain.Item
	OnLoan    int `json:"on_loan"`
	Available int `json:"available"`
}

func (u *Usecase) Create(ctx context.Context, in UpsertInput) (*inventoryDomain.Item, error) {
	if _, err := u.repo.GetByItemKey(ctx, in.ItemKey); err == nil {
		return nil, inventoryDomain.ErrDuplicateKey
	} else if !errors.Is(err, inventoryDomain.ErrNotFound) {
		return nil, err
	}
	it := &inventoryDomain.Item{
		ItemKey:     in.ItemKey,
		Name:        in.Name,
		Category:    in.Category,
		Stock:       in.Stock,
		Cabinet:     in.Cabinet,
		Description: in.Description,
		ItemType:    in.ItemType,
		Use:         in.Use,
		ImageURL:    in.ImageURL,
	}
	if err := u.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	u.mirrorStock(ctx, it)
	return it, nil
}

func (u *Usecase) Get(ctx context.Context, itemKey string) (*inventoryDomain.Item, error) {
	return u.repo.GetByItemKey(ctx, itemKey)
}

func (u *Usecase) Update(ctx context.Context, itemKey string, in UpsertInput) (*inventoryDomain.Item, error) {
	it, err := u.repo.GetByItemKey(ctx, itemKey)
	if err != nil {
		return nil, err
	}
	it.Name = in.Name
	it.Category = in.Category
	it.Stock = in.Stock
	it.Cabinet = in.Cabinet
	it.Description = in.Description
	it.ItemType = in.ItemType
	it.Use = in.Use
	it.ImageURL = in.ImageURL
	if err := u.repo.Save(ctx, it); err != nil {
		return nil, err
	}
	u.mirrorStock(ctx, it)
	return it, nil
}

func (u *Usecase) Delete(ctx context.Context, itemKey string) error {
	return u.repo.Delete(ctx, itemKey)
}

// AdjustStock applies a delta to the catalog count (restock or manual
// correction) and mirrors the new value.
func (u *Usecase) AdjustStock(ctx context.Context, itemKey string, delta int) (*inventoryDomain.Item, error) {
	it, err := u.repo.GetByItemKey(ctx, itemKey)
	if err != nil {
		return nil, err
	}
	if it.Stock+delta < 0 {
		return nil, ErrInvalidStock
	}
	it.Stock += delta
	if err := u.repo.Save(ctx, it); err != nil {
		return nil, err
	}
	u.mirrorStock(ctx, it)
	return it, nil
}

// List returns the catalog ordered by name, each row reconciled with the
// quantity currently out on active loans.
func (u *Usecase) List(ctx context.Context) ([]ItemWithLoans, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	onLoan, err := u.requests.OnLoanQuantities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItemWithLoans, 0, len(items))
	for _, it := range items {
		n := onLoan[it.ItemKey]
		out = append(out, ItemWithLoans{Item: it, OnLoan: n, Available: it.Stock - n})
	}
	return out, nil
}

// mirrorStock is fire-and-forget: the mirror's error is logged and
// deliberately discarded so catalog writes never depend on it.
func (u *Usecase) mirrorStock(ctx context.Context, it *inventoryDomain.Item) {
	if u.mirror == nil || !u.mirror.Enabled() {
		return
	}
	if err := u.mirror.PushStock(ctx, it.ItemKey, it.Stock); err != nil {
		log.Printf("stock mirror push failed for %s: %v", it.ItemKey, err)
	}
}
