package mysql

import (
	"context"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, ref requestDomain.Ref, fn func(r uow.Repos, req *requestDomain.BorrowRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the request row up-front so overlapping split operations
		// against the same request cannot interleave
		req, err := r.Requests.ResolveForUpdate(ctx, ref)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requests:  &RequestRepository{db: tx},
		Inventory: &InventoryRepository{db: tx},
	}
}
