package uow

import (
	"context"

	"github.com/Yughie/Phylab-System/internal/domain/inventory"
	"github.com/Yughie/Phylab-System/internal/domain/request"
)

type Repos struct {
	Requests  request.Repository
	Inventory inventory.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: resolve and lock the target request first, then pass it in.
	// Serializes concurrent lifecycle calls against the same request.
	WithinRequestTx(ctx context.Context, ref request.Ref, fn func(r Repos, req *request.BorrowRequest) error) error
}
