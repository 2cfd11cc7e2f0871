package requestmock

import (
	"context"

	domain "github.com/Yughie/Phylab-System/internal/domain/request"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return zero values
// or context.Canceled so misuse is loud.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.BorrowRequest) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.BorrowRequest, error)
	GetByRequestIDFn   func(ctx context.Context, requestID string) (*domain.BorrowRequest, error)
	ResolveFn          func(ctx context.Context, ref domain.Ref) (*domain.BorrowRequest, error)
	ResolveForUpdateFn func(ctx context.Context, ref domain.Ref) (*domain.BorrowRequest, error)
	SaveFn             func(ctx context.Context, r *domain.BorrowRequest) error
	SaveItemFn         func(ctx context.Context, it *domain.BorrowRequestItem) error
	DeleteItemFn       func(ctx context.Context, itemID uint64) error
	ListByStatusFn     func(ctx context.Context, s domain.Status) ([]domain.BorrowRequest, error)
	ListByStudentFn    func(ctx context.Context, studentID string) ([]domain.BorrowRequest, error)
	ListItemsFn        func(ctx context.Context, f domain.ItemFilter) ([]domain.FlatItem, error)
	OnLoanQuantitiesFn func(ctx context.Context) (map[string]int, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.BorrowRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.BorrowRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) Resolve(ctx context.Context, ref domain.Ref) (*domain.BorrowRequest, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, ref)
	}
	return nil, context.Canceled
}

func (m *Repo) ResolveForUpdate(ctx context.Context, ref domain.Ref) (*domain.BorrowRequest, error) {
	if m.ResolveForUpdateFn != nil {
		return m.ResolveForUpdateFn(ctx, ref)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.BorrowRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) SaveItem(ctx context.Context, it *domain.BorrowRequestItem) error {
	if m.SaveItemFn != nil {
		return m.SaveItemFn(ctx, it)
	}
	return nil
}

func (m *Repo) DeleteItem(ctx context.Context, itemID uint64) error {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, itemID)
	}
	return nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.BorrowRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListByStudent(ctx context.Context, studentID string) ([]domain.BorrowRequest, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (m *Repo) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.FlatItem, error) {
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) OnLoanQuantities(ctx context.Context) (map[string]int, error) {
	if m.OnLoanQuantitiesFn != nil {
		return m.OnLoanQuantitiesFn(ctx)
	}
	return map[string]int{}, nil
}
