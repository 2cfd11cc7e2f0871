package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *BorrowRequest) error
	GetByID(ctx context.Context, id uint64) (*BorrowRequest, error)
	GetByRequestID(ctx context.Context, requestID string) (*BorrowRequest, error)

	// Resolve tries numeric-id lookup first, then request_id; ErrNotFound
	// only when both miss. ResolveForUpdate additionally locks the row.
	Resolve(ctx context.Context, ref Ref) (*BorrowRequest, error)
	ResolveForUpdate(ctx context.Context, ref Ref) (*BorrowRequest, error)

	// Save persists the request row only, never its item association.
	Save(ctx context.Context, r *BorrowRequest) error
	SaveItem(ctx context.Context, it *BorrowRequestItem) error
	DeleteItem(ctx context.Context, itemID uint64) error

	ListByStatus(ctx context.Context, s Status) ([]BorrowRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]BorrowRequest, error)

	// ListItems feeds the history projection.
	ListItems(ctx context.Context, f ItemFilter) ([]FlatItem, error)

	// OnLoanQuantities sums quantities of active-loan items per item_key,
	// for reconciling catalog stock against what is currently out.
	OnLoanQuantities(ctx context.Context) (map[string]int, error)
}
