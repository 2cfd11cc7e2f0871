package lifecycle

import (
	"context"
	"time"

	"github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/domain/uow"
	"github.com/Yughie/Phylab-System/pkg/id"
)

// Usecase is the borrow-request lifecycle engine. Item-level transitions,
// the approval split and the aggregate rollup all run inside a single
// transaction on the locked request row.
type Usecase struct {
	repo request.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo request.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

// Get resolves a request by numeric id or public request_id (numeric first).
func (u *Usecase) Get(ctx context.Context, ref request.Ref) (*request.BorrowRequest, error) {
	return u.repo.Resolve(ctx, ref)
}

// ApplyItemStatusUpdates patches the referenced items, splits items that
// newly entered an active-loan state into a fresh loan record, and rolls
// the aggregate status from borrowed to returned once every remaining item
// has come back.
func (u *Usecase) ApplyItemStatusUpdates(ctx context.Context, ref request.Ref, updates []ItemUpdate) (*UpdateResult, error) {
	if len(updates) == 0 {
		return nil, request.ErrEmptyBatch
	}
	for _, up := range updates {
		if up.Status != nil && !up.Status.Valid() {
			return nil, request.ErrInvalidStatus
		}
	}

	var result UpdateResult
	err := u.uow.WithinRequestTx(ctx, ref, func(r uow.Repos, req *request.BorrowRequest) error {
		var newlyActive []int // indexes into req.Items
		for _, up := range updates {
			i := findItem(req.Items, up.ItemID)
			if i < 0 {
				continue // stale client payloads reference items that split away
			}
			it := &req.Items[i]
			oldStatus := it.Status
			patchItem(it, up)
			// Edge-triggered: only a transition INTO the active-loan set
			// materializes a loan. Re-saving an already-active item (e.g. a
			// quantity edit while approved) must not split again.
			if up.Status != nil && !oldStatus.ActiveLoan() && it.Status.ActiveLoan() {
				newlyActive = append(newlyActive, i)
			}
			if err := r.Requests.SaveItem(ctx, it); err != nil {
				return err
			}
		}

		// A later update in the same batch may have moved an item out of the
		// active set again (approved then rejected); only items still active
		// after the whole batch belong in the ledger.
		stillActive := newlyActive[:0]
		for _, i := range newlyActive {
			if req.Items[i].Status.ActiveLoan() {
				stillActive = append(stillActive, i)
			}
		}
		if len(stillActive) > 0 {
			loan, err := u.split(ctx, r, req, stillActive)
			if err != nil {
				return err
			}
			result.CreatedLoans = append(result.CreatedLoans, loan)
		}

		rollupReturned(req)
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		result.Request = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// split materializes the items at the given indexes into a new loan record
// and removes them from the source request, so one physical loan is never
// represented twice.
func (u *Usecase) split(ctx context.Context, r uow.Repos, req *request.BorrowRequest, idxs []int) (*request.BorrowRequest, error) {
	loan := &request.BorrowRequest{
		RequestID:   id.NewLoanRef(req.RequestID),
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Email:       req.Email,
		TeacherName: req.TeacherName,
		Purpose:     req.Purpose,
		BorrowDate:  req.BorrowDate,
		ReturnDate:  req.ReturnDate,
		Status:      request.StatusBorrowed,
	}
	for _, i := range idxs {
		src := req.Items[i]
		loan.Items = append(loan.Items, request.BorrowRequestItem{
			ItemName:        src.ItemName,
			ItemKey:         src.ItemKey,
			Quantity:        src.Quantity,
			Status:          request.StatusBorrowed,
			AdminRemark:     src.AdminRemark,
			RemarkType:      src.RemarkType,
			RemarkCreatedAt: src.RemarkCreatedAt,
			ItemImage:       src.ItemImage,
		})
	}
	if err := r.Requests.Create(ctx, loan); err != nil {
		return nil, err
	}
	for _, i := range idxs {
		if err := r.Requests.DeleteItem(ctx, req.Items[i].ID); err != nil {
			return nil, err
		}
	}

	moved := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		moved[i] = true
	}
	kept := req.Items[:0]
	for i := range req.Items {
		if !moved[i] {
			kept = append(kept, req.Items[i])
		}
	}
	req.Items = kept
	return loan, nil
}

// rollupReturned derives the only automatic aggregate transition: a
// borrowed request whose remaining items have all come back is returned.
// pending/approved/rejected aggregates are set exclusively by the explicit
// whole-request operations below; that asymmetry is intentional.
func rollupReturned(req *request.BorrowRequest) {
	if req.Status != request.StatusBorrowed || len(req.Items) == 0 {
		return
	}
	for i := range req.Items {
		if req.Items[i].Status != request.StatusReturned {
			return
		}
	}
	req.Status = request.StatusReturned
}

func findItem(items []request.BorrowRequestItem, itemID uint64) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func patchItem(it *request.BorrowRequestItem, up ItemUpdate) {
	if up.Status != nil {
		it.Status = *up.Status
	}
	if up.Quantity != nil {
		it.Quantity = *up.Quantity
	}
	if up.AdminRemark != nil {
		it.AdminRemark = *up.AdminRemark
		if up.RemarkCreatedAt == nil {
			now := time.Now().UTC()
			it.RemarkCreatedAt = &now
		}
	}
	if up.RemarkType != nil {
		it.RemarkType = *up.RemarkType
	}
	if up.RemarkCreatedAt != nil {
		it.RemarkCreatedAt = up.RemarkCreatedAt
	}
}

// Approve forces the aggregate status to borrowed. Legacy single-decision
// path: no item changes, no loan record.
func (u *Usecase) Approve(ctx context.Context, ref request.Ref) (*request.BorrowRequest, error) {
	return u.force(ctx, ref, func(req *request.BorrowRequest) {
		req.Status = request.StatusBorrowed
	})
}

// Reject forces the aggregate status to rejected, optionally attaching an
// admin remark.
func (u *Usecase) Reject(ctx context.Context, ref request.Ref, remark, remarkType string) (*request.BorrowRequest, error) {
	return u.force(ctx, ref, func(req *request.BorrowRequest) {
		req.Status = request.StatusRejected
		if remark != "" {
			req.AdminRemark = remark
		}
		if remarkType != "" {
			req.RemarkType = remarkType
		}
	})
}

// MarkReturned forces the aggregate status to returned.
func (u *Usecase) MarkReturned(ctx context.Context, ref request.Ref) (*request.BorrowRequest, error) {
	return u.force(ctx, ref, func(req *request.BorrowRequest) {
		req.Status = request.StatusReturned
	})
}

func (u *Usecase) force(ctx context.Context, ref request.Ref, mutate func(*request.BorrowRequest)) (*request.BorrowRequest, error) {
	var out *request.BorrowRequest
	err := u.uow.WithinRequestTx(ctx, ref, func(r uow.Repos, req *request.BorrowRequest) error {
		mutate(req)
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListCurrentlyBorrowed returns requests whose aggregate status is borrowed,
// i.e. the loan ledger plus anything force-approved via Approve.
func (u *Usecase) ListCurrentlyBorrowed(ctx context.Context) ([]request.BorrowRequest, error) {
	return u.repo.ListByStatus(ctx, request.StatusBorrowed)
}
