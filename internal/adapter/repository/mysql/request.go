package mysql

import (
	"context"
	"errors"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

// forUpdate adds a row lock on dialects that support it. sqlite (tests) has
// no FOR UPDATE; its single-writer model serializes the transaction anyway.
func (r *RequestRepository) forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func withItems(tx *gorm.DB) *gorm.DB {
	// items are an ordered-by-creation collection
	return tx.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

func (r *RequestRepository) Create(ctx context.Context, req *requestDomain.BorrowRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint64) (*requestDomain.BorrowRequest, error) {
	var out requestDomain.BorrowRequest
	res := withItems(r.db.WithContext(ctx)).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.BorrowRequest, error) {
	var out requestDomain.BorrowRequest
	res := withItems(r.db.WithContext(ctx)).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) Resolve(ctx context.Context, ref requestDomain.Ref) (*requestDomain.BorrowRequest, error) {
	return r.resolve(ctx, ref, false)
}

func (r *RequestRepository) ResolveForUpdate(ctx context.Context, ref requestDomain.Ref) (*requestDomain.BorrowRequest, error) {
	return r.resolve(ctx, ref, true)
}

func (r *RequestRepository) resolve(ctx context.Context, ref requestDomain.Ref, lock bool) (*requestDomain.BorrowRequest, error) {
	// numeric key first, request_id as fallback
	if ref.ID != 0 {
		out, err := r.lookup(ctx, lock, "id = ?", ref.ID)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if ref.RequestID != "" {
		out, err := r.lookup(ctx, lock, "request_id = ?", ref.RequestID)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, requestDomain.ErrNotFound
}

// lookup builds a fresh query chain per attempt: a *gorm.DB that already ran
// First carries the finished statement and its error, so reusing it would
// poison the fallback.
func (r *RequestRepository) lookup(ctx context.Context, lock bool, query string, arg any) (*requestDomain.BorrowRequest, error) {
	tx := r.db.WithContext(ctx)
	if lock {
		tx = r.forUpdate(tx)
	}
	var out requestDomain.BorrowRequest
	if err := withItems(tx).Where(query, arg).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RequestRepository) Save(ctx context.Context, req *requestDomain.BorrowRequest) error {
	// Omit the association: item rows are managed explicitly (SaveItem /
	// DeleteItem), and a blanket Save would resurrect items deleted by a split.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(req).Error
}

func (r *RequestRepository) SaveItem(ctx context.Context, it *requestDomain.BorrowRequestItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *RequestRepository) DeleteItem(ctx context.Context, itemID uint64) error {
	return r.db.WithContext(ctx).Delete(&requestDomain.BorrowRequestItem{}, itemID).Error
}

func (r *RequestRepository) ListByStatus(ctx context.Context, s requestDomain.Status) ([]requestDomain.BorrowRequest, error) {
	var out []requestDomain.BorrowRequest
	err := withItems(r.db.WithContext(ctx)).
		Where("status = ?", s).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) ListByStudent(ctx context.Context, studentID string) ([]requestDomain.BorrowRequest, error) {
	var out []requestDomain.BorrowRequest
	err := withItems(r.db.WithContext(ctx)).
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) ListItems(ctx context.Context, f requestDomain.ItemFilter) ([]requestDomain.FlatItem, error) {
	q := r.db.WithContext(ctx).
		Table("borrow_request_items AS i").
		Select(`i.id AS item_id,
			r.request_id, r.status AS request_status,
			r.student_name, r.student_id, r.email, r.teacher_name, r.purpose,
			r.borrow_date, r.return_date,
			i.item_name, i.item_key, i.quantity, i.status,
			i.admin_remark, i.remark_type, i.remark_created_at, i.item_image,
			i.created_at`).
		Joins("JOIN borrow_requests AS r ON r.id = i.borrow_request_id").
		Order("i.id DESC")
	if f.Status != "" {
		q = q.Where("i.status = ?", f.Status)
	}
	if f.StudentID != "" {
		q = q.Where("r.student_id = ?", f.StudentID)
	}
	var out []requestDomain.FlatItem
	err := q.Scan(&out).Error
	return out, err
}

func (r *RequestRepository) OnLoanQuantities(ctx context.Context) (map[string]int, error) {
	type row struct {
		ItemKey string
		Total   int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("borrow_request_items").
		Select("item_key, SUM(quantity) AS total").
		Where("status IN ?", []requestDomain.Status{requestDomain.StatusApproved, requestDomain.StatusBorrowed}).
		Group("item_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, rw := range rows {
		out[rw.ItemKey] = rw.Total
	}
	return out, nil
}
