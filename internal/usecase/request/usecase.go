package request

import (
	"context"
	"errors"
	"time"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/pkg/id"
)

var ErrNoItems = errors.New("a borrow request needs at least one item")

type Usecase struct{ repo requestDomain.Repository }

func NewUsecase(r requestDomain.Repository) *Usecase { return &Usecase{repo: r} }

type SubmitItemInput struct {
	ItemName  string `json:"item_name"`
	ItemKey   string `json:"item_key"`
	Quantity  int    `json:"quantity"`
	ItemImage string `json:"item_image"`
}

type SubmitInput struct {
	RequestID   string            `json:"request_id"`
	StudentName string            `json:"student_name"`
	StudentID   string            `json:"student_id"`
	Email       string            `json:"email"`
	TeacherName string            `json:"teacher_name"`
	Purpose     string            `json:"purpose"`
	BorrowDate  time.Time         `json:"borrow_date"`
	ReturnDate  time.Time         `json:"return_date"`
	Items       []SubmitItemInput `json:"items"`
}

// Submit creates a pending borrow request with its items. The caller may
// supply a request_id; otherwise one is generated.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*requestDomain.BorrowRequest, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	requestID := in.RequestID
	if requestID == "" {
		requestID = id.NewRequestID()
	}

	req := &requestDomain.BorrowRequest{
		RequestID:   requestID,
		StudentName: in.StudentName,
		StudentID:   in.StudentID,
		Email:       in.Email,
		TeacherName: in.TeacherName,
		Purpose:     in.Purpose,
		BorrowDate:  in.BorrowDate,
		ReturnDate:  in.ReturnDate,
		Status:      requestDomain.StatusPending,
	}
	for _, it := range in.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		req.Items = append(req.Items, requestDomain.BorrowRequestItem{
			ItemName:  it.ItemName,
			ItemKey:   it.ItemKey,
			Quantity:  qty,
			Status:    requestDomain.StatusPending,
			ItemImage: it.ItemImage,
		})
	}
	if err := u.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (u *Usecase) Get(ctx context.Context, ref requestDomain.Ref) (*requestDomain.BorrowRequest, error) {
	return u.repo.Resolve(ctx, ref)
}

func (u *Usecase) ListByStatus(ctx context.Context, s requestDomain.Status) ([]requestDomain.BorrowRequest, error) {
	if !s.Valid() {
		return nil, requestDomain.ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, s)
}

func (u *Usecase) ListByStudent(ctx context.Context, studentID string) ([]requestDomain.BorrowRequest, error) {
	return u.repo.ListByStudent(ctx, studentID)
}
