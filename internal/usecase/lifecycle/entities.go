package lifecycle

import (
	"time"

	"github.com/Yughie/Phylab-System/internal/domain/request"
)

// ItemUpdate is one element of an update batch. Nil fields are left
// untouched (partial patch); an unknown ItemID is skipped, not an error.
type ItemUpdate struct {
	ItemID          uint64          `json:"id"`
	Status          *request.Status `json:"status,omitempty"`
	Quantity        *int            `json:"quantity,omitempty"`
	AdminRemark     *string         `json:"admin_remark,omitempty"`
	RemarkType      *string         `json:"remark_type,omitempty"`
	RemarkCreatedAt *time.Time      `json:"remark_created_at,omitempty"`
}

// UpdateResult carries the updated source request plus any loan records the
// batch materialized.
type UpdateResult struct {
	Request      *request.BorrowRequest   `json:"request"`
	CreatedLoans []*request.BorrowRequest `json:"created_loans"`
}
