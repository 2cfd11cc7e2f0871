package request

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("borrow request not found")
	ErrEmptyBatch    = errors.New("update batch is empty")
	ErrInvalidStatus = errors.New("invalid status value")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusBorrowed, StatusReturned:
		return true
	}
	return false
}

// ActiveLoan reports whether the status represents an item that is out on
// loan. approved and borrowed are equivalent for this purpose: an item may
// be set straight to borrowed without ever being approved.
func (s Status) ActiveLoan() bool {
	return s == StatusApproved || s == StatusBorrowed
}

type BorrowRequest struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Public identifier; loan records derive theirs from the source request
	RequestID   string    `gorm:"column:request_id;size:64;not null;uniqueIndex:ux_borrow_requests_request_id" json:"request_id"`
	StudentName string    `gorm:"column:student_name;size:255" json:"student_name"`
	StudentID   string    `gorm:"column:student_id;size:50;index:idx_borrow_requests_student" json:"student_id"`
	Email       string    `gorm:"column:email;size:255" json:"email"`
	TeacherName string    `gorm:"column:teacher_name;size:255" json:"teacher_name"`
	Purpose     string    `gorm:"column:purpose;type:text" json:"purpose"`
	BorrowDate  time.Time `gorm:"column:borrow_date;type:date" json:"borrow_date"`
	ReturnDate  time.Time `gorm:"column:return_date;type:date" json:"return_date"`
	Status      Status    `gorm:"column:status;size:20;not null;default:'pending';index:idx_borrow_requests_status" json:"status"`
	AdminRemark string    `gorm:"column:admin_remark;type:text" json:"admin_remark,omitempty"`
	RemarkType  string    `gorm:"column:remark_type;size:50" json:"remark_type,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items []BorrowRequestItem `gorm:"foreignKey:BorrowRequestID;constraint:OnDelete:CASCADE" json:"items"`
}

func (BorrowRequest) TableName() string { return "borrow_requests" }

type BorrowRequestItem struct {
	ID              uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BorrowRequestID uint64 `gorm:"column:borrow_request_id;not null;index" json:"-"`
	ItemName        string `gorm:"column:item_name;size:255;not null" json:"item_name"`
	// Loose reference into the inventory catalog; the catalog row may be gone
	ItemKey         string     `gorm:"column:item_key;size:100;index" json:"item_key"`
	Quantity        int        `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Status          Status     `gorm:"column:status;size:20;not null;default:'pending';index" json:"status"`
	AdminRemark     string     `gorm:"column:admin_remark;type:text" json:"admin_remark,omitempty"`
	RemarkType      string     `gorm:"column:remark_type;size:50" json:"remark_type,omitempty"`
	RemarkCreatedAt *time.Time `gorm:"column:remark_created_at" json:"remark_created_at,omitempty"`
	ItemImage       string     `gorm:"column:item_image;type:text" json:"item_image,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BorrowRequestItem) TableName() string { return "borrow_request_items" }

// FlatItem is the history projection: one line item joined with its parent
// request's context. Read-only, recomputed per query.
type FlatItem struct {
	ItemID          uint64     `json:"item_id"`
	RequestID       string     `json:"request_id"`
	RequestStatus   Status     `json:"request_status"`
	StudentName     string     `json:"student_name"`
	StudentID       string     `json:"student_id"`
	Email           string     `json:"email"`
	TeacherName     string     `json:"teacher_name"`
	Purpose         string     `json:"purpose"`
	BorrowDate      time.Time  `json:"borrow_date"`
	ReturnDate      time.Time  `json:"return_date"`
	ItemName        string     `json:"item_name"`
	ItemKey         string     `json:"item_key"`
	Quantity        int        `json:"quantity"`
	Status          Status     `json:"status"`
	AdminRemark     string     `json:"admin_remark,omitempty"`
	RemarkType      string     `json:"remark_type,omitempty"`
	RemarkCreatedAt *time.Time `json:"remark_created_at,omitempty"`
	ItemImage       string     `json:"item_image,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ItemFilter narrows ListItems; zero values mean "no filter".
type ItemFilter struct {
	Status    Status
	StudentID string
}
