package account

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDNumber(ctx context.Context, idNumber string) (*User, error)
	ListStudents(ctx context.Context) ([]User, error)
}
