package accountmock

import (
	"context"

	domain "github.com/Yughie/Phylab-System/internal/domain/account"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, u *domain.User) error
	GetByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	GetByIDNumFn   func(ctx context.Context, idNumber string) (*domain.User, error)
	ListStudentsFn func(ctx context.Context) ([]domain.User, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDNumber(ctx context.Context, idNumber string) (*domain.User, error) {
	if m.GetByIDNumFn != nil {
		return m.GetByIDNumFn(ctx, idNumber)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListStudents(ctx context.Context) ([]domain.User, error) {
	if m.ListStudentsFn != nil {
		return m.ListStudentsFn(ctx)
	}
	return nil, nil
}
