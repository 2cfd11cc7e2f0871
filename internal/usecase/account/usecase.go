package account

import (
	"context"
	"errors"
	"strings"

	accountDomain "github.com/Yughie/Phylab-System/internal/domain/account"

	"golang.org/x/crypto/bcrypt"
)

type Usecase struct{ repo accountDomain.Repository }

func NewUsecase(r accountDomain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FullName string `json:"full_name"`
	IDNumber string `json:"id_number"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a student account with a bcrypt-hashed password.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*accountDomain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil, accountDomain.ErrDuplicateEmail
	} else if !errors.Is(err, accountDomain.ErrNotFound) {
		return nil, err
	}
	if _, err := u.repo.GetByIDNumber(ctx, in.IDNumber); err == nil {
		return nil, accountDomain.ErrDuplicateIDNo
	} else if !errors.Is(err, accountDomain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &accountDomain.User{
		FullName:     in.FullName,
		IDNumber:     in.IDNumber,
		Email:        email,
		PasswordHash: string(hash),
		IsStudent:    true,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *Usecase) ListStudents(ctx context.Context) ([]accountDomain.User, error) {
	return u.repo.ListStudents(ctx)
}
