package mysql

import (
	"context"
	"errors"

	accountDomain "github.com/Yughie/Phylab-System/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, u *accountDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*accountDomain.User, error) {
	var out accountDomain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, accountDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountRepository) GetByIDNumber(ctx context.Context, idNumber string) (*accountDomain.User, error) {
	var out accountDomain.User
	err := r.db.WithContext(ctx).Where("id_number = ?", idNumber).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, accountDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountRepository) ListStudents(ctx context.Context) ([]accountDomain.User, error) {
	var out []accountDomain.User
	err := r.db.WithContext(ctx).
		Where("is_student = ?", true).
		Order("full_name ASC").
		Find(&out).Error
	return out, err
}
