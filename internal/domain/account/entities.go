package account

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateIDNo  = errors.New("id number already registered")
)

type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName     string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	IDNumber     string    `gorm:"column:id_number;size:50;not null;uniqueIndex:ux_users_id_number" json:"id_number"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	IsStudent    bool      `gorm:"column:is_student;not null;default:true" json:"is_student"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
