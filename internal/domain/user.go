package domain

import (
	"context"
	"time"
)

// User представляет сущность пользователя в системе.
type User struct {
	ID           int64
	Username     string
	Alias        string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// NewUser содержит данные для регистрации пользователя через REST.
type NewUser struct {
	Username  string
	Alias     string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateActiveStatus(ctx context.Context, userID int64, isActive bool) (*User, error)
	Delete(ctx context.Context, userID int64) error
}
