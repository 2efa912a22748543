package domain

import (
	"context"
	"time"
)

// Session представляет одну встречу в рамках соглашения в статусе ONGOING.
type Session struct {
	ID              int64
	AgreementID     int64
	Date            time.Time
	DurationMinutes int32
	Summary         string
	AttendanceA     bool
	AttendanceB     bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SessionInput изменяемые поля сессии.
type SessionInput struct {
	Date            time.Time
	DurationMinutes int32
	Summary         string
	AttendanceA     bool
	AttendanceB     bool
	IsActive        bool
}

// SessionRepository определяет контракт для работы с хранилищем сессий.
// Create и Update блокируют строку соглашения и повторно проверяют, что оно ONGOING.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) (*Session, error)
	GetByID(ctx context.Context, sessionID int64) (*Session, error)
	ListByAgreement(ctx context.Context, agreementID int64) ([]*Session, error)
	ListByUser(ctx context.Context, userID int64) ([]*Session, error)
}
