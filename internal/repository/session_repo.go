package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// SessionRepository реализует хранилище сессий в PostgreSQL.
type SessionRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewSessionRepository создает новый экземпляр SessionRepository.
func NewSessionRepository(db *sql.DB, queries *database.Queries) domain.SessionRepository {
	return &SessionRepository{
		db:      db,
		queries: queries,
	}
}

func toDomainSession(s database.Session) *domain.Session {
	return &domain.Session{
		ID:              s.ID,
		AgreementID:     s.AgreementID,
		Date:            s.Date,
		DurationMinutes: s.DurationMinutes,
		Summary:         s.Summary,
		AttendanceA:     s.AttendanceA,
		AttendanceB:     s.AttendanceB,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// lockOngoingAgreement берет разделяемую блокировку строки соглашения до конца транзакции
// и проверяет, что соглашение в состоянии ONGOING. Переход из ONGOING ждет коммита.
func lockOngoingAgreement(ctx context.Context, q *database.Queries, agreementID int64) error {
	state, err := q.LockAgreementState(ctx, agreementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAgreementNotFound
		}
		return fmt.Errorf("failed to lock agreement: %w", err)
	}
	if domain.AgreementState(state) != domain.AgreementStateOngoing {
		return domain.ErrAgreementNotOngoing
	}
	return nil
}

// Create создает сессию, если соглашение все еще ONGOING.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Блокируем соглашение и проверяем состояние
	if err = lockOngoingAgreement(ctx, txQueries, session.AgreementID); err != nil {
		return err
	}

	// 2. Создаем сессию
	var dbSession database.Session
	dbSession, err = txQueries.CreateSession(ctx, database.CreateSessionParams{
		AgreementID:     session.AgreementID,
		Date:            session.Date,
		DurationMinutes: session.DurationMinutes,
		Summary:         session.Summary,
		AttendanceA:     session.AttendanceA,
		AttendanceB:     session.AttendanceB,
		IsActive:        session.IsActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	*session = *toDomainSession(dbSession)
	return nil
}

// Update перезаписывает поля сессии, если соглашение все еще ONGOING.
func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	if err = lockOngoingAgreement(ctx, txQueries, session.AgreementID); err != nil {
		return nil, err
	}

	var dbSession database.Session
	dbSession, err = txQueries.UpdateSession(ctx, database.UpdateSessionParams{
		ID:              session.ID,
		Date:            session.Date,
		DurationMinutes: session.DurationMinutes,
		Summary:         session.Summary,
		AttendanceA:     session.AttendanceA,
		AttendanceB:     session.AttendanceB,
		IsActive:        session.IsActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrSessionNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toDomainSession(dbSession), nil
}

// GetByID возвращает сессию по ID.
func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*domain.Session, error) {
	dbSession, err := r.queries.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return toDomainSession(dbSession), nil
}

// ListByAgreement возвращает сессии соглашения в хронологическом порядке.
func (r *SessionRepository) ListByAgreement(ctx context.Context, agreementID int64) ([]*domain.Session, error) {
	dbSessions, err := r.queries.ListSessionsByAgreement(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreement sessions: %w", err)
	}

	return toDomainSessions(dbSessions), nil
}

// ListByUser возвращает сессии всех соглашений пользователя.
func (r *SessionRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Session, error) {
	dbSessions, err := r.queries.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user sessions: %w", err)
	}

	return toDomainSessions(dbSessions), nil
}

func toDomainSessions(dbSessions []database.Session) []*domain.Session {
	sessions := make([]*domain.Session, 0, len(dbSessions))
	for _, s := range dbSessions {
		sessions = append(sessions, toDomainSession(s))
	}
	return sessions
}
