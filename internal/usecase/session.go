package usecase

import (
	"context"
	"strings"
	"time"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/metrics"
	"skillswap-service/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// SessionUseCase реализует планировщик сессий соглашения.
type SessionUseCase struct {
	sessionRepo   domain.SessionRepository
	agreementRepo domain.AgreementRepository
	now           func() time.Time
}

// NewSessionUseCase создает новый экземпляр SessionUseCase. now задает серверные часы.
func NewSessionUseCase(
	sessionRepo domain.SessionRepository,
	agreementRepo domain.AgreementRepository,
	now func() time.Time,
) domain.SessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &SessionUseCase{
		sessionRepo:   sessionRepo,
		agreementRepo: agreementRepo,
		now:           now,
	}
}

// CreateSession планирует сессию в соглашении со статусом ONGOING.
// Репозиторий повторно проверяет статус под блокировкой строки соглашения.
func (uc *SessionUseCase) CreateSession(ctx context.Context, agreementID int64, input domain.SessionInput) (_ *domain.Session, err error) {
	ctx, span := telemetry.StartSpan(ctx, "session.create",
		attribute.Int64("agreement.id", agreementID),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	agreement, err := uc.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		return nil, err
	}

	input.Summary = strings.TrimSpace(input.Summary)
	if err := domain.ValidateSession(agreement, input, uc.now()); err != nil {
		return nil, err
	}

	session := &domain.Session{
		AgreementID:     agreement.ID,
		Date:            domain.DateOnly(input.Date),
		DurationMinutes: input.DurationMinutes,
		Summary:         input.Summary,
		AttendanceA:     input.AttendanceA,
		AttendanceB:     input.AttendanceB,
		IsActive:        input.IsActive,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	metrics.SessionsScheduled.Inc()
	return session, nil
}

// UpdateSession перезаписывает поля сессии, заново проверяя все правила.
func (uc *SessionUseCase) UpdateSession(ctx context.Context, sessionID int64, input domain.SessionInput) (*domain.Session, error) {
	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	agreement, err := uc.agreementRepo.GetByID(ctx, session.AgreementID)
	if err != nil {
		return nil, err
	}

	input.Summary = strings.TrimSpace(input.Summary)
	if err := domain.ValidateSession(agreement, input, uc.now()); err != nil {
		return nil, err
	}

	session.Date = domain.DateOnly(input.Date)
	session.DurationMinutes = input.DurationMinutes
	session.Summary = input.Summary
	session.AttendanceA = input.AttendanceA
	session.AttendanceB = input.AttendanceB
	session.IsActive = input.IsActive

	return uc.sessionRepo.Update(ctx, session)
}

// GetSession возвращает сессию по ID.
func (uc *SessionUseCase) GetSession(ctx context.Context, sessionID int64) (*domain.Session, error) {
	return uc.sessionRepo.GetByID(ctx, sessionID)
}

// ListAgreementSessions возвращает сессии соглашения.
func (uc *SessionUseCase) ListAgreementSessions(ctx context.Context, agreementID int64) ([]*domain.Session, error) {
	if _, err := uc.agreementRepo.GetByID(ctx, agreementID); err != nil {
		return nil, err
	}
	return uc.sessionRepo.ListByAgreement(ctx, agreementID)
}

// ListUserSessions возвращает сессии всех соглашений пользователя.
func (uc *SessionUseCase) ListUserSessions(ctx context.Context, userID int64) ([]*domain.Session, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}
	return uc.sessionRepo.ListByUser(ctx, userID)
}
