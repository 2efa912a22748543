package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

const uniqueActiveAgreementIndex = "unique_active_agreement"

// AgreementRepository реализует хранилище соглашений в PostgreSQL.
type AgreementRepository struct {
	queries *database.Queries
}

// NewAgreementRepository создает новый экземпляр AgreementRepository.
func NewAgreementRepository(queries *database.Queries) domain.AgreementRepository {
	return &AgreementRepository{
		queries: queries,
	}
}

func toDomainAgreement(a database.Agreement) *domain.Agreement {
	agreement := &domain.Agreement{
		ID:                a.ID,
		PartyAID:          a.PartyAID,
		PartyBID:          a.PartyBID,
		SkillAID:          a.SkillAID,
		SkillBID:          a.SkillBID,
		Weeks:             a.Weeks,
		MinutesPerSession: a.MinutesPerSession,
		SessionsPerWeek:   a.SessionsPerWeek,
		Conditions:        a.Conditions,
		State:             domain.AgreementState(a.State),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	// Конвертируем NullInt64 → *int64
	if a.PostingID.Valid {
		postingID := a.PostingID.Int64
		agreement.PostingID = &postingID
	}
	return agreement
}

// Create сохраняет соглашение в состоянии PROPOSED.
// Гонка двух одинаковых предложений разрешается частичным уникальным индексом.
func (r *AgreementRepository) Create(ctx context.Context, agreement *domain.Agreement) error {
	params := database.CreateAgreementParams{
		PartyAID:          agreement.PartyAID,
		PartyBID:          agreement.PartyBID,
		SkillAID:          agreement.SkillAID,
		SkillBID:          agreement.SkillBID,
		Weeks:             agreement.Weeks,
		MinutesPerSession: agreement.MinutesPerSession,
		SessionsPerWeek:   agreement.SessionsPerWeek,
		Conditions:        agreement.Conditions,
	}
	if agreement.PostingID != nil {
		params.PostingID = sql.NullInt64{Int64: *agreement.PostingID, Valid: true}
	}

	dbAgreement, err := r.queries.CreateAgreement(ctx, params)
	if err != nil {
		return translateAgreementWriteErr(err)
	}

	*agreement = *toDomainAgreement(dbAgreement)
	return nil
}

func translateAgreementWriteErr(err error) error {
	if pgErr, ok := isUniqueViolation(err); ok && pgErr.ConstraintName == uniqueActiveAgreementIndex {
		return domain.ErrDuplicateActiveAgreement
	}
	if _, ok := isCheckViolation(err); ok {
		return domain.ErrInvalidAgreement
	}
	if pgErr, ok := isForeignKeyViolation(err); ok {
		switch {
		case strings.Contains(pgErr.ConstraintName, "party"):
			return domain.ErrUserNotFound
		case strings.Contains(pgErr.ConstraintName, "posting"):
			return domain.ErrPostingNotFound
		default:
			return domain.ErrSkillNotFound
		}
	}
	return fmt.Errorf("failed to create agreement: %w", err)
}

// GetByID возвращает соглашение по ID.
func (r *AgreementRepository) GetByID(ctx context.Context, agreementID int64) (*domain.Agreement, error) {
	dbAgreement, err := r.queries.GetAgreementByID(ctx, agreementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("failed to get agreement: %w", err)
	}

	return toDomainAgreement(dbAgreement), nil
}

// ExistsActive проверяет наличие активного соглашения для кортежа сторон и навыков.
func (r *AgreementRepository) ExistsActive(ctx context.Context, partyAID, partyBID, skillAID, skillBID int64) (bool, error) {
	count, err := r.queries.ActiveAgreementExists(ctx, database.ActiveAgreementExistsParams{
		PartyAID: partyAID,
		PartyBID: partyBID,
		SkillAID: skillAID,
		SkillBID: skillBID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check active agreement: %w", err)
	}

	return count > 0, nil
}

// ListByUser возвращает соглашения, где пользователь является любой из сторон.
func (r *AgreementRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Agreement, error) {
	dbAgreements, err := r.queries.ListAgreementsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}

	agreements := make([]*domain.Agreement, 0, len(dbAgreements))
	for _, a := range dbAgreements {
		agreements = append(agreements, toDomainAgreement(a))
	}

	return agreements, nil
}

// UpdateState меняет состояние только если текущее состояние равно from (compare-and-set).
// Если строка не обновлена, возвращается ErrStateConflict: вызывающий перечитывает соглашение.
func (r *AgreementRepository) UpdateState(ctx context.Context, agreementID int64, from, to domain.AgreementState) (*domain.Agreement, error) {
	dbAgreement, err := r.queries.UpdateAgreementState(ctx, database.UpdateAgreementStateParams{
		ToState:   string(to),
		ID:        agreementID,
		FromState: string(from),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStateConflict
		}
		if pgErr, ok := isUniqueViolation(err); ok && pgErr.ConstraintName == uniqueActiveAgreementIndex {
			return nil, domain.ErrDuplicateActiveAgreement
		}
		return nil, fmt.Errorf("failed to update agreement state: %w", err)
	}

	return toDomainAgreement(dbAgreement), nil
}

// Delete удаляет соглашение вместе с его сессиями.
func (r *AgreementRepository) Delete(ctx context.Context, agreementID int64) error {
	affected, err := r.queries.DeleteAgreement(ctx, agreementID)
	if err != nil {
		return fmt.Errorf("failed to delete agreement: %w", err)
	}
	if affected == 0 {
		return domain.ErrAgreementNotFound
	}

	return nil
}
