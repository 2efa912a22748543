package usecase

import (
	"context"
	"errors"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/metrics"
	"skillswap-service/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// maxTransitionAttempts ограничивает перечитывания после проигранного compare-and-set.
const maxTransitionAttempts = 3

// AgreementUseCase реализует машину состояний соглашений.
type AgreementUseCase struct {
	agreementRepo domain.AgreementRepository
	userRepo      domain.UserRepository
	skillRepo     domain.SkillRepository
	postingRepo   domain.PostingRepository
}

// NewAgreementUseCase создает новый экземпляр AgreementUseCase.
func NewAgreementUseCase(
	agreementRepo domain.AgreementRepository,
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	postingRepo domain.PostingRepository,
) domain.AgreementUseCase {
	return &AgreementUseCase{
		agreementRepo: agreementRepo,
		userRepo:      userRepo,
		skillRepo:     skillRepo,
		postingRepo:   postingRepo,
	}
}

// CreateAgreement создает соглашение в состоянии PROPOSED.
func (uc *AgreementUseCase) CreateAgreement(ctx context.Context, input domain.AgreementInput) (_ *domain.Agreement, err error) {
	ctx, span := telemetry.StartSpan(ctx, "agreement.create",
		attribute.Int64("agreement.party_b", input.PartyBID),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	// 1. Публикация задает сторону A и ее навык, если они не указаны явно
	if input.PostingID != nil {
		posting, err := uc.postingRepo.GetByID(ctx, *input.PostingID)
		if err != nil {
			return nil, err
		}
		applyPostingDefaults(&input, posting)
	}

	// 2. Инварианты
	domain.ApplyAgreementDefaults(&input)
	if err := domain.ValidateAgreement(input); err != nil {
		return nil, err
	}

	// 3. Стороны и навыки должны существовать
	for _, userID := range []int64{input.PartyAID, input.PartyBID} {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			return nil, err
		}
	}
	for _, skillID := range []int64{input.SkillAID, input.SkillBID} {
		if _, err := uc.skillRepo.GetByID(ctx, skillID); err != nil {
			return nil, err
		}
	}

	// 4. Предварительная проверка уникальности; гонку закрывает индекс в БД
	exists, err := uc.agreementRepo.ExistsActive(ctx, input.PartyAID, input.PartyBID, input.SkillAID, input.SkillBID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateActiveAgreement
	}

	agreement := &domain.Agreement{
		PartyAID:          input.PartyAID,
		PartyBID:          input.PartyBID,
		SkillAID:          input.SkillAID,
		SkillBID:          input.SkillBID,
		Weeks:             input.Weeks,
		MinutesPerSession: input.MinutesPerSession,
		SessionsPerWeek:   input.SessionsPerWeek,
		Conditions:        input.Conditions,
		State:             domain.AgreementStateProposed,
		PostingID:         input.PostingID,
	}
	if err := uc.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, err
	}

	metrics.AgreementsCreated.Inc()
	span.SetAttributes(attribute.Int64("agreement.id", agreement.ID))
	return agreement, nil
}

// applyPostingDefaults: автор публикации становится стороной A.
// Навык из OFFER предлагает сторона A, навык из SEEK предлагает сторона B.
func applyPostingDefaults(input *domain.AgreementInput, posting *domain.Posting) {
	if input.PartyAID == 0 {
		input.PartyAID = posting.AuthorID
	}
	switch posting.Type {
	case domain.PostingTypeOffer:
		if input.SkillAID == 0 {
			input.SkillAID = posting.SkillID
		}
	case domain.PostingTypeSeek:
		if input.SkillBID == 0 {
			input.SkillBID = posting.SkillID
		}
	}
}

// GetAgreement возвращает соглашение по ID.
func (uc *AgreementUseCase) GetAgreement(ctx context.Context, agreementID int64) (*domain.Agreement, error) {
	return uc.agreementRepo.GetByID(ctx, agreementID)
}

// ListUserAgreements возвращает соглашения пользователя, новые первыми.
func (uc *AgreementUseCase) ListUserAgreements(ctx context.Context, userID int64) ([]*domain.Agreement, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}
	return uc.agreementRepo.ListByUser(ctx, userID)
}

// Transition применяет действие к соглашению через compare-and-set.
// При конкурентном изменении соглашение перечитывается и действие проверяется заново,
// поэтому два одинаковых конкурентных перехода не могут оба завершиться успешно.
func (uc *AgreementUseCase) Transition(
	ctx context.Context,
	agreementID int64,
	action domain.AgreementAction,
	actingUserID int64,
) (_ *domain.Agreement, err error) {
	ctx, span := telemetry.StartSpan(ctx, "agreement.transition",
		attribute.Int64("agreement.id", agreementID),
		attribute.String("agreement.action", string(action)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		agreement, err := uc.agreementRepo.GetByID(ctx, agreementID)
		if err != nil {
			return nil, err
		}

		to, err := domain.NextState(agreement, action, actingUserID)
		if err != nil {
			return nil, err
		}

		updated, err := uc.agreementRepo.UpdateState(ctx, agreementID, agreement.State, to)
		if errors.Is(err, domain.ErrStateConflict) {
			metrics.AgreementStateConflicts.Inc()
			continue
		}
		if err != nil {
			return nil, err
		}

		metrics.AgreementTransitions.WithLabelValues(string(action), string(to)).Inc()
		return updated, nil
	}

	return nil, domain.ErrStateConflict
}

// DeleteAgreement удаляет соглашение вместе с сессиями (административная операция).
func (uc *AgreementUseCase) DeleteAgreement(ctx context.Context, agreementID int64) error {
	return uc.agreementRepo.Delete(ctx, agreementID)
}
