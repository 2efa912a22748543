package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// ProfileUseCase реализует публичные профили пользователей.
type ProfileUseCase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	skills      domain.SkillUseCase
}

// NewProfileUseCase создает новый экземпляр ProfileUseCase.
// Навыки профиля создаются в каталоге через SkillUseCase.GetOrCreate.
func NewProfileUseCase(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	skills domain.SkillUseCase,
) domain.ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		skills:      skills,
	}
}

// GetProfile возвращает профиль пользователя или профиль по умолчанию, если он не заполнен.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile полностью заменяет профиль пользователя.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int64, input domain.ProfileInput) (_ *domain.Profile, err error) {
	ctx, span := telemetry.StartSpan(ctx, "profile.update",
		attribute.Int64("user.id", userID),
		attribute.Int("profile.skills", len(input.Skills)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	input.Bio = strings.TrimSpace(input.Bio)
	input.Availability = strings.TrimSpace(input.Availability)
	input.Timezone = strings.TrimSpace(input.Timezone)
	if input.Timezone == "" {
		input.Timezone = domain.DefaultTimezone
	}
	if err = domain.ValidateProfile(input); err != nil {
		return nil, err
	}

	if _, err = uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:       userID,
		Bio:          input.Bio,
		Timezone:     input.Timezone,
		Availability: input.Availability,
		Skills:       make([]*domain.Skill, 0, len(input.Skills)),
	}

	// Разные написания одного навыка сводятся к одной записи каталога.
	seen := make(map[int64]struct{}, len(input.Skills))
	for _, name := range input.Skills {
		var skill *domain.Skill
		skill, err = uc.skills.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[skill.ID]; ok {
			continue
		}
		seen[skill.ID] = struct{}{}
		profile.Skills = append(profile.Skills, skill)
	}

	if err = uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
