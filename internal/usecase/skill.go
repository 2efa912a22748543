package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// SkillUseCase реализует каталог навыков с опциональным кэшем активного списка.
type SkillUseCase struct {
	skillRepo domain.SkillRepository
	cache     domain.SkillCache
}

// NewSkillUseCase создает новый экземпляр SkillUseCase. cache может быть nil.
func NewSkillUseCase(skillRepo domain.SkillRepository, cache domain.SkillCache) domain.SkillUseCase {
	return &SkillUseCase{
		skillRepo: skillRepo,
		cache:     cache,
	}
}

// GetOrCreate возвращает навык по имени без учета регистра, создавая его при отсутствии.
func (uc *SkillUseCase) GetOrCreate(ctx context.Context, name string) (_ *domain.Skill, err error) {
	normalized := domain.NormalizeSkillName(name)
	ctx, span := telemetry.StartSpan(ctx, "skill.get_or_create",
		attribute.String("skill.name", normalized),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	if normalized == "" || utf8.RuneCountInString(normalized) > domain.MaxSkillNameLength {
		return nil, domain.ErrInvalidSkillName
	}

	skill, err := uc.skillRepo.GetByName(ctx, normalized)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}

	skill, err = uc.skillRepo.CreateIfNotExists(ctx, normalized)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return skill, nil
}

// ListActive возвращает активные навыки, по возможности из кэша.
func (uc *SkillUseCase) ListActive(ctx context.Context) (_ []*domain.Skill, err error) {
	ctx, span := telemetry.StartSpan(ctx, "skill.list_active")
	defer func() { telemetry.EndSpan(span, err) }()

	if uc.cache != nil {
		if skills, ok := uc.cache.GetActiveSkills(ctx); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return skills, nil
		}
	}

	skills, err := uc.skillRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetActiveSkills(ctx, skills)
	}
	return skills, nil
}

// Deactivate скрывает навык из каталога, не трогая существующие публикации и соглашения.
func (uc *SkillUseCase) Deactivate(ctx context.Context, skillID int64) (*domain.Skill, error) {
	skill, err := uc.skillRepo.SetActive(ctx, skillID, false)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return skill, nil
}

// Delete удаляет навык окончательно; публикации и соглашения с ним удаляются каскадно.
func (uc *SkillUseCase) Delete(ctx context.Context, skillID int64) error {
	if err := uc.skillRepo.Delete(ctx, skillID); err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *SkillUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateActiveSkills(ctx)
	}
}
