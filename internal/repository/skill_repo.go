package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// SkillRepository реализует каталог навыков в PostgreSQL.
type SkillRepository struct {
	queries *database.Queries
}

// NewSkillRepository создает новый экземпляр SkillRepository.
func NewSkillRepository(queries *database.Queries) domain.SkillRepository {
	return &SkillRepository{
		queries: queries,
	}
}

func toDomainSkill(s database.Skill) *domain.Skill {
	return &domain.Skill{
		ID:       s.ID,
		Name:     s.Name,
		IsActive: s.IsActive,
	}
}

// GetByID возвращает навык по ID.
func (r *SkillRepository) GetByID(ctx context.Context, skillID int64) (*domain.Skill, error) {
	dbSkill, err := r.queries.GetSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return toDomainSkill(dbSkill), nil
}

// GetByName ищет навык без учета регистра.
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	dbSkill, err := r.queries.GetSkillByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill by name: %w", err)
	}

	return toDomainSkill(dbSkill), nil
}

// CreateIfNotExists вставляет навык, если его еще нет, и возвращает каноническую запись.
// Конкурентные вставки одного имени сходятся к одной строке благодаря уникальному индексу.
func (r *SkillRepository) CreateIfNotExists(ctx context.Context, name string) (*domain.Skill, error) {
	if err := r.queries.InsertSkillIfNotExists(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to insert skill: %w", err)
	}

	return r.GetByName(ctx, name)
}

// ListActive возвращает активные навыки, отсортированные по имени.
func (r *SkillRepository) ListActive(ctx context.Context) ([]*domain.Skill, error) {
	dbSkills, err := r.queries.ListActiveSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := make([]*domain.Skill, 0, len(dbSkills))
	for _, s := range dbSkills {
		skills = append(skills, toDomainSkill(s))
	}

	return skills, nil
}

// SetActive включает или отключает навык.
func (r *SkillRepository) SetActive(ctx context.Context, skillID int64, isActive bool) (*domain.Skill, error) {
	dbSkill, err := r.queries.SetSkillActive(ctx, database.SetSkillActiveParams{
		ID:       skillID,
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to update skill status: %w", err)
	}

	return toDomainSkill(dbSkill), nil
}

// Delete удаляет навык вместе с зависимыми публикациями и соглашениями.
func (r *SkillRepository) Delete(ctx context.Context, skillID int64) error {
	affected, err := r.queries.DeleteSkill(ctx, skillID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if affected == 0 {
		return domain.ErrSkillNotFound
	}

	return nil
}
