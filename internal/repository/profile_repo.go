package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// ProfileRepository реализует хранилище профилей в PostgreSQL.
type ProfileRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewProfileRepository создает новый экземпляр ProfileRepository.
func NewProfileRepository(db *sql.DB, queries *database.Queries) domain.ProfileRepository {
	return &ProfileRepository{
		db:      db,
		queries: queries,
	}
}

// GetByUserID возвращает профиль вместе с навыками.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	dbProfile, err := r.queries.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	dbSkills, err := r.queries.ListProfileSkills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile skills: %w", err)
	}

	profile := &domain.Profile{
		UserID:       dbProfile.UserID,
		Bio:          dbProfile.Bio,
		Timezone:     dbProfile.Timezone,
		Availability: dbProfile.Availability,
		UpdatedAt:    dbProfile.UpdatedAt,
		Skills:       make([]*domain.Skill, 0, len(dbSkills)),
	}
	for _, s := range dbSkills {
		profile.Skills = append(profile.Skills, toDomainSkill(s))
	}

	return profile, nil
}

// Save создает или полностью заменяет профиль и его набор навыков в одной транзакции.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
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

	// 1. Поля профиля
	var dbProfile database.Profile
	dbProfile, err = txQueries.UpsertProfile(ctx, database.UpsertProfileParams{
		UserID:       profile.UserID,
		Bio:          profile.Bio,
		Timezone:     profile.Timezone,
		Availability: profile.Availability,
	})
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			err = domain.ErrUserNotFound
			return err
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	// 2. Набор навыков заменяется целиком
	if err = txQueries.DeleteProfileSkills(ctx, profile.UserID); err != nil {
		return fmt.Errorf("failed to clear profile skills: %w", err)
	}
	for _, skill := range profile.Skills {
		err = txQueries.AddProfileSkill(ctx, database.AddProfileSkillParams{
			UserID:  profile.UserID,
			SkillID: skill.ID,
		})
		if err != nil {
			if _, ok := isForeignKeyViolation(err); ok {
				err = domain.ErrSkillNotFound
				return err
			}
			return fmt.Errorf("failed to add profile skill: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	profile.UpdatedAt = dbProfile.UpdatedAt
	return nil
}
