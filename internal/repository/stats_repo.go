package repository

import (
	"context"
	"fmt"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository для работы со статистикой.
type StatsRepository struct {
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

// GetAgreementStateStats возвращает количество соглашений в каждом состоянии.
func (r *StatsRepository) GetAgreementStateStats(ctx context.Context) ([]*domain.AgreementStateStat, error) {
	stats, err := r.queries.GetAgreementStateStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agreement stats: %w", err)
	}

	result := make([]*domain.AgreementStateStat, len(stats))
	for i, stat := range stats {
		result[i] = &domain.AgreementStateStat{
			State: domain.AgreementState(stat.State),
			Count: stat.AgreementCount,
		}
	}

	return result, nil
}

// GetSkillStats возвращает самые востребованные навыки.
func (r *StatsRepository) GetSkillStats(ctx context.Context, limit int32) ([]*domain.SkillStat, error) {
	stats, err := r.queries.GetSkillStats(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill stats: %w", err)
	}

	result := make([]*domain.SkillStat, len(stats))
	for i, stat := range stats {
		result[i] = &domain.SkillStat{
			SkillID:        stat.SkillID,
			SkillName:      stat.SkillName,
			PostingCount:   stat.PostingCount,
			AgreementCount: stat.AgreementCount,
		}
	}

	return result, nil
}
