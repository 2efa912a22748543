package usecase

import (
	"context"

	"skillswap-service/internal/domain"
)

const (
	defaultSkillStatsLimit = 10
	maxSkillStatsLimit     = 100
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
	}
}

// GetAgreementStats возвращает количество соглашений в каждом состоянии.
func (uc *StatsUseCase) GetAgreementStats(ctx context.Context) ([]*domain.AgreementStateStat, error) {
	return uc.statsRepo.GetAgreementStateStats(ctx)
}

// GetSkillStats возвращает топ навыков; limit ограничивается диапазоном [1, 100].
func (uc *StatsUseCase) GetSkillStats(ctx context.Context, limit int32) ([]*domain.SkillStat, error) {
	if limit <= 0 {
		limit = defaultSkillStatsLimit
	}
	if limit > maxSkillStatsLimit {
		limit = maxSkillStatsLimit
	}
	return uc.statsRepo.GetSkillStats(ctx, limit)
}
