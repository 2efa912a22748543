package usecase_test

import (
	"context"
	"testing"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/mocks"
	"skillswap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestStatsUseCase_GetAgreementStats(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewStatsUseCase(statsRepo)

	expected := []*domain.AgreementStateStat{
		{State: domain.AgreementStateOngoing, Count: 3},
		{State: domain.AgreementStateProposed, Count: 5},
	}
	statsRepo.On("GetAgreementStateStats", ctx).Return(expected, nil)

	stats, err := uc.GetAgreementStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, stats)
	statsRepo.AssertExpectations(t)
}

func TestStatsUseCase_GetSkillStats_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		limit    int32
		expected int32
	}{
		{"Default", 0, 10},
		{"Custom", 5, 5},
		{"Capped", 1000, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			statsRepo := &mocks.StatsRepository{}
			uc := usecase.NewStatsUseCase(statsRepo)
			statsRepo.On("GetSkillStats", ctx, tc.expected).Return([]*domain.SkillStat{}, nil)

			_, err := uc.GetSkillStats(ctx, tc.limit)
			assert.NoError(t, err)
			statsRepo.AssertExpectations(t)
		})
	}
}
