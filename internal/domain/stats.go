package domain

import "context"

// AgreementStateStat количество соглашений в каждом состоянии.
type AgreementStateStat struct {
	State AgreementState
	Count int64
}

// SkillStat популярность навыка по публикациям и соглашениям.
type SkillStat struct {
	SkillID        int64
	SkillName      string
	PostingCount   int64
	AgreementCount int64
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	GetAgreementStateStats(ctx context.Context) ([]*AgreementStateStat, error)
	GetSkillStats(ctx context.Context, limit int32) ([]*SkillStat, error)
}
