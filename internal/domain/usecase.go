package domain

import "context"

// SkillUseCase определяет бизнес-логику каталога навыков.
type SkillUseCase interface {
	GetOrCreate(ctx context.Context, name string) (*Skill, error)
	ListActive(ctx context.Context) ([]*Skill, error)
	Deactivate(ctx context.Context, skillID int64) (*Skill, error)
	Delete(ctx context.Context, skillID int64) error
}

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, input NewUser) (*User, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	SetUserActive(ctx context.Context, userID int64, isActive bool) (*User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// PostingUseCase определяет бизнес-логику публикаций и поиска.
type PostingUseCase interface {
	CreatePosting(ctx context.Context, authorID int64, input PostingInput) (*Posting, error)
	GetPosting(ctx context.Context, postingID int64) (*Posting, error)
	UpdatePosting(ctx context.Context, actorID, postingID int64, input PostingInput) (*Posting, error)
	ClosePosting(ctx context.Context, actorID, postingID int64) (*Posting, error)
	Search(ctx context.Context, rawQuery string, active *bool) ([]*Posting, error)
}

// AgreementUseCase определяет машину состояний соглашений.
type AgreementUseCase interface {
	CreateAgreement(ctx context.Context, input AgreementInput) (*Agreement, error)
	GetAgreement(ctx context.Context, agreementID int64) (*Agreement, error)
	ListUserAgreements(ctx context.Context, userID int64) ([]*Agreement, error)
	Transition(ctx context.Context, agreementID int64, action AgreementAction, actingUserID int64) (*Agreement, error)
	DeleteAgreement(ctx context.Context, agreementID int64) error
}

// SessionUseCase определяет планировщик сессий.
type SessionUseCase interface {
	CreateSession(ctx context.Context, agreementID int64, input SessionInput) (*Session, error)
	UpdateSession(ctx context.Context, sessionID int64, input SessionInput) (*Session, error)
	GetSession(ctx context.Context, sessionID int64) (*Session, error)
	ListAgreementSessions(ctx context.Context, agreementID int64) ([]*Session, error)
	ListUserSessions(ctx context.Context, userID int64) ([]*Session, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetAgreementStats(ctx context.Context) ([]*AgreementStateStat, error)
	GetSkillStats(ctx context.Context, limit int32) ([]*SkillStat, error)
}
