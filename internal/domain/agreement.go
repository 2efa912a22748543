package domain

import (
	"context"
	"time"
)

// AgreementState состояние жизненного цикла соглашения.
type AgreementState string

const (
	AgreementStateProposed AgreementState = "PROPOSED"
	AgreementStateAccepted AgreementState = "ACCEPTED"
	AgreementStateOngoing  AgreementState = "ONGOING"
	AgreementStateFinished AgreementState = "FINISHED"
	AgreementStateCanceled AgreementState = "CANCELED"
)

// ActiveAgreementStates состояния, на которые распространяется уникальность соглашения.
var ActiveAgreementStates = []AgreementState{
	AgreementStateProposed,
	AgreementStateAccepted,
	AgreementStateOngoing,
}

// IsActive сообщает, относится ли состояние к активным.
func (s AgreementState) IsActive() bool {
	switch s {
	case AgreementStateProposed, AgreementStateAccepted, AgreementStateOngoing:
		return true
	default:
		return false
	}
}

// IsTerminal сообщает, что из состояния нет переходов.
func (s AgreementState) IsTerminal() bool {
	return s == AgreementStateFinished || s == AgreementStateCanceled
}

const (
	DefaultWeeks             = 1
	DefaultMinutesPerSession = 60
	DefaultSessionsPerWeek   = 1
)

// Agreement представляет двустороннее соглашение об обмене навыками.
// Сторона A публикует объявление, сторона B откликается и предлагает соглашение.
type Agreement struct {
	ID                int64
	PartyAID          int64
	PartyBID          int64
	SkillAID          int64
	SkillBID          int64
	Weeks             int32
	MinutesPerSession int32
	SessionsPerWeek   int32
	Conditions        string
	State             AgreementState
	PostingID         *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsParticipant проверяет, является ли пользователь одной из сторон.
func (a *Agreement) IsParticipant(userID int64) bool {
	return a.PartyAID == userID || a.PartyBID == userID
}

// AgreementInput параметры создания соглашения.
type AgreementInput struct {
	PartyAID          int64
	PartyBID          int64
	SkillAID          int64
	SkillBID          int64
	Weeks             int32
	MinutesPerSession int32
	SessionsPerWeek   int32
	Conditions        string
	PostingID         *int64
}

// AgreementRepository определяет контракт для работы с хранилищем соглашений.
type AgreementRepository interface {
	Create(ctx context.Context, agreement *Agreement) error
	GetByID(ctx context.Context, agreementID int64) (*Agreement, error)
	ExistsActive(ctx context.Context, partyAID, partyBID, skillAID, skillBID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*Agreement, error)
	UpdateState(ctx context.Context, agreementID int64, from, to AgreementState) (*Agreement, error)
	Delete(ctx context.Context, agreementID int64) error
}
