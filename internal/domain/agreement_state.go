package domain

import (
	"fmt"
	"strings"
)

// AgreementAction действие участника над соглашением.
type AgreementAction string

const (
	AgreementActionAccept AgreementAction = "accept"
	AgreementActionStart  AgreementAction = "start"
	AgreementActionFinish AgreementAction = "finish"
	AgreementActionCancel AgreementAction = "cancel"
)

// ParseAgreementAction нормализует название действия.
func ParseAgreementAction(value string) (AgreementAction, error) {
	switch action := AgreementAction(strings.ToLower(strings.TrimSpace(value))); action {
	case AgreementActionAccept, AgreementActionStart, AgreementActionFinish, AgreementActionCancel:
		return action, nil
	default:
		return "", ErrInvalidAction
	}
}

// isTransitionAllowed задает допустимые исходные состояния для каждого действия.
func isTransitionAllowed(from AgreementState, action AgreementAction) (AgreementState, bool) {
	switch action {
	case AgreementActionAccept:
		return AgreementStateAccepted, from == AgreementStateProposed
	case AgreementActionStart:
		return AgreementStateOngoing, from == AgreementStateAccepted
	case AgreementActionFinish:
		return AgreementStateFinished, from == AgreementStateOngoing
	case AgreementActionCancel:
		return AgreementStateCanceled, from.IsActive()
	default:
		return "", false
	}
}

// NextState проверяет переход и возвращает целевое состояние, ничего не изменяя.
// Принять соглашение может только сторона A; start/finish/cancel не проверяют участника.
func NextState(agreement *Agreement, action AgreementAction, actingUserID int64) (AgreementState, error) {
	to, ok := isTransitionAllowed(agreement.State, action)
	if to == "" {
		return "", ErrInvalidAction
	}
	if !ok {
		return "", fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, agreement.State)
	}

	if action == AgreementActionAccept {
		if actingUserID == agreement.PartyBID {
			return "", ErrSelfAcceptance
		}
		if actingUserID != agreement.PartyAID {
			return "", ErrNotParticipant
		}
	}

	return to, nil
}
