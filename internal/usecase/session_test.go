package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/mocks"
	"skillswap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var sessionNow = time.Date(2026, 5, 20, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return sessionNow }

func newSessionUseCase() (*mocks.SessionRepository, *mocks.AgreementRepository, domain.SessionUseCase) {
	sessionRepo := &mocks.SessionRepository{}
	agreementRepo := &mocks.AgreementRepository{}
	return sessionRepo, agreementRepo, usecase.NewSessionUseCase(sessionRepo, agreementRepo, fixedClock)
}

func TestSessionUseCase_CreateSession_Success(t *testing.T) {
	ctx := context.Background()
	sessionRepo, agreementRepo, uc := newSessionUseCase()

	agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)
	sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.AgreementID == 1 && s.DurationMinutes == 90 && s.Date.Equal(time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC))
	})).Return(nil)

	// Сегодняшняя дата допустима
	session, err := uc.CreateSession(ctx, 1, domain.SessionInput{
		Date:            sessionNow,
		DurationMinutes: 90,
		Summary:         "  pair programming  ",
		IsActive:        true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "pair programming", session.Summary)
	sessionRepo.AssertExpectations(t)
}

func TestSessionUseCase_CreateSession_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	_, agreementRepo, uc := newSessionUseCase()

	agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)
	agreementRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Agreement{ID: 2, State: domain.AgreementStateAccepted}, nil)

	tomorrow := sessionNow.AddDate(0, 0, 1)

	testCases := []struct {
		name        string
		agreementID int64
		input       domain.SessionInput
		expected    error
	}{
		{"Agreement not ongoing", 2, domain.SessionInput{Date: tomorrow, DurationMinutes: 60}, domain.ErrAgreementNotOngoing},
		{"Yesterday", 1, domain.SessionInput{Date: sessionNow.AddDate(0, 0, -1), DurationMinutes: 60}, domain.ErrPastDate},
		{"Too short", 1, domain.SessionInput{Date: tomorrow, DurationMinutes: 59}, domain.ErrDurationOutOfRange},
		{"Too long", 1, domain.SessionInput{Date: tomorrow, DurationMinutes: 241}, domain.ErrDurationOutOfRange},
		{"Summary too long", 1, domain.SessionInput{Date: tomorrow, DurationMinutes: 60, Summary: strings.Repeat("x", 201)}, domain.ErrInvalidSummary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := uc.CreateSession(ctx, tc.agreementID, tc.input)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, session)
		})
	}
}

func TestSessionUseCase_CreateSession_AgreementFinishedConcurrently(t *testing.T) {
	ctx := context.Background()
	sessionRepo, agreementRepo, uc := newSessionUseCase()

	agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(domain.ErrAgreementNotOngoing)

	_, err := uc.CreateSession(ctx, 1, domain.SessionInput{Date: sessionNow, DurationMinutes: 60, Summary: "Intro"})
	assert.ErrorIs(t, err, domain.ErrAgreementNotOngoing)
}

func TestSessionUseCase_CreateSession_BlankSummary(t *testing.T) {
	ctx := context.Background()
	sessionRepo, agreementRepo, uc := newSessionUseCase()

	agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)

	_, err := uc.CreateSession(ctx, 1, domain.SessionInput{Date: sessionNow, DurationMinutes: 60, Summary: " \t "})
	assert.ErrorIs(t, err, domain.ErrInvalidSummary)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionUseCase_UpdateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Revalidates against agreement state", func(t *testing.T) {
		sessionRepo, agreementRepo, uc := newSessionUseCase()
		sessionRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Session{ID: 5, AgreementID: 1}, nil)
		agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateFinished}, nil)

		_, err := uc.UpdateSession(ctx, 5, domain.SessionInput{Date: sessionNow, DurationMinutes: 60})
		assert.ErrorIs(t, err, domain.ErrAgreementNotOngoing)
		sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Rejects past date on update", func(t *testing.T) {
		sessionRepo, agreementRepo, uc := newSessionUseCase()
		sessionRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Session{ID: 5, AgreementID: 1}, nil)
		agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)

		_, err := uc.UpdateSession(ctx, 5, domain.SessionInput{Date: sessionNow.AddDate(0, 0, -3), DurationMinutes: 60})
		assert.ErrorIs(t, err, domain.ErrPastDate)
	})

	t.Run("Success", func(t *testing.T) {
		sessionRepo, agreementRepo, uc := newSessionUseCase()
		sessionRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Session{ID: 5, AgreementID: 1, DurationMinutes: 60}, nil)
		agreementRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Agreement{ID: 1, State: domain.AgreementStateOngoing}, nil)
		sessionRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
			return s.ID == 5 && s.DurationMinutes == 120 && s.AttendanceA
		})).Return(&domain.Session{ID: 5, AgreementID: 1, DurationMinutes: 120, AttendanceA: true}, nil)

		session, err := uc.UpdateSession(ctx, 5, domain.SessionInput{
			Date: sessionNow.AddDate(0, 0, 7), DurationMinutes: 120, Summary: "Follow-up", AttendanceA: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(120), session.DurationMinutes)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Session not found", func(t *testing.T) {
		sessionRepo, _, uc := newSessionUseCase()
		sessionRepo.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrSessionNotFound)

		_, err := uc.UpdateSession(ctx, 9, domain.SessionInput{Date: sessionNow, DurationMinutes: 60})
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSessionUseCase_ListAgreementSessions_UnknownAgreement(t *testing.T) {
	ctx := context.Background()
	sessionRepo, agreementRepo, uc := newSessionUseCase()

	agreementRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrAgreementNotFound)

	_, err := uc.ListAgreementSessions(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrAgreementNotFound)
	sessionRepo.AssertNotCalled(t, "ListByAgreement", mock.Anything, mock.Anything)
}
