package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionDate = time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)

func TestCreateSession_DefaultsToActive(t *testing.T) {
	s := newTestServer(t)
	s.sessions.On("CreateSession", mock.Anything, int64(11), mock.MatchedBy(func(in domain.SessionInput) bool {
		return in.IsActive && in.DurationMinutes == 90 && in.Date.Equal(sessionDate) && in.Summary == "Kickoff"
	})).Return(&domain.Session{
		ID:              5,
		AgreementID:     11,
		Date:            sessionDate,
		DurationMinutes: 90,
		IsActive:        true,
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
	}, nil)

	rec := s.do(t, http.MethodPost, "/agreements/11/sessions", api.SessionInput{
		Date:            openapi_types.Date{Time: sessionDate},
		DurationMinutes: 90,
		Summary:         "Kickoff",
	}, asUser(t, s, 1))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2030-01-15"`)

	var body struct {
		Session api.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Session.SessionId)
	assert.True(t, body.Session.IsActive)
}

func TestCreateSession_ExplicitInactive(t *testing.T) {
	s := newTestServer(t)
	s.sessions.On("CreateSession", mock.Anything, int64(11), mock.MatchedBy(func(in domain.SessionInput) bool {
		return !in.IsActive && in.AttendanceA && in.Summary == "intro"
	})).Return(&domain.Session{ID: 6, AgreementID: 11, Date: sessionDate, DurationMinutes: 60}, nil)

	inactive, attended := false, true
	rec := s.do(t, http.MethodPost, "/agreements/11/sessions", api.SessionInput{
		Date:            openapi_types.Date{Time: sessionDate},
		DurationMinutes: 60,
		IsActive:        &inactive,
		AttendanceA:     &attended,
		Summary:         "intro",
	}, asUser(t, s, 1))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSession_DomainErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorResponseErrorCode
	}{
		{"Not ongoing", domain.ErrAgreementNotOngoing, http.StatusConflict, api.AGREEMENTNOTONGOING},
		{"Past date", domain.ErrPastDate, http.StatusBadRequest, api.PASTDATE},
		{"Duration", domain.ErrDurationOutOfRange, http.StatusBadRequest, api.DURATIONOUTOFRANGE},
		{"Summary", domain.ErrInvalidSummary, http.StatusBadRequest, api.INVALIDREQUEST},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.sessions.On("CreateSession", mock.Anything, int64(11), mock.Anything).Return(nil, tc.err)

			rec := s.do(t, http.MethodPost, "/agreements/11/sessions", api.SessionInput{
				Date:            openapi_types.Date{Time: sessionDate},
				DurationMinutes: 90,
				Summary:         "Kickoff",
			}, asUser(t, s, 1))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestCreateSession_MalformedDate(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/agreements/11/sessions",
		map[string]interface{}{"date": "15/01/2030", "duration_minutes": 90}, asUser(t, s, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, api.INVALIDREQUEST, decodeError(t, rec).Error.Code)
}

func TestUpdateSession(t *testing.T) {
	s := newTestServer(t)
	s.sessions.On("UpdateSession", mock.Anything, int64(5), mock.MatchedBy(func(in domain.SessionInput) bool {
		return in.DurationMinutes == 120 && in.IsActive
	})).Return(&domain.Session{ID: 5, AgreementID: 11, Date: sessionDate, DurationMinutes: 120, IsActive: true}, nil)

	rec := s.do(t, http.MethodPut, "/sessions/5", api.SessionInput{
		Date:            openapi_types.Date{Time: sessionDate},
		DurationMinutes: 120,
		Summary:         "Recap",
	}, asUser(t, s, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSessions(t *testing.T) {
	s := newTestServer(t)
	s.sessions.On("ListUserSessions", mock.Anything, int64(1)).
		Return([]*domain.Session{{ID: 5, AgreementID: 11, Date: sessionDate}}, nil)
	s.sessions.On("ListAgreementSessions", mock.Anything, int64(11)).
		Return([]*domain.Session{}, nil)

	rec := s.do(t, http.MethodGet, "/sessions?user_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session_id":5`)

	rec = s.do(t, http.MethodGet, "/agreements/11/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessions":[]`)
}
