package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func proposedAgreement() *domain.Agreement {
	return &domain.Agreement{
		ID:                11,
		PartyAID:          1,
		PartyBID:          2,
		SkillAID:          3,
		SkillBID:          4,
		Weeks:             1,
		MinutesPerSession: 60,
		SessionsPerWeek:   1,
		State:             domain.AgreementStateProposed,
		CreatedAt:         fixedTime,
		UpdatedAt:         fixedTime,
	}
}

func TestCreateAgreement_ProposerIsPartyB(t *testing.T) {
	s := newTestServer(t)
	s.agreements.On("CreateAgreement", mock.Anything, mock.MatchedBy(func(in domain.AgreementInput) bool {
		return in.PartyAID == 1 && in.PartyBID == 2 && in.SkillAID == 3 && in.SkillBID == 4 &&
			in.Weeks == 0 && in.Conditions == "weekends"
	})).Return(proposedAgreement(), nil)

	partyA, skillA, skillB := int64(1), int64(3), int64(4)
	conditions := "weekends"
	rec := s.do(t, http.MethodPost, "/agreements", api.CreateAgreementJSONRequestBody{
		PartyAId:   &partyA,
		SkillAId:   &skillA,
		SkillBId:   &skillB,
		Conditions: &conditions,
	}, asUser(t, s, 2))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Agreement api.Agreement `json:"agreement"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.Agreement.AgreementId)
	assert.Equal(t, api.AgreementStatePROPOSED, body.Agreement.State)
	assert.Nil(t, body.Agreement.PostingId)
}

func TestCreateAgreement_RequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/agreements", api.CreateAgreementJSONRequestBody{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, api.UNAUTHORIZED, decodeError(t, rec).Error.Code)
}

func TestCreateAgreement_InvalidToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/agreements", api.CreateAgreementJSONRequestBody{},
		withHeader("Authorization", "Bearer garbage"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAgreement_DomainErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorResponseErrorCode
	}{
		{"Duplicate", domain.ErrDuplicateActiveAgreement, http.StatusConflict, api.DUPLICATEACTIVEAGREEMENT},
		{"Invalid", domain.ErrInvalidAgreement, http.StatusBadRequest, api.INVALIDAGREEMENT},
		{"Unknown skill", domain.ErrSkillNotFound, http.StatusNotFound, api.NOTFOUND},
		{"Unexpected", fmt.Errorf("failed to create agreement: %w", assert.AnError), http.StatusInternalServerError, api.INTERNALERROR},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.agreements.On("CreateAgreement", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := s.do(t, http.MethodPost, "/agreements", api.CreateAgreementJSONRequestBody{}, asUser(t, s, 2))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestTransitionAgreement(t *testing.T) {
	testCases := []struct {
		name       string
		action     string
		err        error
		wantStatus int
		wantCode   api.ErrorResponseErrorCode
	}{
		{"Self acceptance", "accept", domain.ErrSelfAcceptance, http.StatusForbidden, api.SELFACCEPTANCE},
		{"Third party", "accept", domain.ErrNotParticipant, http.StatusForbidden, api.NOTPARTICIPANT},
		{"Illegal source state", "finish",
			fmt.Errorf("%w: cannot finish from PROPOSED", domain.ErrInvalidTransition), http.StatusConflict, api.INVALIDTRANSITION},
		{"Lost race", "start", domain.ErrStateConflict, http.StatusConflict, api.STATECONFLICT},
		{"Missing agreement", "cancel", domain.ErrAgreementNotFound, http.StatusNotFound, api.NOTFOUND},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.agreements.On("Transition", mock.Anything, int64(11), domain.AgreementAction(tc.action), int64(2)).
				Return(nil, tc.err)

			rec := s.do(t, http.MethodPost, "/agreements/11/"+tc.action, nil, asUser(t, s, 2))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestTransitionAgreement_Accept(t *testing.T) {
	s := newTestServer(t)
	accepted := proposedAgreement()
	accepted.State = domain.AgreementStateAccepted
	s.agreements.On("Transition", mock.Anything, int64(11), domain.AgreementActionAccept, int64(1)).
		Return(accepted, nil)

	rec := s.do(t, http.MethodPost, "/agreements/11/ACCEPT", nil, asUser(t, s, 1))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Agreement api.Agreement `json:"agreement"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, api.AgreementStateACCEPTED, body.Agreement.State)
}

func TestTransitionAgreement_UnknownAction(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/agreements/11/merge", nil, asUser(t, s, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, api.INVALIDACTION, decodeError(t, rec).Error.Code)
	s.agreements.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionAgreement_BadPathParam(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/agreements/abc/accept", nil, asUser(t, s, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAgreements(t *testing.T) {
	s := newTestServer(t)
	s.agreements.On("ListUserAgreements", mock.Anything, int64(2)).
		Return([]*domain.Agreement{proposedAgreement()}, nil)

	rec := s.do(t, http.MethodGet, "/agreements?user_id=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Agreements []api.Agreement `json:"agreements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Agreements, 1)
}

func TestListAgreements_MissingUserID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/agreements", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
