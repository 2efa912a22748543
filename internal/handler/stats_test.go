package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAgreementStats(t *testing.T) {
	s := newTestServer(t)
	s.stats.On("GetAgreementStats", mock.Anything).Return([]*domain.AgreementStateStat{
		{State: domain.AgreementStateOngoing, Count: 4},
		{State: domain.AgreementStateProposed, Count: 2},
	}, nil)

	rec := s.do(t, http.MethodGet, "/stats/agreements", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Stats []api.AgreementStateStat `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Stats, 2)
	assert.Equal(t, api.AgreementStateONGOING, body.Stats[0].State)
	assert.Equal(t, int64(4), body.Stats[0].Count)
}

func TestGetSkillStats_Limit(t *testing.T) {
	s := newTestServer(t)
	s.stats.On("GetSkillStats", mock.Anything, int32(5)).Return([]*domain.SkillStat{
		{SkillID: 1, SkillName: "Go", PostingCount: 3, AgreementCount: 1},
	}, nil)
	s.stats.On("GetSkillStats", mock.Anything, int32(0)).Return([]*domain.SkillStat{}, nil)

	rec := s.do(t, http.MethodGet, "/stats/skills?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"posting_count":3`)

	rec = s.do(t, http.MethodGet, "/stats/skills", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/stats/skills?limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
