package handler_test

import (
	"net/http"
	"testing"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePosting() *domain.Posting {
	return &domain.Posting{
		ID:          9,
		Type:        domain.PostingTypeOffer,
		Description: "Conversational Spanish",
		IsActive:    true,
		AuthorID:    1,
		SkillID:     3,
		SkillName:   "Spanish",
		CreatedAt:   fixedTime,
		ModifiedAt:  fixedTime,
	}
}

func TestSearchPostings_PassesRawQuery(t *testing.T) {
	s := newTestServer(t)
	s.postings.On("Search", mock.Anything, "seek go 50%", (*bool)(nil)).Return([]*domain.Posting{samplePosting()}, nil)

	rec := s.do(t, http.MethodGet, "/postings?q=seek+go+50%25", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skill_name":"Spanish"`)
}

func TestSearchPostings_EmptyQuery(t *testing.T) {
	s := newTestServer(t)
	s.postings.On("Search", mock.Anything, "", (*bool)(nil)).Return([]*domain.Posting{}, nil)

	rec := s.do(t, http.MethodGet, "/postings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postings":[]`)
}

func TestSearchPostings_ActiveFilter(t *testing.T) {
	s := newTestServer(t)
	s.postings.On("Search", mock.Anything, "go", mock.MatchedBy(func(active *bool) bool {
		return active != nil && !*active
	})).Return([]*domain.Posting{}, nil)

	rec := s.do(t, http.MethodGet, "/postings?q=go&active=false", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchPostings_MalformedActive(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/postings?active=maybe", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.postings.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePosting(t *testing.T) {
	s := newTestServer(t)
	s.postings.On("CreatePosting", mock.Anything, int64(1), domain.PostingInput{
		Type:        domain.PostingTypeOffer,
		Description: "Conversational Spanish",
		SkillID:     3,
	}).Return(samplePosting(), nil)

	rec := s.do(t, http.MethodPost, "/postings", api.CreatePostingJSONRequestBody{
		Type:        "offer",
		Description: "Conversational Spanish",
		SkillId:     3,
	}, asUser(t, s, 1))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdatePosting_NotAuthor(t *testing.T) {
	s := newTestServer(t)
	s.postings.On("UpdatePosting", mock.Anything, int64(2), int64(9), mock.Anything).
		Return(nil, domain.ErrNotPostingAuthor)

	rec := s.do(t, http.MethodPut, "/postings/9", api.UpdatePostingJSONRequestBody{
		Type:        api.PostingTypeSEEK,
		Description: "x",
		SkillId:     3,
	}, asUser(t, s, 2))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, api.FORBIDDEN, decodeError(t, rec).Error.Code)
}

func TestClosePosting(t *testing.T) {
	s := newTestServer(t)
	closed := samplePosting()
	closed.IsActive = false
	s.postings.On("ClosePosting", mock.Anything, int64(1), int64(9)).Return(closed, nil)

	rec := s.do(t, http.MethodPost, "/postings/9/close", nil, asUser(t, s, 1))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}
