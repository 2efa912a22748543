package usecase_test

import (
	"context"
	"testing"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/mocks"
	"skillswap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPostingUseCase() (*mocks.PostingRepository, *mocks.UserRepository, *mocks.SkillRepository, domain.PostingUseCase) {
	postingRepo := &mocks.PostingRepository{}
	userRepo := &mocks.UserRepository{}
	skillRepo := &mocks.SkillRepository{}
	return postingRepo, userRepo, skillRepo, usecase.NewPostingUseCase(postingRepo, userRepo, skillRepo)
}

func TestPostingUseCase_CreatePosting_Success(t *testing.T) {
	ctx := context.Background()
	postingRepo, userRepo, skillRepo, uc := newPostingUseCase()

	userRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	skillRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Skill{ID: 1, Name: "Go", IsActive: true}, nil)
	postingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Posting")).Return(nil)

	posting, err := uc.CreatePosting(ctx, 10, domain.PostingInput{
		Type: domain.PostingTypeOffer, Description: " Go mentoring ", SkillID: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Go mentoring", posting.Description)
	assert.Equal(t, "Go", posting.SkillName)
	postingRepo.AssertExpectations(t)
}

func TestPostingUseCase_CreatePosting_InactiveSkill(t *testing.T) {
	ctx := context.Background()
	postingRepo, userRepo, skillRepo, uc := newPostingUseCase()

	userRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10}, nil)
	skillRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Skill{ID: 1, Name: "Cobol", IsActive: false}, nil)

	_, err := uc.CreatePosting(ctx, 10, domain.PostingInput{
		Type: domain.PostingTypeSeek, Description: "Need Cobol", SkillID: 1,
	})

	assert.ErrorIs(t, err, domain.ErrSkillNotFound)
	postingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostingUseCase_CreatePosting_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	_, _, _, uc := newPostingUseCase()

	testCases := []struct {
		name     string
		input    domain.PostingInput
		expected error
	}{
		{"Unknown type", domain.PostingInput{Type: "TRADE", Description: "x", SkillID: 1}, domain.ErrInvalidPostingType},
		{"Blank description", domain.PostingInput{Type: domain.PostingTypeOffer, Description: "  ", SkillID: 1}, domain.ErrInvalidDescription},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			posting, err := uc.CreatePosting(ctx, 10, tc.input)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, posting)
		})
	}
}

func TestPostingUseCase_ClosePosting(t *testing.T) {
	ctx := context.Background()

	t.Run("Author closes", func(t *testing.T) {
		postingRepo, _, _, uc := newPostingUseCase()
		postingRepo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Posting{ID: 4, AuthorID: 10, IsActive: true}, nil)
		postingRepo.On("SetActive", mock.Anything, int64(4), false).Return(&domain.Posting{ID: 4, AuthorID: 10, IsActive: false}, nil)

		posting, err := uc.ClosePosting(ctx, 10, 4)
		assert.NoError(t, err)
		assert.False(t, posting.IsActive)
	})

	t.Run("Stranger cannot close", func(t *testing.T) {
		postingRepo, _, _, uc := newPostingUseCase()
		postingRepo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Posting{ID: 4, AuthorID: 10, IsActive: true}, nil)

		_, err := uc.ClosePosting(ctx, 11, 4)
		assert.ErrorIs(t, err, domain.ErrNotPostingAuthor)
		postingRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostingUseCase_UpdatePosting_NotAuthor(t *testing.T) {
	ctx := context.Background()
	postingRepo, _, _, uc := newPostingUseCase()

	postingRepo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Posting{ID: 4, AuthorID: 10, SkillID: 1}, nil)

	_, err := uc.UpdatePosting(ctx, 20, 4, domain.PostingInput{
		Type: domain.PostingTypeOffer, Description: "changed", SkillID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotPostingAuthor)
}

func TestPostingUseCase_Search_ParsesQuery(t *testing.T) {
	ctx := context.Background()
	postingRepo, _, _, uc := newPostingUseCase()

	seek := domain.PostingTypeSeek
	postingRepo.On("Search", mock.Anything, domain.SearchFilter{Type: &seek, Terms: []string{"python", "django"}}).
		Return([]*domain.Posting{{ID: 1, Type: domain.PostingTypeSeek}}, nil)

	postings, err := uc.Search(ctx, "python offer django SEEK", nil)
	assert.NoError(t, err)
	assert.Len(t, postings, 1)
	postingRepo.AssertExpectations(t)
}

func TestPostingUseCase_Search_OnlyOpen(t *testing.T) {
	ctx := context.Background()
	postingRepo, _, _, uc := newPostingUseCase()

	open := true
	postingRepo.On("Search", mock.Anything, domain.SearchFilter{Terms: []string{"go"}, Active: &open}).
		Return([]*domain.Posting{}, nil)

	_, err := uc.Search(ctx, "go", &open)
	assert.NoError(t, err)
	postingRepo.AssertExpectations(t)
}
