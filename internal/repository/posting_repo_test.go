package repository

import (
	"context"
	"regexp"
	"testing"

	"skillswap-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingRepository_Search(t *testing.T) {
	t.Run("Type and escaped terms", func(t *testing.T) {
		_, queries, mock := setupMockDB(t)
		repo := NewPostingRepository(queries)

		mock.ExpectQuery(regexp.QuoteMeta("FROM postings p")).
			WithArgs("OFFER", pq.Array([]string{"go", `50\%`}), true).
			WillReturnRows(sqlmock.NewRows(postingRowColumns).
				AddRow(4, "OFFER", "Go lessons, 50% off", true, fixedTime, fixedTime, 10, 1, "Go"))

		offer := domain.PostingTypeOffer
		open := true
		postings, err := repo.Search(context.Background(), domain.SearchFilter{
			Type:   &offer,
			Terms:  []string{"go", "50%"},
			Active: &open,
		})
		require.NoError(t, err)
		require.Len(t, postings, 1)
		assert.Equal(t, domain.PostingTypeOffer, postings[0].Type)
		assert.Equal(t, "Go", postings[0].SkillName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty filter", func(t *testing.T) {
		_, queries, mock := setupMockDB(t)
		repo := NewPostingRepository(queries)

		mock.ExpectQuery(regexp.QuoteMeta("FROM postings p")).
			WithArgs(nil, nil, nil).
			WillReturnRows(sqlmock.NewRows(postingRowColumns))

		postings, err := repo.Search(context.Background(), domain.SearchFilter{})
		require.NoError(t, err)
		assert.Empty(t, postings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostingRepository_Create_UnknownSkill(t *testing.T) {
	_, queries, mock := setupMockDB(t)
	repo := NewPostingRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO postings")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "postings_skill_id_fkey"})

	err := repo.Create(context.Background(), &domain.Posting{
		Type: domain.PostingTypeSeek, Description: "Need help", AuthorID: 1, SkillID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostingRepository_SetActive(t *testing.T) {
	_, queries, mock := setupMockDB(t)
	repo := NewPostingRepository(queries)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE postings SET is_active = $2")).
		WithArgs(int64(4), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(postingRowColumns).
			AddRow(4, "OFFER", "Go lessons", false, fixedTime, fixedTime, 10, 1, "Go"))

	posting, err := repo.SetActive(context.Background(), 4, false)
	require.NoError(t, err)
	assert.False(t, posting.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
