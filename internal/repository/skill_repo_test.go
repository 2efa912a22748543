package repository

import (
	"context"
	"regexp"
	"testing"

	"skillswap-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRepository_CreateIfNotExists(t *testing.T) {
	_, queries, mock := setupMockDB(t)
	repo := NewSkillRepository(queries)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO skills (name) VALUES ($1) ON CONFLICT DO NOTHING")).
		WithArgs("Python").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
		WithArgs("Python").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).AddRow(3, "Python", true))

	skill, err := repo.CreateIfNotExists(context.Background(), "Python")
	require.NoError(t, err)
	assert.Equal(t, int64(3), skill.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_SetActive_NotFound(t *testing.T) {
	_, queries, mock := setupMockDB(t)
	repo := NewSkillRepository(queries)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE skills SET is_active = $2 WHERE id = $1")).
		WithArgs(int64(9), false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}))

	skill, err := repo.SetActive(context.Background(), 9, false)
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)
	assert.Nil(t, skill)
	assert.NoError(t, mock.ExpectationsWereMet())
}
