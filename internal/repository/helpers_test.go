package repository

import (
	"database/sql"
	"testing"
	"time"

	"skillswap-service/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	agreementColumns = []string{
		"id", "party_a_id", "party_b_id", "skill_a_id", "skill_b_id", "weeks", "minutes_per_session",
		"sessions_per_week", "conditions", "state", "posting_id", "created_at", "updated_at",
	}
	sessionColumns = []string{
		"id", "agreement_id", "date", "duration_minutes", "summary", "attendance_a", "attendance_b",
		"is_active", "created_at", "updated_at",
	}
	postingRowColumns = []string{
		"id", "type", "description", "is_active", "created_at", "modified_at", "author_id", "skill_id", "skill_name",
	}
	userColumns = []string{
		"id", "username", "alias", "email", "first_name", "last_name", "password_hash", "is_active", "created_at",
	}
)

var fixedTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, *database.Queries, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, database.New(db), mock
}
