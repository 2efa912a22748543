package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.ParseBearer("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	foreign, err := other.Issue(42)
	require.NoError(t, err)

	expiredManager := NewTokenManager("test-secret", time.Minute)
	expiredManager.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredManager.Issue(42)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		header   string
		expected error
	}{
		{"Missing header", "", ErrMissingToken},
		{"Wrong scheme", "Basic abc", ErrInvalidToken},
		{"Garbage", "Bearer not-a-jwt", ErrInvalidToken},
		{"Foreign secret", "Bearer " + foreign, ErrInvalidToken},
		{"Expired", "Bearer " + expired, ErrInvalidToken},
		{"Unsigned", "Bearer " + noneToken, ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.ParseBearer(tc.header)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}
