package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillswap-service/api"
	"skillswap-service/internal/auth"
	"skillswap-service/internal/handler"
	"skillswap-service/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "admin-secret"

var fixedTime = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

type testServer struct {
	echo       *echo.Echo
	tokens     *auth.TokenManager
	skills     *mocks.SkillUseCase
	users      *mocks.UserUseCase
	profiles   *mocks.ProfileUseCase
	postings   *mocks.PostingUseCase
	agreements *mocks.AgreementUseCase
	sessions   *mocks.SessionUseCase
	stats      *mocks.StatsUseCase
}

func newTestServer(t *testing.T) *testServer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := &testServer{
		echo:       echo.New(),
		tokens:     auth.NewTokenManager("handler-test-secret", time.Hour),
		skills:     mocks.NewSkillUseCase(t),
		users:      mocks.NewUserUseCase(t),
		profiles:   mocks.NewProfileUseCase(t),
		postings:   mocks.NewPostingUseCase(t),
		agreements: mocks.NewAgreementUseCase(t),
		sessions:   mocks.NewSessionUseCase(t),
		stats:      mocks.NewStatsUseCase(t),
	}

	s.echo.Use(handler.LoggingMiddleware(logger))
	s.echo.Use(handler.AuthMiddleware(s.tokens))
	s.echo.Use(handler.AdminMiddleware(testAdminToken))

	apiHandler := handler.NewAPIHandler(s.skills, s.users, s.profiles, s.postings, s.agreements, s.sessions, s.stats, logger)
	api.RegisterHandlers(s.echo, apiHandler)
	return s
}

type requestOption func(*http.Request)

func asUser(t *testing.T, s *testServer, userID int64) requestOption {
	token, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func withHeader(key, value string) requestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
