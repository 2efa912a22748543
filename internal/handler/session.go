package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SessionHandler обрабатывает HTTP-запросы сессий.
type SessionHandler struct {
	*BaseHandler
	sessionUseCase domain.SessionUseCase
}

// NewSessionHandler создает новый экземпляр SessionHandler.
func NewSessionHandler(sessionUseCase domain.SessionUseCase, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionUseCase: sessionUseCase,
	}
}

// CreateSession планирует сессию в соглашении.
func (h *SessionHandler) CreateSession(c echo.Context, agreementID api.AgreementId) error {
	var req api.CreateSessionJSONRequestBody
	if ok, err := h.bindBody(c, &req, "create_session"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "create_session").WithFields(logrus.Fields{
		"agreement_id": agreementID,
		"date":         req.Date.String(),
		"duration":     req.DurationMinutes,
	})
	if _, ok, err := h.requireUser(c, logEntry); !ok {
		return err
	}

	session, err := h.sessionUseCase.CreateSession(c.Request().Context(), agreementID, toSessionInput(req))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create session")
	}

	logEntry.WithField("session_id", session.ID).Info("Session scheduled")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"session": toAPISession(session),
	})
}

// ListAgreementSessions возвращает сессии соглашения.
func (h *SessionHandler) ListAgreementSessions(c echo.Context, agreementID api.AgreementId) error {
	logEntry := h.logRequest(c, "list_agreement_sessions").WithField("agreement_id", agreementID)

	sessions, err := h.sessionUseCase.ListAgreementSessions(c.Request().Context(), agreementID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list agreement sessions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"agreement_id": agreementID,
		"sessions":     toAPISessions(sessions),
	})
}

// ListSessions возвращает сессии всех соглашений пользователя.
func (h *SessionHandler) ListSessions(c echo.Context, params api.ListSessionsParams) error {
	logEntry := h.logRequest(c, "list_user_sessions").WithField("target_user_id", params.UserId)

	sessions, err := h.sessionUseCase.ListUserSessions(c.Request().Context(), params.UserId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list user sessions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":  params.UserId,
		"sessions": toAPISessions(sessions),
	})
}

// GetSession возвращает сессию по ID.
func (h *SessionHandler) GetSession(c echo.Context, sessionID api.SessionId) error {
	logEntry := h.logRequest(c, "get_session").WithField("session_id", sessionID)

	session, err := h.sessionUseCase.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get session")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": toAPISession(session),
	})
}

// UpdateSession перезаписывает сессию с повторной проверкой всех правил.
func (h *SessionHandler) UpdateSession(c echo.Context, sessionID api.SessionId) error {
	var req api.UpdateSessionJSONRequestBody
	if ok, err := h.bindBody(c, &req, "update_session"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "update_session").WithField("session_id", sessionID)
	if _, ok, err := h.requireUser(c, logEntry); !ok {
		return err
	}

	session, err := h.sessionUseCase.UpdateSession(c.Request().Context(), sessionID, toSessionInput(req))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to update session")
	}

	logEntry.Info("Session updated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": toAPISession(session),
	})
}
