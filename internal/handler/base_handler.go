package handler

import (
	"net/http"

	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	fields := logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	}
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		fields["request_id"] = requestID
	}
	if userID, ok := CurrentUserID(c); ok {
		fields["user_id"] = userID
	}
	return h.logger.WithFields(fields)
}

// respondError пишет ответ по таблице доменных ошибок. Неизвестные ошибки логируются как 500.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, message string) error {
	status := getHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		logEntry.WithError(err).Error(message)
	} else {
		logEntry.WithError(err).Warn(message)
	}

	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(status, toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}

// bindBody разбирает JSON тело запроса и отвечает 400 при ошибке.
func (h *BaseHandler) bindBody(c echo.Context, dest interface{}, operation string) (bool, error) {
	if err := c.Bind(dest); err != nil {
		h.logger.WithError(err).WithField("operation", operation).Warn("Failed to bind request body")
		return false, c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "malformed request body"))
	}
	return true, nil
}

// requireUser возвращает аутентифицированного пользователя или пишет 401.
func (h *BaseHandler) requireUser(c echo.Context, logEntry *logrus.Entry) (int64, bool, error) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return 0, false, h.respondError(c, logEntry, domain.ErrUnauthorized, "Authentication required")
	}
	return userID, true, nil
}
