package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"skillswap-service/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	userIDContextKey = "user_id"
	adminTokenHeader = "X-Admin-Token"
	adminPathPrefix  = "/admin/"
)

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)
			if err != nil {
				// echo.HTTPError от обертки api пишется здесь, чтобы статус попал в лог
				c.Error(err)
			}

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"route":      c.Path(),
				"status":     status,
				"latency":    latency,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if userID, ok := CurrentUserID(c); ok {
				entry = entry.WithField("user_id", userID)
			}
			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return nil
		}
	}
}

// AuthMiddleware разбирает Bearer токен, если он передан, и кладет ID пользователя в контекст.
// Запрос без заголовка проходит дальше; обязательность проверяют обработчики.
func AuthMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			userID, err := tokens.ParseBearer(header)
			if err != nil {
				message := "invalid or expired token"
				if errors.Is(err, auth.ErrMissingToken) {
					message = "authorization header required"
				}
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", message))
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// AdminMiddleware закрывает маршруты /admin/ статическим токеном из заголовка X-Admin-Token.
// Пустой настроенный токен отключает административные маршруты.
func AdminMiddleware(adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Path(), adminPathPrefix) {
				return next(c)
			}

			provided := c.Request().Header.Get(adminTokenHeader)
			if adminToken == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
				return c.JSON(http.StatusForbidden, toErrorResponse("FORBIDDEN", "admin token required"))
			}

			return next(c)
		}
	}
}

// CurrentUserID возвращает ID пользователя, установленный AuthMiddleware.
func CurrentUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(userIDContextKey).(int64)
	return userID, ok && userID > 0
}
