package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// CreateUser регистрирует пользователя.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req api.CreateUserJSONRequestBody
	if ok, err := h.bindBody(c, &req, "create_user"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "create_user").WithField("username", req.Username)
	logEntry.Info("Creating user")

	input := domain.NewUser{
		Username: req.Username,
		Alias:    req.Alias,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.FirstName != nil {
		input.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		input.LastName = *req.LastName
	}

	user, err := h.userUseCase.CreateUser(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create user")
	}

	logEntry.WithField("user_id", user.ID).Info("User created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// ListUsers возвращает всех пользователей.
func (h *UserHandler) ListUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list users")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": toAPIUsers(users),
	})
}

// GetUser возвращает пользователя по ID.
func (h *UserHandler) GetUser(c echo.Context, userID api.UserIdPath) error {
	logEntry := h.logRequest(c, "get_user").WithField("target_user_id", userID)

	user, err := h.userUseCase.GetUser(c.Request().Context(), userID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// SetUserActive обрабатывает запрос для установки статуса активности пользователя.
// Пользователь меняет только собственный статус.
func (h *UserHandler) SetUserActive(c echo.Context, userID api.UserIdPath) error {
	var req api.SetUserActiveJSONRequestBody
	if ok, err := h.bindBody(c, &req, "set_user_active"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "set_user_active").WithFields(logrus.Fields{
		"target_user_id": userID,
		"is_active":      req.IsActive,
	})
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}
	if actorID != userID {
		return h.respondError(c, logEntry, domain.ErrForbidden, "Refused to change another user")
	}

	logEntry.Info("Setting user active status")

	user, err := h.userUseCase.SetUserActive(c.Request().Context(), userID, req.IsActive)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to set user active status")
	}

	logEntry.Info("User active status updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// DeleteUser удаляет собственную учетную запись. Пользователь, участвующий в соглашениях, защищен.
func (h *UserHandler) DeleteUser(c echo.Context, userID api.UserIdPath) error {
	logEntry := h.logRequest(c, "delete_user").WithField("target_user_id", userID)
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}
	if actorID != userID {
		return h.respondError(c, logEntry, domain.ErrForbidden, "Refused to delete another user")
	}

	if err := h.userUseCase.DeleteUser(c.Request().Context(), userID); err != nil {
		return h.respondError(c, logEntry, err, "Failed to delete user")
	}

	logEntry.Info("User deleted")
	return c.NoContent(http.StatusNoContent)
}
