package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ProfileHandler обрабатывает HTTP-запросы к профилям пользователей.
type ProfileHandler struct {
	*BaseHandler
	profileUseCase domain.ProfileUseCase
}

// NewProfileHandler создает новый экземпляр ProfileHandler.
func NewProfileHandler(profileUseCase domain.ProfileUseCase, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(logger),
		profileUseCase: profileUseCase,
	}
}

// GetUserProfile возвращает публичный профиль пользователя.
func (h *ProfileHandler) GetUserProfile(c echo.Context, userID api.UserIdPath) error {
	logEntry := h.logRequest(c, "get_user_profile").WithField("target_user_id", userID)

	profile, err := h.profileUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile": toAPIProfile(profile),
	})
}

// UpdateUserProfile полностью заменяет профиль. Редактировать можно только свой.
func (h *ProfileHandler) UpdateUserProfile(c echo.Context, userID api.UserIdPath) error {
	var req api.UpdateUserProfileJSONRequestBody
	if ok, err := h.bindBody(c, &req, "update_user_profile"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "update_user_profile").WithFields(logrus.Fields{
		"target_user_id": userID,
		"skills":         len(req.Skills),
	})
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}
	if actorID != userID {
		return h.respondError(c, logEntry, domain.ErrForbidden, "Refused to edit another profile")
	}

	profile, err := h.profileUseCase.UpdateProfile(c.Request().Context(), userID, domain.ProfileInput{
		Bio:          req.Bio,
		Timezone:     req.Timezone,
		Availability: req.Availability,
		Skills:       req.Skills,
	})
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to update profile")
	}

	logEntry.Info("Profile updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile": toAPIProfile(profile),
	})
}
