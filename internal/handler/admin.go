package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AdminHandler обрабатывает административные удаления. Доступ проверяет AdminMiddleware.
type AdminHandler struct {
	*BaseHandler
	skillUseCase     domain.SkillUseCase
	agreementUseCase domain.AgreementUseCase
}

// NewAdminHandler создает новый экземпляр AdminHandler.
func NewAdminHandler(
	skillUseCase domain.SkillUseCase,
	agreementUseCase domain.AgreementUseCase,
	logger *logrus.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      NewBaseHandler(logger),
		skillUseCase:     skillUseCase,
		agreementUseCase: agreementUseCase,
	}
}

// AdminDeleteSkill удаляет навык вместе с публикациями и соглашениями.
func (h *AdminHandler) AdminDeleteSkill(c echo.Context, skillID api.SkillId) error {
	logEntry := h.logRequest(c, "admin_delete_skill").WithField("skill_id", skillID)

	if err := h.skillUseCase.Delete(c.Request().Context(), skillID); err != nil {
		return h.respondError(c, logEntry, err, "Failed to delete skill")
	}

	logEntry.Warn("Skill deleted by admin")
	return c.NoContent(http.StatusNoContent)
}

// AdminDeleteAgreement удаляет соглашение вместе с сессиями.
func (h *AdminHandler) AdminDeleteAgreement(c echo.Context, agreementID api.AgreementId) error {
	logEntry := h.logRequest(c, "admin_delete_agreement").WithField("agreement_id", agreementID)

	if err := h.agreementUseCase.DeleteAgreement(c.Request().Context(), agreementID); err != nil {
		return h.respondError(c, logEntry, err, "Failed to delete agreement")
	}

	logEntry.Warn("Agreement deleted by admin")
	return c.NoContent(http.StatusNoContent)
}
