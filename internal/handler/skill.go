package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SkillHandler обрабатывает HTTP-запросы каталога навыков.
type SkillHandler struct {
	*BaseHandler
	skillUseCase domain.SkillUseCase
}

// NewSkillHandler создает новый экземпляр SkillHandler.
func NewSkillHandler(skillUseCase domain.SkillUseCase, logger *logrus.Logger) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  NewBaseHandler(logger),
		skillUseCase: skillUseCase,
	}
}

// ListSkills возвращает активные навыки.
func (h *SkillHandler) ListSkills(c echo.Context) error {
	logEntry := h.logRequest(c, "list_skills")

	skills, err := h.skillUseCase.ListActive(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list skills")
	}

	logEntry.WithField("skills_count", len(skills)).Debug("Skills listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"skills": toAPISkills(skills),
	})
}

// CreateSkill находит навык по имени без учета регистра или создает его.
func (h *SkillHandler) CreateSkill(c echo.Context) error {
	var req api.CreateSkillJSONRequestBody
	if ok, err := h.bindBody(c, &req, "create_skill"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "create_skill").WithField("skill_name", req.Name)

	skill, err := h.skillUseCase.GetOrCreate(c.Request().Context(), req.Name)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get or create skill")
	}

	logEntry.WithField("skill_id", skill.ID).Info("Skill resolved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"skill": toAPISkill(skill),
	})
}

// DeactivateSkill скрывает навык из каталога.
func (h *SkillHandler) DeactivateSkill(c echo.Context, skillID api.SkillId) error {
	logEntry := h.logRequest(c, "deactivate_skill").WithField("skill_id", skillID)
	if _, ok, err := h.requireUser(c, logEntry); !ok {
		return err
	}

	skill, err := h.skillUseCase.Deactivate(c.Request().Context(), skillID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to deactivate skill")
	}

	logEntry.Info("Skill deactivated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"skill": toAPISkill(skill),
	})
}
