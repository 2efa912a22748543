package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистических данных.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetAgreementStats обрабатывает GET запрос количества соглашений по состояниям.
func (h *StatsHandler) GetAgreementStats(c echo.Context) error {
	logEntry := h.logRequest(c, "get_agreement_stats")
	logEntry.Info("Getting agreement statistics")

	stats, err := h.statsUseCase.GetAgreementStats(c.Request().Context())
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get agreement stats")
	}

	result := make([]api.AgreementStateStat, len(stats))
	for i, stat := range stats {
		result[i] = api.AgreementStateStat{
			State: api.AgreementState(stat.State),
			Count: stat.Count,
		}
	}

	logEntry.WithField("stats_count", len(stats)).Info("Agreement stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": result,
	})
}

// GetSkillStats обрабатывает GET запрос самых востребованных навыков.
func (h *StatsHandler) GetSkillStats(c echo.Context, params api.GetSkillStatsParams) error {
	var limit int32
	if params.Limit != nil {
		limit = *params.Limit
	}
	logEntry := h.logRequest(c, "get_skill_stats").WithField("limit", limit)
	logEntry.Info("Getting skill statistics")

	stats, err := h.statsUseCase.GetSkillStats(c.Request().Context(), limit)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get skill stats")
	}

	result := make([]api.SkillStat, len(stats))
	for i, stat := range stats {
		result[i] = api.SkillStat{
			SkillId:        stat.SkillID,
			SkillName:      stat.SkillName,
			PostingCount:   stat.PostingCount,
			AgreementCount: stat.AgreementCount,
		}
	}

	logEntry.WithField("stats_count", len(stats)).Info("Skill stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": result,
	})
}
