package handler

import (
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AgreementHandler обрабатывает HTTP-запросы соглашений.
type AgreementHandler struct {
	*BaseHandler
	agreementUseCase domain.AgreementUseCase
}

// NewAgreementHandler создает новый экземпляр AgreementHandler.
func NewAgreementHandler(agreementUseCase domain.AgreementUseCase, logger *logrus.Logger) *AgreementHandler {
	return &AgreementHandler{
		BaseHandler:      NewBaseHandler(logger),
		agreementUseCase: agreementUseCase,
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt32(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

// CreateAgreement предлагает соглашение. Текущий пользователь становится стороной B.
func (h *AgreementHandler) CreateAgreement(c echo.Context) error {
	var req api.CreateAgreementJSONRequestBody
	if ok, err := h.bindBody(c, &req, "create_agreement"); !ok {
		return err
	}

	logEntry := h.logRequest(c, "create_agreement").WithFields(logrus.Fields{
		"party_a_id": derefInt64(req.PartyAId),
		"posting_id": derefInt64(req.PostingId),
	})
	proposerID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}

	input := domain.AgreementInput{
		PartyAID:          derefInt64(req.PartyAId),
		PartyBID:          proposerID,
		SkillAID:          derefInt64(req.SkillAId),
		SkillBID:          derefInt64(req.SkillBId),
		Weeks:             derefInt32(req.Weeks),
		MinutesPerSession: derefInt32(req.MinutesPerSession),
		SessionsPerWeek:   derefInt32(req.SessionsPerWeek),
		PostingID:         req.PostingId,
	}
	if req.Conditions != nil {
		input.Conditions = *req.Conditions
	}

	logEntry.Info("Creating agreement")

	agreement, err := h.agreementUseCase.CreateAgreement(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create agreement")
	}

	logEntry.WithField("agreement_id", agreement.ID).Info("Agreement proposed")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"agreement": toAPIAgreement(agreement),
	})
}

// ListAgreements возвращает соглашения, где пользователь является любой из сторон.
func (h *AgreementHandler) ListAgreements(c echo.Context, params api.ListAgreementsParams) error {
	logEntry := h.logRequest(c, "list_agreements").WithField("target_user_id", params.UserId)

	agreements, err := h.agreementUseCase.ListUserAgreements(c.Request().Context(), params.UserId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list agreements")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":    params.UserId,
		"agreements": toAPIAgreements(agreements),
	})
}

// GetAgreement возвращает соглашение по ID.
func (h *AgreementHandler) GetAgreement(c echo.Context, agreementID api.AgreementId) error {
	logEntry := h.logRequest(c, "get_agreement").WithField("agreement_id", agreementID)

	agreement, err := h.agreementUseCase.GetAgreement(c.Request().Context(), agreementID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get agreement")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"agreement": toAPIAgreement(agreement),
	})
}

// TransitionAgreement применяет действие accept, start, finish или cancel.
func (h *AgreementHandler) TransitionAgreement(c echo.Context, agreementID api.AgreementId, action string) error {
	logEntry := h.logRequest(c, "transition_agreement").WithFields(logrus.Fields{
		"agreement_id": agreementID,
		"action":       action,
	})
	actorID, ok, err := h.requireUser(c, logEntry)
	if !ok {
		return err
	}

	parsed, err := domain.ParseAgreementAction(action)
	if err != nil {
		return h.respondError(c, logEntry, err, "Unknown agreement action")
	}

	agreement, err := h.agreementUseCase.Transition(c.Request().Context(), agreementID, parsed, actorID)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to transition agreement")
	}

	logEntry.WithField("state", agreement.State).Info("Agreement transitioned")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"agreement": toAPIAgreement(agreement),
	})
}
