package handler

import (
	"skillswap-service/api"
	"skillswap-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*SkillHandler
	*UserHandler
	*ProfileHandler
	*PostingHandler
	*AgreementHandler
	*SessionHandler
	*StatsHandler
	*AdminHandler
}

func NewAPIHandler(
	skillUseCase domain.SkillUseCase,
	userUseCase domain.UserUseCase,
	profileUseCase domain.ProfileUseCase,
	postingUseCase domain.PostingUseCase,
	agreementUseCase domain.AgreementUseCase,
	sessionUseCase domain.SessionUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		SkillHandler:     NewSkillHandler(skillUseCase, logger),
		UserHandler:      NewUserHandler(userUseCase, logger),
		ProfileHandler:   NewProfileHandler(profileUseCase, logger),
		PostingHandler:   NewPostingHandler(postingUseCase, logger),
		AgreementHandler: NewAgreementHandler(agreementUseCase, logger),
		SessionHandler:   NewSessionHandler(sessionUseCase, logger),
		StatsHandler:     NewStatsHandler(statsUseCase, logger),
		AdminHandler:     NewAdminHandler(skillUseCase, agreementUseCase, logger),
	}
}
