package handler

import (
	"errors"
	"net/http"

	"skillswap-service/api"
	"skillswap-service/internal/domain"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPISkill(skill *domain.Skill) api.Skill {
	return api.Skill{
		SkillId:  skill.ID,
		Name:     skill.Name,
		IsActive: skill.IsActive,
	}
}

func toAPISkills(skills []*domain.Skill) []api.Skill {
	result := make([]api.Skill, len(skills))
	for i, skill := range skills {
		result[i] = toAPISkill(skill)
	}
	return result
}

func toAPIProfile(profile *domain.Profile) api.Profile {
	return api.Profile{
		UserId:       profile.UserID,
		Bio:          profile.Bio,
		Timezone:     profile.Timezone,
		Availability: profile.Availability,
		Skills:       toAPISkills(profile.Skills),
		UpdatedAt:    profile.UpdatedAt,
	}
}

// toAPIUser не раскрывает пароль и псевдоним.
func toAPIUser(user *domain.User) api.User {
	return api.User{
		UserId:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

func toAPIPosting(posting *domain.Posting) api.Posting {
	return api.Posting{
		PostingId:   posting.ID,
		Type:        api.PostingType(posting.Type),
		Description: posting.Description,
		IsActive:    posting.IsActive,
		AuthorId:    posting.AuthorID,
		SkillId:     posting.SkillID,
		SkillName:   posting.SkillName,
		CreatedAt:   posting.CreatedAt,
		ModifiedAt:  posting.ModifiedAt,
	}
}

func toAPIPostings(postings []*domain.Posting) []api.Posting {
	result := make([]api.Posting, len(postings))
	for i, posting := range postings {
		result[i] = toAPIPosting(posting)
	}
	return result
}

func toAPIAgreement(agreement *domain.Agreement) api.Agreement {
	return api.Agreement{
		AgreementId:       agreement.ID,
		PartyAId:          agreement.PartyAID,
		PartyBId:          agreement.PartyBID,
		SkillAId:          agreement.SkillAID,
		SkillBId:          agreement.SkillBID,
		Weeks:             agreement.Weeks,
		MinutesPerSession: agreement.MinutesPerSession,
		SessionsPerWeek:   agreement.SessionsPerWeek,
		Conditions:        agreement.Conditions,
		State:             api.AgreementState(agreement.State),
		PostingId:         agreement.PostingID,
		CreatedAt:         agreement.CreatedAt,
		UpdatedAt:         agreement.UpdatedAt,
	}
}

func toAPIAgreements(agreements []*domain.Agreement) []api.Agreement {
	result := make([]api.Agreement, len(agreements))
	for i, agreement := range agreements {
		result[i] = toAPIAgreement(agreement)
	}
	return result
}

func toAPISession(session *domain.Session) api.Session {
	return api.Session{
		SessionId:       session.ID,
		AgreementId:     session.AgreementID,
		Date:            openapi_types.Date{Time: session.Date},
		DurationMinutes: session.DurationMinutes,
		Summary:         session.Summary,
		AttendanceA:     session.AttendanceA,
		AttendanceB:     session.AttendanceB,
		IsActive:        session.IsActive,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
}

func toAPISessions(sessions []*domain.Session) []api.Session {
	result := make([]api.Session, len(sessions))
	for i, session := range sessions {
		result[i] = toAPISession(session)
	}
	return result
}

// toSessionInput переводит тело запроса в доменный ввод. is_active по умолчанию true.
func toSessionInput(req api.SessionInput) domain.SessionInput {
	input := domain.SessionInput{
		Date:            req.Date.Time,
		DurationMinutes: req.DurationMinutes,
		Summary:         req.Summary,
		IsActive:        true,
	}
	if req.AttendanceA != nil {
		input.AttendanceA = *req.AttendanceA
	}
	if req.AttendanceB != nil {
		input.AttendanceB = *req.AttendanceB
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	return input
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case isAny(err, domain.ErrDuplicateActiveAgreement, domain.ErrInvalidTransition,
		domain.ErrAgreementNotOngoing, domain.ErrUserAlreadyExists,
		domain.ErrUserHasAgreements, domain.ErrStateConflict):
		return http.StatusConflict

	// Not Found errors (404)
	case isAny(err, domain.ErrSkillNotFound, domain.ErrUserNotFound,
		domain.ErrPostingNotFound, domain.ErrAgreementNotFound, domain.ErrSessionNotFound,
		domain.ErrProfileNotFound):
		return http.StatusNotFound

	// Forbidden errors (403)
	case isAny(err, domain.ErrSelfAcceptance, domain.ErrNotParticipant,
		domain.ErrNotPostingAuthor, domain.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Bad Request errors (400) - валидация
	case isAny(err, domain.ErrInvalidAgreement, domain.ErrInvalidAction,
		domain.ErrPastDate, domain.ErrDurationOutOfRange, domain.ErrInvalidSummary,
		domain.ErrInvalidSkillName, domain.ErrInvalidUserID, domain.ErrInvalidUsername,
		domain.ErrInvalidAlias, domain.ErrInvalidEmail, domain.ErrInvalidPassword,
		domain.ErrInvalidPostingType, domain.ErrInvalidDescription, domain.ErrInvalidBio,
		domain.ErrInvalidTimezone, domain.ErrTooManySkills):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
