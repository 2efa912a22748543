package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidSkillName   = errors.New("invalid skill name")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidAlias       = errors.New("invalid alias")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidPostingType = errors.New("invalid posting type")
	ErrInvalidDescription = errors.New("invalid posting description")
	ErrInvalidSummary     = errors.New("invalid session summary")
	ErrInvalidBio         = errors.New("invalid profile bio")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrTooManySkills      = errors.New("too many profile skills")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Skill errors
	ErrSkillNotFound = errors.New("skill not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserHasAgreements = errors.New("user is referenced by agreements and cannot be deleted")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Posting errors
	ErrPostingNotFound  = errors.New("posting not found")
	ErrNotPostingAuthor = errors.New("only the author can modify the posting")

	// Agreement errors
	ErrAgreementNotFound        = errors.New("agreement not found")
	ErrInvalidAgreement         = errors.New("an agreement requires two different users and two different skills")
	ErrDuplicateActiveAgreement = errors.New("you already have an active agreement with this person for these skills")
	ErrInvalidTransition        = errors.New("agreement state transition is not allowed")
	ErrInvalidAction            = errors.New("unknown agreement action")
	ErrSelfAcceptance           = errors.New("the proposer cannot accept their own proposal")
	ErrNotParticipant           = errors.New("user is not a participant of the agreement")

	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrAgreementNotOngoing = errors.New("the agreement status must be ongoing")
	ErrPastDate            = errors.New("the date must be today or later")
	ErrDurationOutOfRange  = errors.New("session duration must be between 60 and 240 minutes")

	// Storage errors
	ErrStateConflict = errors.New("agreement state changed concurrently")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidSkillName:         {Code: "INVALID_REQUEST", Message: "skill name is required"},
	ErrInvalidUserID:            {Code: "INVALID_REQUEST", Message: "user id is required"},
	ErrInvalidUsername:          {Code: "INVALID_REQUEST", Message: "username is required"},
	ErrInvalidAlias:             {Code: "INVALID_REQUEST", Message: "alias must be 1-16 characters"},
	ErrInvalidEmail:             {Code: "INVALID_REQUEST", Message: "email is invalid"},
	ErrInvalidPassword:          {Code: "INVALID_REQUEST", Message: "password must be at least 8 characters"},
	ErrInvalidPostingType:       {Code: "INVALID_REQUEST", Message: "posting type must be OFFER or SEEK"},
	ErrInvalidDescription:       {Code: "INVALID_REQUEST", Message: "posting description is required"},
	ErrInvalidSummary:           {Code: "INVALID_REQUEST", Message: "session summary is required and must be at most 200 characters"},
	ErrInvalidBio:               {Code: "INVALID_REQUEST", Message: "profile bio must be at most 200 characters"},
	ErrInvalidTimezone:          {Code: "INVALID_REQUEST", Message: "timezone must be an IANA zone name"},
	ErrTooManySkills:            {Code: "INVALID_REQUEST", Message: "a profile lists at most 20 skills"},
	ErrUnauthorized:             {Code: "UNAUTHORIZED", Message: "authentication required"},
	ErrForbidden:                {Code: "FORBIDDEN", Message: "operation not permitted for this user"},
	ErrSkillNotFound:            {Code: "NOT_FOUND", Message: "skill not found"},
	ErrUserNotFound:             {Code: "NOT_FOUND", Message: "user not found"},
	ErrUserAlreadyExists:        {Code: "USER_EXISTS", Message: "username, alias or email already taken"},
	ErrUserHasAgreements:        {Code: "USER_PROTECTED", Message: "user is referenced by agreements and cannot be deleted"},
	ErrProfileNotFound:          {Code: "NOT_FOUND", Message: "profile not found"},
	ErrPostingNotFound:          {Code: "NOT_FOUND", Message: "posting not found"},
	ErrNotPostingAuthor:         {Code: "FORBIDDEN", Message: "only the author can modify the posting"},
	ErrAgreementNotFound:        {Code: "NOT_FOUND", Message: "agreement not found"},
	ErrInvalidAgreement:         {Code: "INVALID_AGREEMENT", Message: "an agreement requires two different users and two different skills"},
	ErrDuplicateActiveAgreement: {Code: "DUPLICATE_ACTIVE_AGREEMENT", Message: "you already have an active agreement with this person for these skills"},
	ErrInvalidTransition:        {Code: "INVALID_TRANSITION", Message: "agreement state transition is not allowed"},
	ErrInvalidAction:            {Code: "INVALID_ACTION", Message: "action must be one of accept, start, finish, cancel"},
	ErrSelfAcceptance:           {Code: "SELF_ACCEPTANCE", Message: "the proposer cannot accept their own proposal"},
	ErrNotParticipant:           {Code: "NOT_PARTICIPANT", Message: "user is not a participant of the agreement"},
	ErrSessionNotFound:          {Code: "NOT_FOUND", Message: "session not found"},
	ErrAgreementNotOngoing:      {Code: "AGREEMENT_NOT_ONGOING", Message: "the agreement status must be ongoing"},
	ErrPastDate:                 {Code: "PAST_DATE", Message: "the date must be today or later"},
	ErrDurationOutOfRange:       {Code: "DURATION_OUT_OF_RANGE", Message: "session duration must be between 60 and 240 minutes"},
	ErrStateConflict:            {Code: "STATE_CONFLICT", Message: "agreement is being modified concurrently, retry the request"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
