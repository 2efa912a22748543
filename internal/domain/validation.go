package domain

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinSessionMinutes  = 60
	MaxSessionMinutes  = 240
	MaxSessionSummary  = 200
	MaxAliasLength     = 16
	MinPasswordLength  = 8
	MaxSkillNameLength = 100
)

// ApplyAgreementDefaults подставляет значения по умолчанию для нулевых числовых полей.
func ApplyAgreementDefaults(input *AgreementInput) {
	if input.Weeks == 0 {
		input.Weeks = DefaultWeeks
	}
	if input.MinutesPerSession == 0 {
		input.MinutesPerSession = DefaultMinutesPerSession
	}
	if input.SessionsPerWeek == 0 {
		input.SessionsPerWeek = DefaultSessionsPerWeek
	}
}

// ValidateAgreement проверяет инварианты соглашения перед записью.
func ValidateAgreement(input AgreementInput) error {
	if input.PartyAID <= 0 || input.PartyBID <= 0 {
		return ErrInvalidUserID
	}
	if input.PartyAID == input.PartyBID {
		return ErrInvalidAgreement
	}
	if input.SkillAID == input.SkillBID {
		return ErrInvalidAgreement
	}
	if input.Weeks <= 0 || input.MinutesPerSession <= 0 || input.SessionsPerWeek <= 0 {
		return ErrInvalidAgreement
	}
	return nil
}

// DateOnly отбрасывает время: дата берется в часовом поясе значения, результат в UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateSession проверяет сессию в том виде, в котором она будет сохранена.
// Проверка выполняется и при создании, и при каждом изменении.
func ValidateSession(agreement *Agreement, input SessionInput, now time.Time) error {
	if agreement.State != AgreementStateOngoing {
		return ErrAgreementNotOngoing
	}
	if DateOnly(input.Date).Before(DateOnly(now)) {
		return ErrPastDate
	}
	if input.DurationMinutes < MinSessionMinutes || input.DurationMinutes > MaxSessionMinutes {
		return ErrDurationOutOfRange
	}
	summary := strings.TrimSpace(input.Summary)
	if summary == "" || utf8.RuneCountInString(summary) > MaxSessionSummary {
		return ErrInvalidSummary
	}
	return nil
}

// ValidateNewUser проверяет регистрационные данные.
func ValidateNewUser(input NewUser) error {
	if strings.TrimSpace(input.Username) == "" {
		return ErrInvalidUsername
	}
	alias := strings.TrimSpace(input.Alias)
	if alias == "" || utf8.RuneCountInString(alias) > MaxAliasLength {
		return ErrInvalidAlias
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return ErrInvalidEmail
	}
	if len(input.Password) < MinPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateProfile проверяет профиль после нормализации пробелов.
// Пустой часовой пояс означает DefaultTimezone и сюда не попадает.
func ValidateProfile(input ProfileInput) error {
	if utf8.RuneCountInString(input.Bio) > MaxProfileBio {
		return ErrInvalidBio
	}
	if len(input.Timezone) > MaxTimezoneLength || input.Timezone == "Local" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(input.Timezone); err != nil || input.Timezone == "" {
		return ErrInvalidTimezone
	}
	if len(input.Skills) > MaxProfileSkills {
		return ErrTooManySkills
	}
	return nil
}

// ValidatePosting проверяет поля публикации.
func ValidatePosting(input PostingInput) error {
	if input.Type != PostingTypeOffer && input.Type != PostingTypeSeek {
		return ErrInvalidPostingType
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrInvalidDescription
	}
	if input.SkillID <= 0 {
		return ErrSkillNotFound
	}
	return nil
}
