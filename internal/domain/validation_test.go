package domain_test

import (
	"strings"
	"testing"
	"time"

	"skillswap-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateAgreement(t *testing.T) {
	valid := domain.AgreementInput{PartyAID: 1, PartyBID: 2, SkillAID: 3, SkillBID: 4, Weeks: 4, MinutesPerSession: 60, SessionsPerWeek: 2}

	testCases := []struct {
		name     string
		mutate   func(in *domain.AgreementInput)
		expected error
	}{
		{"Valid", func(in *domain.AgreementInput) {}, nil},
		{"Self trade", func(in *domain.AgreementInput) { in.PartyBID = in.PartyAID }, domain.ErrInvalidAgreement},
		{"Same skill", func(in *domain.AgreementInput) { in.SkillBID = in.SkillAID }, domain.ErrInvalidAgreement},
		{"Negative weeks", func(in *domain.AgreementInput) { in.Weeks = -1 }, domain.ErrInvalidAgreement},
		{"Zero minutes", func(in *domain.AgreementInput) { in.MinutesPerSession = 0 }, domain.ErrInvalidAgreement},
		{"Missing party", func(in *domain.AgreementInput) { in.PartyAID = 0 }, domain.ErrInvalidUserID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			err := domain.ValidateAgreement(input)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestApplyAgreementDefaults(t *testing.T) {
	input := domain.AgreementInput{Weeks: 3}
	domain.ApplyAgreementDefaults(&input)

	assert.Equal(t, int32(3), input.Weeks)
	assert.Equal(t, int32(60), input.MinutesPerSession)
	assert.Equal(t, int32(1), input.SessionsPerWeek)
}

func TestValidateSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ongoing := newAgreement(domain.AgreementStateOngoing)

	testCases := []struct {
		name      string
		agreement *domain.Agreement
		input     domain.SessionInput
		expected  error
	}{
		{"Today lower bound", ongoing, domain.SessionInput{Date: today, DurationMinutes: 60, Summary: "Intro"}, nil},
		{"Upper bound", ongoing, domain.SessionInput{Date: today.AddDate(0, 0, 7), DurationMinutes: 240, Summary: "Review"}, nil},
		{"Yesterday", ongoing, domain.SessionInput{Date: today.AddDate(0, 0, -1), DurationMinutes: 60}, domain.ErrPastDate},
		{"Too short", ongoing, domain.SessionInput{Date: today, DurationMinutes: 59}, domain.ErrDurationOutOfRange},
		{"Too long", ongoing, domain.SessionInput{Date: today, DurationMinutes: 241}, domain.ErrDurationOutOfRange},
		{"Long summary", ongoing, domain.SessionInput{Date: today, DurationMinutes: 90, Summary: strings.Repeat("a", 201)}, domain.ErrInvalidSummary},
		{"Max summary", ongoing, domain.SessionInput{Date: today, DurationMinutes: 90, Summary: strings.Repeat("я", 200)}, nil},
		{"Empty summary", ongoing, domain.SessionInput{Date: today, DurationMinutes: 90}, domain.ErrInvalidSummary},
		{"Blank summary", ongoing, domain.SessionInput{Date: today, DurationMinutes: 90, Summary: "   "}, domain.ErrInvalidSummary},
		{"Accepted agreement", newAgreement(domain.AgreementStateAccepted), domain.SessionInput{Date: today, DurationMinutes: 60}, domain.ErrAgreementNotOngoing},
		{"Finished agreement", newAgreement(domain.AgreementStateFinished), domain.SessionInput{Date: today, DurationMinutes: 60}, domain.ErrAgreementNotOngoing},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateSession(tc.agreement, tc.input, now)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateProfile(t *testing.T) {
	testCases := []struct {
		name     string
		input    domain.ProfileInput
		expected error
	}{
		{"Valid", domain.ProfileInput{Bio: "Gopher", Timezone: "America/Bogota", Skills: []string{"Go"}}, nil},
		{"Max bio", domain.ProfileInput{Bio: strings.Repeat("я", 200), Timezone: domain.DefaultTimezone}, nil},
		{"Long bio", domain.ProfileInput{Bio: strings.Repeat("a", 201), Timezone: domain.DefaultTimezone}, domain.ErrInvalidBio},
		{"Unknown timezone", domain.ProfileInput{Timezone: "Mars/Olympus"}, domain.ErrInvalidTimezone},
		{"Local timezone", domain.ProfileInput{Timezone: "Local"}, domain.ErrInvalidTimezone},
		{"Empty timezone", domain.ProfileInput{}, domain.ErrInvalidTimezone},
		{"Too many skills", domain.ProfileInput{Timezone: "UTC", Skills: make([]string, 21)}, domain.ErrTooManySkills},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateProfile(tc.input)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateNewUser(t *testing.T) {
	valid := domain.NewUser{Username: "paco", Alias: "pacogamer30", Email: "paco@test.com", Password: "supersecret"}
	assert.NoError(t, domain.ValidateNewUser(valid))

	longAlias := valid
	longAlias.Alias = "aliasthatistoolong"
	assert.ErrorIs(t, domain.ValidateNewUser(longAlias), domain.ErrInvalidAlias)

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, domain.ValidateNewUser(badEmail), domain.ErrInvalidEmail)

	shortPassword := valid
	shortPassword.Password = "1234"
	assert.ErrorIs(t, domain.ValidateNewUser(shortPassword), domain.ErrInvalidPassword)
}

func TestNormalizeSkillName(t *testing.T) {
	assert.Equal(t, "Python", domain.NormalizeSkillName("python"))
	assert.Equal(t, "Python", domain.NormalizeSkillName("  PYTHON "))
	assert.Equal(t, "Machine Learning", domain.NormalizeSkillName("machine   learning"))
	assert.Equal(t, "", domain.NormalizeSkillName("   "))
}
