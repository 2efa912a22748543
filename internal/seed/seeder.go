package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap-service/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
)

// Options объем генерируемых данных.
type Options struct {
	Users              int
	PostingsPerUser    int
	Agreements         int
	SessionsPerOngoing int
	Password           string
	// Seed фиксирует генератор; 0 означает случайное зерно.
	Seed int64
}

// DefaultOptions значения по умолчанию для команды seed.
func DefaultOptions() Options {
	return Options{
		Users:              20,
		PostingsPerUser:    2,
		Agreements:         15,
		SessionsPerOngoing: 2,
		Password:           "password123",
	}
}

// Result созданные записи.
type Result struct {
	Skills     []*domain.Skill
	Users      []*domain.User
	Postings   []*domain.Posting
	Agreements []*domain.Agreement
	Sessions   []*domain.Session
}

// Seeder создает данные через usecase-слой.
type Seeder struct {
	skills     domain.SkillUseCase
	users      domain.UserUseCase
	postings   domain.PostingUseCase
	agreements domain.AgreementUseCase
	sessions   domain.SessionUseCase
	logger     *logrus.Logger
	now        func() time.Time
}

// NewSeeder создает новый экземпляр Seeder.
func NewSeeder(
	skills domain.SkillUseCase,
	users domain.UserUseCase,
	postings domain.PostingUseCase,
	agreements domain.AgreementUseCase,
	sessions domain.SessionUseCase,
	logger *logrus.Logger,
	now func() time.Time,
) *Seeder {
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		skills:     skills,
		users:      users,
		postings:   postings,
		agreements: agreements,
		sessions:   sessions,
		logger:     logger,
		now:        now,
	}
}

// targetStates циклически распределяет соглашения по всем состояниям жизненного цикла.
var targetStates = []domain.AgreementState{
	domain.AgreementStateProposed,
	domain.AgreementStateAccepted,
	domain.AgreementStateOngoing,
	domain.AgreementStateFinished,
	domain.AgreementStateCanceled,
}

// actionsTo последовательность действий из PROPOSED в целевое состояние.
func actionsTo(state domain.AgreementState) []domain.AgreementAction {
	switch state {
	case domain.AgreementStateAccepted:
		return []domain.AgreementAction{domain.AgreementActionAccept}
	case domain.AgreementStateOngoing:
		return []domain.AgreementAction{domain.AgreementActionAccept, domain.AgreementActionStart}
	case domain.AgreementStateFinished:
		return []domain.AgreementAction{domain.AgreementActionAccept, domain.AgreementActionStart, domain.AgreementActionFinish}
	case domain.AgreementStateCanceled:
		return []domain.AgreementAction{domain.AgreementActionCancel}
	default:
		return nil
	}
}

// Run создает навыки, пользователей, публикации, соглашения во всех состояниях
// и сессии для соглашений в статусе ONGOING.
func (s *Seeder) Run(ctx context.Context, fixture Fixture, opts Options) (*Result, error) {
	faker := gofakeit.New(opts.Seed)
	result := &Result{}

	// 1. Навыки
	for _, name := range fixture.Skills {
		skill, err := s.skills.GetOrCreate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to seed skill %q: %w", name, err)
		}
		result.Skills = append(result.Skills, skill)
	}
	s.logger.WithField("count", len(result.Skills)).Info("Skills seeded")

	// 2. Пользователи; суффикс прогона позволяет запускать наполнение повторно
	runTag := strings.ToLower(faker.LetterN(4))
	for i := 0; i < opts.Users; i++ {
		firstName := faker.FirstName()
		user, err := s.users.CreateUser(ctx, domain.NewUser{
			Username:  fmt.Sprintf("%s_%s%d", strings.ToLower(faker.Username()), runTag, i),
			Alias:     fmt.Sprintf("%s%d", runTag, i),
			Email:     fmt.Sprintf("%s.%d.%s@example.com", strings.ToLower(firstName), i, runTag),
			FirstName: firstName,
			LastName:  faker.LastName(),
			Password:  opts.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed user: %w", err)
		}
		result.Users = append(result.Users, user)
	}
	s.logger.WithField("count", len(result.Users)).Info("Users seeded")

	if len(result.Users) < 2 {
		return result, nil
	}

	// 3. Публикации
	for _, user := range result.Users {
		for j := 0; j < opts.PostingsPerUser; j++ {
			postingType := domain.PostingTypeOffer
			if j%2 == 1 {
				postingType = domain.PostingTypeSeek
			}
			skill := result.Skills[faker.Number(0, len(result.Skills)-1)]

			posting, err := s.postings.CreatePosting(ctx, user.ID, domain.PostingInput{
				Type:        postingType,
				Description: faker.Sentence(10),
				SkillID:     skill.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to seed posting: %w", err)
			}
			result.Postings = append(result.Postings, posting)
		}
	}
	s.logger.WithField("count", len(result.Postings)).Info("Postings seeded")

	// 4. Соглашения во всех состояниях
	for i := 0; i < opts.Agreements; i++ {
		partyA := result.Users[i%len(result.Users)]
		partyB := result.Users[(i+1)%len(result.Users)]
		skillA := faker.Number(0, len(result.Skills)-1)
		skillB := (skillA + faker.Number(1, len(result.Skills)-1)) % len(result.Skills)

		agreement, err := s.agreements.CreateAgreement(ctx, domain.AgreementInput{
			PartyAID:          partyA.ID,
			PartyBID:          partyB.ID,
			SkillAID:          result.Skills[skillA].ID,
			SkillBID:          result.Skills[skillB].ID,
			Weeks:             int32(faker.Number(1, 8)),
			MinutesPerSession: int32(faker.RandomInt([]int{60, 90, 120})),
			SessionsPerWeek:   int32(faker.Number(1, 3)),
			Conditions:        faker.Sentence(6),
		})
		if errors.Is(err, domain.ErrDuplicateActiveAgreement) {
			s.logger.WithField("party_a_id", partyA.ID).Debug("Skipping duplicate agreement")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to seed agreement: %w", err)
		}

		for _, action := range actionsTo(targetStates[i%len(targetStates)]) {
			actor := partyB.ID
			if action == domain.AgreementActionAccept {
				actor = partyA.ID
			}
			moved, err := s.agreements.Transition(ctx, agreement.ID, action, actor)
			if err != nil {
				return nil, fmt.Errorf("failed to %s seeded agreement %d: %w", action, agreement.ID, err)
			}
			agreement = moved
		}
		result.Agreements = append(result.Agreements, agreement)
	}
	s.logger.WithField("count", len(result.Agreements)).Info("Agreements seeded")

	// 5. Сессии только для ONGOING
	today := domain.DateOnly(s.now())
	for _, agreement := range result.Agreements {
		if agreement.State != domain.AgreementStateOngoing {
			continue
		}
		for k := 0; k < opts.SessionsPerOngoing; k++ {
			session, err := s.sessions.CreateSession(ctx, agreement.ID, domain.SessionInput{
				Date:            today.AddDate(0, 0, 7*(k+1)),
				DurationMinutes: agreement.MinutesPerSession,
				Summary:         faker.Sentence(5),
				IsActive:        true,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to seed session for agreement %d: %w", agreement.ID, err)
			}
			result.Sessions = append(result.Sessions, session)
		}
	}
	s.logger.WithField("count", len(result.Sessions)).Info("Sessions seeded")

	return result, nil
}
