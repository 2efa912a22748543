package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"skillswap-service/internal/config"
	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
	"skillswap-service/internal/repository"
	"skillswap-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

// RepositoryIntegrationSuite проверяет ограничения схемы на настоящем Postgres.
type RepositoryIntegrationSuite struct {
	suite.Suite
	db         *sql.DB
	skills     domain.SkillRepository
	users      domain.UserRepository
	postings   domain.PostingRepository
	agreements domain.AgreementRepository
	sessions   domain.SessionRepository
	stats      domain.StatsRepository
	profiles   domain.ProfileRepository
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	cfg, err := config.LoadConfig()
	if err != nil && !errors.Is(err, config.ErrDotEnvNotLoaded) {
		s.T().Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	s.Require().NoError(err)
	s.db = db

	queries := database.New(db)
	s.skills = repository.NewSkillRepository(queries)
	s.users = repository.NewUserRepository(queries)
	s.postings = repository.NewPostingRepository(queries)
	s.agreements = repository.NewAgreementRepository(queries)
	s.sessions = repository.NewSessionRepository(db, queries)
	s.stats = repository.NewStatsRepository(queries)
	s.profiles = repository.NewProfileRepository(db, queries)
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.db.ExecContext(context.Background(),
		"TRUNCATE profile_skills, profiles, sessions, agreements, postings, skills, users RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *RepositoryIntegrationSuite) createUser(name string) *domain.User {
	user := &domain.User{
		Username:     name,
		Alias:        name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	}
	s.Require().NoError(s.users.Create(context.Background(), user))
	return user
}

func (s *RepositoryIntegrationSuite) createAgreement(a, b *domain.User, skillA, skillB *domain.Skill) *domain.Agreement {
	agreement := &domain.Agreement{
		PartyAID:          a.ID,
		PartyBID:          b.ID,
		SkillAID:          skillA.ID,
		SkillBID:          skillB.ID,
		Weeks:             1,
		MinutesPerSession: 60,
		SessionsPerWeek:   1,
		State:             domain.AgreementStateProposed,
	}
	s.Require().NoError(s.agreements.Create(context.Background(), agreement))
	return agreement
}

func (s *RepositoryIntegrationSuite) fixtures() (*domain.User, *domain.User, *domain.Skill, *domain.Skill) {
	ctx := context.Background()
	a := s.createUser("alice")
	b := s.createUser("bob")
	goSkill, err := s.skills.CreateIfNotExists(ctx, "Go")
	s.Require().NoError(err)
	chess, err := s.skills.CreateIfNotExists(ctx, "Chess")
	s.Require().NoError(err)
	return a, b, goSkill, chess
}

func (s *RepositoryIntegrationSuite) TestSkillNamesAreCaseInsensitive() {
	ctx := context.Background()

	first, err := s.skills.CreateIfNotExists(ctx, "Python")
	s.Require().NoError(err)
	second, err := s.skills.CreateIfNotExists(ctx, "PYTHON")
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("Python", second.Name)
}

func (s *RepositoryIntegrationSuite) TestUniqueActiveAgreementIndex() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()

	first := s.createAgreement(a, b, goSkill, chess)

	duplicate := &domain.Agreement{
		PartyAID: a.ID, PartyBID: b.ID, SkillAID: goSkill.ID, SkillBID: chess.ID,
		Weeks: 1, MinutesPerSession: 60, SessionsPerWeek: 1, State: domain.AgreementStateProposed,
	}
	s.ErrorIs(s.agreements.Create(ctx, duplicate), domain.ErrDuplicateActiveAgreement)

	// После отмены кортеж снова свободен
	_, err := s.agreements.UpdateState(ctx, first.ID, domain.AgreementStateProposed, domain.AgreementStateCanceled)
	s.Require().NoError(err)
	s.NoError(s.agreements.Create(ctx, duplicate))
}

func (s *RepositoryIntegrationSuite) TestConcurrentTransitionsOnlyOneWins() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()
	agreement := s.createAgreement(a, b, goSkill, chess)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.agreements.UpdateState(ctx, agreement.ID, domain.AgreementStateProposed, domain.AgreementStateAccepted)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, domain.ErrStateConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(workers-1, conflicts)
}

func (s *RepositoryIntegrationSuite) TestConcurrentCreatesOnlyOneWins() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()
	uc := usecase.NewAgreementUseCase(s.agreements, s.users, s.skills, s.postings)

	input := domain.AgreementInput{
		PartyAID:          a.ID,
		PartyBID:          b.ID,
		SkillAID:          goSkill.ID,
		SkillBID:          chess.ID,
		Weeks:             4,
		MinutesPerSession: 60,
		SessionsPerWeek:   1,
	}

	const workers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
		leaked     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateAgreement(ctx, input)
			mu.Lock()
			defer mu.Unlock()
			var pgErr *pgconn.PgError
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrDuplicateActiveAgreement):
				duplicates++
			}
			if errors.As(err, &pgErr) {
				leaked++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(workers-1, duplicates)
	s.Zero(leaked)
}

func (s *RepositoryIntegrationSuite) TestSessionRequiresOngoingAgreement() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()
	agreement := s.createAgreement(a, b, goSkill, chess)

	session := &domain.Session{
		AgreementID:     agreement.ID,
		Date:            domain.DateOnly(time.Now().AddDate(0, 0, 7)),
		DurationMinutes: 90,
		Summary:         "Kickoff",
		IsActive:        true,
	}
	s.ErrorIs(s.sessions.Create(ctx, session), domain.ErrAgreementNotOngoing)

	_, err := s.agreements.UpdateState(ctx, agreement.ID, domain.AgreementStateProposed, domain.AgreementStateOngoing)
	s.Require().NoError(err)
	s.Require().NoError(s.sessions.Create(ctx, session))
	s.NotZero(session.ID)

	_, err = s.agreements.UpdateState(ctx, agreement.ID, domain.AgreementStateOngoing, domain.AgreementStateFinished)
	s.Require().NoError(err)

	session.DurationMinutes = 120
	_, err = s.sessions.Update(ctx, session)
	s.ErrorIs(err, domain.ErrAgreementNotOngoing)
}

func (s *RepositoryIntegrationSuite) TestReferentialPolicies() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()
	agreement := s.createAgreement(a, b, goSkill, chess)

	// Стороны соглашения защищены
	s.ErrorIs(s.users.Delete(ctx, a.ID), domain.ErrUserHasAgreements)

	// Удаление навыка удаляет соглашение
	s.Require().NoError(s.skills.Delete(ctx, chess.ID))
	_, err := s.agreements.GetByID(ctx, agreement.ID)
	s.ErrorIs(err, domain.ErrAgreementNotFound)

	// Теперь пользователя можно удалить вместе с его публикациями
	posting := &domain.Posting{Type: domain.PostingTypeOffer, Description: "Go mentoring", AuthorID: a.ID, SkillID: goSkill.ID}
	s.Require().NoError(s.postings.Create(ctx, posting))
	s.Require().NoError(s.users.Delete(ctx, a.ID))
	_, err = s.postings.GetByID(ctx, posting.ID)
	s.ErrorIs(err, domain.ErrPostingNotFound)
}

func (s *RepositoryIntegrationSuite) TestProfileSkills() {
	ctx := context.Background()
	a, _, goSkill, chess := s.fixtures()

	_, err := s.profiles.GetByUserID(ctx, a.ID)
	s.ErrorIs(err, domain.ErrProfileNotFound)

	profile := &domain.Profile{
		UserID:   a.ID,
		Bio:      "Gopher",
		Timezone: "America/Bogota",
		Skills:   []*domain.Skill{goSkill, chess},
	}
	s.Require().NoError(s.profiles.Save(ctx, profile))
	s.False(profile.UpdatedAt.IsZero())

	// Повторное сохранение заменяет набор навыков
	profile.Skills = []*domain.Skill{chess}
	s.Require().NoError(s.profiles.Save(ctx, profile))
	stored, err := s.profiles.GetByUserID(ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Skills, 1)
	s.Equal("Chess", stored.Skills[0].Name)

	// Удаление навыка убирает его из профиля
	s.Require().NoError(s.skills.Delete(ctx, chess.ID))
	stored, err = s.profiles.GetByUserID(ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(stored.Skills)

	s.ErrorIs(s.profiles.Save(ctx, &domain.Profile{UserID: 999, Timezone: "UTC"}), domain.ErrUserNotFound)
}

func (s *RepositoryIntegrationSuite) TestSearchPostings() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()

	for _, p := range []*domain.Posting{
		{Type: domain.PostingTypeOffer, Description: "Weekly Go code review", AuthorID: a.ID, SkillID: goSkill.ID},
		{Type: domain.PostingTypeSeek, Description: "Looking for a 100% beginner-friendly coach", AuthorID: b.ID, SkillID: chess.ID},
	} {
		s.Require().NoError(s.postings.Create(ctx, p))
	}

	found, err := s.postings.Search(ctx, domain.ParseSearchQuery("offer go"))
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Go", found[0].SkillName)

	found, err = s.postings.Search(ctx, domain.ParseSearchQuery("100%"))
	s.Require().NoError(err)
	s.Len(found, 1)

	found, err = s.postings.Search(ctx, domain.ParseSearchQuery(""))
	s.Require().NoError(err)
	s.Len(found, 2)

	_, err = s.postings.SetActive(ctx, found[0].ID, false)
	s.Require().NoError(err)

	open := true
	filter := domain.ParseSearchQuery("")
	filter.Active = &open
	found, err = s.postings.Search(ctx, filter)
	s.Require().NoError(err)
	s.Len(found, 1)
	s.True(found[0].IsActive)
}

func (s *RepositoryIntegrationSuite) TestStats() {
	ctx := context.Background()
	a, b, goSkill, chess := s.fixtures()
	first := s.createAgreement(a, b, goSkill, chess)
	s.createAgreement(b, a, goSkill, chess)
	_, err := s.agreements.UpdateState(ctx, first.ID, domain.AgreementStateProposed, domain.AgreementStateCanceled)
	s.Require().NoError(err)

	posting := &domain.Posting{Type: domain.PostingTypeOffer, Description: "Go pairing", AuthorID: a.ID, SkillID: goSkill.ID}
	s.Require().NoError(s.postings.Create(ctx, posting))

	states, err := s.stats.GetAgreementStateStats(ctx)
	s.Require().NoError(err)
	counts := make(map[domain.AgreementState]int64)
	for _, st := range states {
		counts[st.State] = st.Count
	}
	s.Equal(int64(1), counts[domain.AgreementStateProposed])
	s.Equal(int64(1), counts[domain.AgreementStateCanceled])

	skills, err := s.stats.GetSkillStats(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(skills, 1)
	s.Equal("Go", skills[0].SkillName)
	s.Equal(int64(1), skills[0].PostingCount)
	s.Equal(int64(2), skills[0].AgreementCount)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}
