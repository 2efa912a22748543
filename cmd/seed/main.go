package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"skillswap-service/internal/auth"
	"skillswap-service/internal/config"
	"skillswap-service/internal/database"
	"skillswap-service/internal/repository"
	"skillswap-service/internal/seed"
	"skillswap-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

func main() {
	defaults := seed.DefaultOptions()
	users := flag.Int("users", defaults.Users, "number of users to create")
	postings := flag.Int("postings", defaults.PostingsPerUser, "postings per user")
	agreements := flag.Int("agreements", defaults.Agreements, "agreements to create, spread over every state")
	sessions := flag.Int("sessions", defaults.SessionsPerOngoing, "sessions per ONGOING agreement")
	password := flag.String("password", defaults.Password, "password for every seeded user")
	rngSeed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if errors.Is(err, config.ErrDotEnvNotLoaded) {
		logger.Warnf(".env not found: %v", err)
	} else if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	queries := database.New(db)
	skillRepo := repository.NewSkillRepository(queries)
	userRepo := repository.NewUserRepository(queries)
	postingRepo := repository.NewPostingRepository(queries)
	agreementRepo := repository.NewAgreementRepository(queries)
	sessionRepo := repository.NewSessionRepository(db, queries)

	seeder := seed.NewSeeder(
		usecase.NewSkillUseCase(skillRepo, nil),
		usecase.NewUserUseCase(userRepo),
		usecase.NewPostingUseCase(postingRepo, userRepo, skillRepo),
		usecase.NewAgreementUseCase(agreementRepo, userRepo, skillRepo, postingRepo),
		usecase.NewSessionUseCase(sessionRepo, agreementRepo, time.Now),
		logger,
		time.Now,
	)

	fixture, err := seed.LoadFixture()
	if err != nil {
		logger.Fatalf("Fixture load failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := seeder.Run(ctx, fixture, seed.Options{
		Users:              *users,
		PostingsPerUser:    *postings,
		Agreements:         *agreements,
		SessionsPerOngoing: *sessions,
		Password:           *password,
		Seed:               *rngSeed,
	})
	if err != nil {
		logger.Fatalf("Seeding failed: %v", err)
	}

	// Токены для ручной проверки API
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER_ID\tUSERNAME\tTOKEN")
	for _, user := range result.Users {
		token, err := tokens.Issue(user.ID)
		if err != nil {
			logger.Fatalf("Token issue failed: %v", err)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", user.ID, user.Username, token)
	}
	w.Flush()
}
