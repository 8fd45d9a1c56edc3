// Command seed creates a demo account with two days of measurements. It is
// safe to run repeatedly: an existing account is reused and measurements are
// upserted by date.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/popo0015/body-tracker/internal/config"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/logger"
	"github.com/popo0015/body-tracker/internal/repository"
	"github.com/popo0015/body-tracker/internal/repository/postgres"
	"github.com/popo0015/body-tracker/internal/service"
)

func f(v float64) *float64 { return &v }

var demoMeasurements = []service.MeasurementRequest{
	{Date: "2025-06-28", Waist: f(80), Hips: f(90), Thigh: f(50), Arm: f(30), Chest: f(95), UnderNavel: f(85), Weight: f(61.8)},
	{Date: "2025-06-29", Waist: f(81), Hips: f(91), Thigh: f(51), Arm: f(31), Chest: f(96), UnderNavel: f(86), Weight: f(62.3)},
}

// ensureUser signs the account up, or loads it when the email is taken.
func ensureUser(ctx context.Context, repos *repository.Repositories, services *service.Services, email, password string) (*domain.User, bool, error) {
	user, err := services.Auth.Signup(ctx, service.SignupInput{Email: email, Password: password})
	switch {
	case errors.Is(err, service.ErrEmailExists):
		user, err = repos.User.GetByEmail(ctx, service.NormalizeEmail(email))
		if err != nil {
			return nil, false, err
		}
		return user, false, nil
	case err != nil:
		return nil, false, err
	}
	return user, true, nil
}

func main() {
	email := flag.String("email", "demo@example.com", "Demo account email")
	password := flag.String("password", "demo-password", "Demo account password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	db, err := postgres.NewConnection(cfg.DatabaseURL, logger.GormLevel(cfg.Environment))
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}

	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, created, err := ensureUser(ctx, repos, services, *email, *password)
	if err != nil {
		sugar.Fatalw("failed to prepare demo user", "email", *email, "error", err)
	}
	if created {
		sugar.Infow("created demo user", "email", user.Email)
	} else {
		sugar.Infow("reusing demo user", "email", user.Email)
	}

	for _, req := range demoMeasurements {
		m, err := services.Record.SaveMeasurement(ctx, user.ID, req)
		if err != nil {
			sugar.Fatalw("failed to seed measurement", "date", req.Date, "error", err)
		}
		sugar.Infow("seeded measurement", "date", m.Date.Format(domain.DateLayout), "weight", *m.Weight)
	}

	sugar.Info("seeding done")
}
