package service

import (
	"github.com/popo0015/body-tracker/internal/config"
	"github.com/popo0015/body-tracker/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Session *SessionService
	Record  *RecordService
	History *HistoryService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	sessions := NewSessionService(repos.Session, repos.User, cfg.SessionTTL)
	return &Services{
		Auth:    NewAuthService(repos.User, sessions, cfg.BcryptCost),
		Session: sessions,
		Record:  NewRecordService(repos.Measurement, repos.Meal, repos.Workout),
		History: NewHistoryService(repos, cfg.HistoryWindowDays, cfg.Location()),
	}
}
