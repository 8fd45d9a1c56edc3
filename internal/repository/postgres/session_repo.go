package postgres

import (
	"context"
	"time"

	"github.com/popo0015/body-tracker/internal/domain"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return translate(r.db.WithContext(ctx).Create(session).Error)
}

func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).First(&session, "token_hash = ?", tokenHash).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

// DeleteByTokenHash is a no-op when no row matches.
func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "token_hash = ?", tokenHash).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Session{}, "expires_at <= ?", now)
	return res.RowsAffected, res.Error
}
