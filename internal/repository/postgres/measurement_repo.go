package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type measurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *measurementRepository {
	return &measurementRepository{db: db}
}

// Upsert relies on the (user_id, date) unique index: INSERT ... ON CONFLICT DO UPDATE
// overwrites every numeric column. The stored row is read back into m.
func (r *measurementRepository) Upsert(ctx context.Context, m *domain.Measurement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(domain.MeasurementColumns),
		}).Create(m).Error
		if err != nil {
			return translate(err)
		}

		var stored domain.Measurement
		if err := tx.First(&stored, "user_id = ? AND date = ?", m.UserID, m.Date).Error; err != nil {
			return translate(err)
		}
		*m = stored
		return nil
	})
}

func (r *measurementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Measurement, error) {
	var measurements []*domain.Measurement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

func (r *measurementRepository) ListInWindow(ctx context.Context, userID uuid.UUID, w domain.Window) ([]*domain.Measurement, error) {
	// date is a calendar day; compare against day strings so a row is never
	// admitted just because the bound's day matches.
	first, last := w.DayBounds()
	var measurements []*domain.Measurement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, first, last).
		Order("date ASC").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}
