package domain

import (
	"time"

	"github.com/google/uuid"
)

// Measurement is one day of body measurements. (UserID, Date) is unique.
type Measurement struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_measurements_user_date"`
	Date       time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_measurements_user_date"`
	Waist      *float64  `json:"waist"`
	Hips       *float64  `json:"hips"`
	Thigh      *float64  `json:"thigh"`
	Arm        *float64  `json:"arm"`
	Chest      *float64  `json:"chest"`
	UnderNavel *float64  `json:"underNavel"`
	Weight     *float64  `json:"weight"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MeasurementColumns are overwritten when a measurement for an existing day is re-submitted.
var MeasurementColumns = []string{"waist", "hips", "thigh", "arm", "chest", "under_navel", "weight", "updated_at"}
