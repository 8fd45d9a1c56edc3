package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExerciseSet struct {
	Exercise string  `json:"exercise" validate:"required"`
	Sets     int     `json:"sets" validate:"gte=1"`
	Reps     int     `json:"reps" validate:"gte=1"`
	Weight   float64 `json:"weight" validate:"gte=0"`
}

type Workout struct {
	ID        uuid.UUID                        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                        `json:"userId" gorm:"type:uuid;not null;index:idx_workouts_user_date"`
	Date      time.Time                        `json:"date" gorm:"not null;index:idx_workouts_user_date"`
	Exercises datatypes.JSONSlice[ExerciseSet] `json:"exercises" gorm:"type:jsonb;not null"`
	CreatedAt time.Time                        `json:"createdAt"`
}
