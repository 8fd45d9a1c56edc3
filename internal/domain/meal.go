package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MealItem struct {
	Product string  `json:"product" validate:"required"`
	Grams   float64 `json:"grams" validate:"gte=0"`
	Kcal    float64 `json:"kcal" validate:"gte=0"`
}

// Meal is appended on every submission; several meals may share a date.
type Meal struct {
	ID        uuid.UUID                     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                     `json:"userId" gorm:"type:uuid;not null;index:idx_meals_user_date"`
	Date      time.Time                     `json:"date" gorm:"not null;index:idx_meals_user_date"`
	Items     datatypes.JSONSlice[MealItem] `json:"items" gorm:"type:jsonb;not null"`
	CreatedAt time.Time                     `json:"createdAt"`
}

// TotalKcal sums the energy of all items.
func (m *Meal) TotalKcal() float64 {
	var total float64
	for _, it := range m.Items {
		total += it.Kcal
	}
	return total
}
