package domain

// Summary groups a user's records over one window.
type Summary struct {
	Measurements []*Measurement `json:"measurements"`
	Meals        []*Meal        `json:"meals"`
	Workouts     []*Workout     `json:"workouts"`
}
