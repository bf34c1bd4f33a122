package users

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Goal is a target the user trains towards. The type is a free-form
// label, not the workout goal enum.
type Goal struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	GoalType    string    `json:"goal_type"`
	TargetValue float64   `json:"target_value"`
	CreatedAt   time.Time `json:"created_at"`
}
