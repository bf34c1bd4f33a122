package sessions

import "time"

// WorkoutLog is one completed session of a workout. ExerciseSets is
// populated on reads, a freshly logged session has none yet.
type WorkoutLog struct {
	ID              string      `json:"log_id"`
	WorkoutID       string      `json:"workout_id"`
	PerformedAt     time.Time   `json:"performed_at"`
	DurationMinutes int         `json:"duration_minutes"`
	ExerciseSets    []LoggedSet `json:"exercise_sets"`
}

// ExerciseSet is one persisted set row, returned from set logging.
// Reps, WeightKg and RPE are optional on input and stay null when the
// client left them out.
type ExerciseSet struct {
	ID           int      `json:"id"`
	WorkoutLogID string   `json:"workout_log_id"`
	ExerciseID   int      `json:"exercise_id"`
	SetNumber    int      `json:"set_number"`
	Reps         *int     `json:"reps"`
	WeightKg     *float64 `json:"weight_kg"`
	RPE          *float64 `json:"rpe"`
}

// SetInput is one performed set as sent by the client. Set numbers are
// not part of the input, they come from the position in the batch.
type SetInput struct {
	Reps     *int     `json:"reps"`
	WeightKg *float64 `json:"weight_kg"`
	RPE      *float64 `json:"rpe"`
}

// LoggedSet is a set joined with its exercise name, as embedded in
// workout log reads. Missing weight reads as 0, an unset or zero RPE
// reads as null.
type LoggedSet struct {
	SetID        int      `json:"set_id"`
	ExerciseID   int      `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	SetNumber    int      `json:"set_number"`
	Reps         *int     `json:"reps"`
	WeightKg     float64  `json:"weight_kg"`
	RPE          *float64 `json:"rpe"`
}

type LogSessionRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

type LogSetsRequest struct {
	Sets []SetInput `json:"sets"`
}
