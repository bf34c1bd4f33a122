package progress

import "time"

// Summary is the cross-exercise progress report for one user. The
// totals cover the requested window, the frequency buckets always count
// from now regardless of the window.
type Summary struct {
	UserID                  string            `json:"user_id"`
	TotalWorkouts           int               `json:"total_workouts"`
	TotalExercises          int               `json:"total_exercises"`
	TotalSets               int               `json:"total_sets"`
	TotalReps               int               `json:"total_reps"`
	TotalDurationMinutes    int               `json:"total_duration_minutes"`
	EstimatedCaloriesBurned float64           `json:"estimated_calories_burned"`
	WorkoutFrequency        WorkoutFrequency  `json:"workout_frequency"`
	ExerciseProgress        []ExerciseSummary `json:"exercise_progress"`
}

type WorkoutFrequency struct {
	Last7Days  int `json:"last_7_days"`
	Last30Days int `json:"last_30_days"`
	Last90Days int `json:"last_90_days"`
}

// ExerciseSummary is one exercise line in the Summary, ordered by total
// sets. Sets without a weight stay out of the max and average.
type ExerciseSummary struct {
	ExerciseID   int     `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	TotalSets    int     `json:"total_sets"`
	TotalReps    int     `json:"total_reps"`
	MaxWeightKg  float64 `json:"max_weight_kg"`
	AvgWeightKg  float64 `json:"avg_weight_kg"`
}

// ExerciseProgress tracks one exercise over time for progressive
// overload monitoring.
type ExerciseProgress struct {
	ExerciseID   int                `json:"exercise_id"`
	ExerciseName string             `json:"exercise_name"`
	TotalSets    int                `json:"total_sets"`
	TotalReps    int                `json:"total_reps"`
	MaxWeightKg  float64            `json:"max_weight_kg"`
	AvgWeightKg  float64            `json:"avg_weight_kg"`
	Progression  []ProgressionPoint `json:"progression"`
}

// ProgressionPoint is one set on the timeline, dated by the session it
// was performed in.
type ProgressionPoint struct {
	Date      time.Time `json:"date"`
	Reps      int       `json:"reps"`
	WeightKg  float64   `json:"weight_kg"`
	RPE       *float64  `json:"rpe"`
	SetNumber int       `json:"set_number"`
}
