package workouts

import (
	"time"
)

// Goal can be one of:
//   - strength
//   - hypertrophy
//   - endurance
//   - weight_loss
//   - general
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
	GoalWeightLoss  Goal = "weight_loss"
	GoalGeneral     Goal = "general"
)

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalStrength,
		GoalHypertrophy,
		GoalEndurance,
		GoalWeightLoss,
		GoalGeneral:
		return true
	default:
		return false
	}
}

// Prescription is the sets/reps/rest triple every exercise of a generated
// plan gets, fixed per goal.
type Prescription struct {
	Sets        int
	Reps        int
	RestSeconds int
}

func (g Goal) Prescription() Prescription {
	switch g {
	case GoalStrength:
		return Prescription{Sets: 5, Reps: 5, RestSeconds: 180}
	case GoalHypertrophy:
		return Prescription{Sets: 4, Reps: 10, RestSeconds: 90}
	case GoalEndurance:
		return Prescription{Sets: 3, Reps: 15, RestSeconds: 60}
	case GoalWeightLoss:
		return Prescription{Sets: 3, Reps: 12, RestSeconds: 45}
	default:
		return Prescription{Sets: 3, Reps: 10, RestSeconds: 90}
	}
}

// Workout is the stored plan header, its exercise prescriptions live in
// workout_exercises rows.
type Workout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogExercise is the slice of the exercise catalog the plan builder
// works with.
type CatalogExercise struct {
	ID            int
	Name          string
	PrimaryMuscle string
}

type PlanExercise struct {
	ExerciseID    int    `json:"exercise_id"`
	ExerciseName  string `json:"exercise_name"`
	PrimaryMuscle string `json:"primary_muscle"`
	TargetSets    int    `json:"target_sets"`
	TargetReps    int    `json:"target_reps"`
	RestSeconds   int    `json:"rest_seconds"`
}

// Plan is the response for created and fetched workouts.
type Plan struct {
	WorkoutID         string         `json:"workout_id"`
	Goal              string         `json:"goal"`
	Exercises         []PlanExercise `json:"exercises"`
	EstimatedDuration int            `json:"estimated_duration"`
}

// EstimatedDuration approximates how long a plan takes, in whole minutes:
// each rep counts as 3 seconds, plus the rest after every set.
func EstimatedDuration(planExercises []PlanExercise) int {
	totalSeconds := 0
	for _, pe := range planExercises {
		totalSeconds += pe.TargetSets * (pe.TargetReps*3 + pe.RestSeconds)
	}
	return totalSeconds / 60
}

type GenerateRequest struct {
	UserID          string   `json:"user_id"`
	Goal            string   `json:"goal"`
	Equipment       []string `json:"equipment"`
	DurationMinutes int      `json:"duration_minutes"`
}

// CustomExerciseSpec carries one exercise of a custom plan. The prescription
// fields are pointers so that an omitted field and an explicit zero can be
// told apart, omitted ones fall back to 3x10 with 90s rest.
type CustomExerciseSpec struct {
	ExerciseID  int  `json:"exercise_id"`
	TargetSets  *int `json:"target_sets"`
	TargetReps  *int `json:"target_reps"`
	RestSeconds *int `json:"rest_seconds"`
}

type CustomRequest struct {
	UserID    string               `json:"user_id"`
	Goal      string               `json:"goal"`
	Exercises []CustomExerciseSpec `json:"exercises"`
}

type HistoryExercise struct {
	ExerciseID   int    `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	TargetSets   int    `json:"target_sets"`
	TargetReps   int    `json:"target_reps"`
}

type HistoryLog struct {
	LogID           string    `json:"log_id"`
	PerformedAt     time.Time `json:"performed_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// HistoryEntry is one workout of a user's history, newest first, together
// with every time it was performed.
type HistoryEntry struct {
	WorkoutID      string            `json:"workout_id"`
	Goal           string            `json:"goal"`
	CreatedAt      time.Time         `json:"created_at"`
	ExerciseCount  int               `json:"exercise_count"`
	Exercises      []HistoryExercise `json:"exercises"`
	Logs           []HistoryLog      `json:"logs"`
	TimesCompleted int               `json:"times_completed"`
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}
