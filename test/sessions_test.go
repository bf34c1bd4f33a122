package test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/fitplanpro/fitplan-backend/internal/progress"
	"github.com/fitplanpro/fitplan-backend/internal/sessions"
	"github.com/fitplanpro/fitplan-backend/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customWorkout builds a plan from catalog names, with default
// prescriptions.
func (s *IntegrationTestSuite) customWorkout(
	ctx context.Context,
	userID string,
	exerciseNames ...string,
) workouts.Plan {
	specs := make([]workouts.CustomExerciseSpec, 0, len(exerciseNames))
	for _, name := range exerciseNames {
		id, ok := s.catalog[name]
		require.True(s.T(), ok, "exercise %s not in the seeded catalog", name)
		specs = append(specs, workouts.CustomExerciseSpec{ExerciseID: id})
	}

	resp := s.request(ctx, "POST", "/workouts/custom", workouts.CustomRequest{
		UserID:    userID,
		Goal:      "custom",
		Exercises: specs,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var plan workouts.Plan
	s.decodeBody(resp, &plan)
	return plan
}

func (s *IntegrationTestSuite) logSession(
	ctx context.Context,
	workoutID string,
	durationMinutes int,
) sessions.WorkoutLog {
	resp := s.request(ctx, "POST",
		fmt.Sprintf("/workouts/%s/log", workoutID),
		sessions.LogSessionRequest{DurationMinutes: durationMinutes},
	)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var workoutLog sessions.WorkoutLog
	s.decodeBody(resp, &workoutLog)
	require.NotEmpty(s.T(), workoutLog.ID)
	return workoutLog
}

func (s *IntegrationTestSuite) logSets(
	ctx context.Context,
	workoutID string,
	exerciseID int,
	sets []sessions.SetInput,
) []sessions.ExerciseSet {
	resp := s.request(ctx, "POST",
		fmt.Sprintf("/workouts/%s/exercises/%d/log", workoutID, exerciseID),
		sessions.LogSetsRequest{Sets: sets},
	)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var created []sessions.ExerciseSet
	s.decodeBody(resp, &created)
	return created
}

func (s *IntegrationTestSuite) TestSessions() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.createUser(ctx, "athlete@fitplan.pro", "Athlete")
	plan := s.customWorkout(ctx, user.ID, "Bench Press", "Squat")

	s.T().Run("log session", func(t *testing.T) {
		workoutLog := s.logSession(ctx, plan.WorkoutID, 50)

		assert.Equal(t, plan.WorkoutID, workoutLog.WorkoutID)
		assert.Equal(t, 50, workoutLog.DurationMinutes)
		assert.False(t, workoutLog.PerformedAt.IsZero())
		// a fresh session has no sets yet
		assert.NotNil(t, workoutLog.ExerciseSets)
		assert.Empty(t, workoutLog.ExerciseSets)
	})

	s.T().Run("log session validation", func(t *testing.T) {
		resp := s.request(ctx, "POST",
			fmt.Sprintf("/workouts/%s/log", plan.WorkoutID),
			sessions.LogSessionRequest{DurationMinutes: 0},
		)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(respBytes), "duration must be at least 1 minute")

		resp = s.request(ctx, "POST",
			"/workouts/b10e6301-63c4-4f89-97b0-101781b965f2/log",
			sessions.LogSessionRequest{DurationMinutes: 30},
		)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	s.T().Run("log sets", func(t *testing.T) {
		created := s.logSets(ctx, plan.WorkoutID, s.catalog["Bench Press"], []sessions.SetInput{
			{Reps: intPtr(8), WeightKg: fPtr(100)},
			{Reps: intPtr(8), WeightKg: fPtr(102.5), RPE: fPtr(8.5)},
			{Reps: intPtr(6), WeightKg: fPtr(105), RPE: fPtr(9)},
		})

		require.Len(t, created, 3)
		for i, set := range created {
			assert.NotZero(t, set.ID)
			assert.Equal(t, i+1, set.SetNumber)
			assert.Equal(t, s.catalog["Bench Press"], set.ExerciseID)
		}
		assert.Nil(t, created[0].RPE)
		require.NotNil(t, created[1].RPE)
		assert.Equal(t, 8.5, *created[1].RPE)
	})

	s.T().Run("sets require a logged session", func(t *testing.T) {
		freshPlan := s.customWorkout(ctx, user.ID, "Squat")

		resp := s.request(ctx, "POST",
			fmt.Sprintf("/workouts/%s/exercises/%d/log", freshPlan.WorkoutID, s.catalog["Squat"]),
			sessions.LogSetsRequest{Sets: []sessions.SetInput{{Reps: intPtr(5)}}},
		)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(respBytes), "No active workout log found")
	})

	s.T().Run("sets for exercise outside the plan", func(t *testing.T) {
		resp := s.request(ctx, "POST",
			fmt.Sprintf("/workouts/%s/exercises/%d/log", plan.WorkoutID, s.catalog["Plank"]),
			sessions.LogSetsRequest{Sets: []sessions.SetInput{{Reps: intPtr(1)}}},
		)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(respBytes), "is not part of workout")
	})

	s.T().Run("new session restarts set numbering", func(t *testing.T) {
		s.logSession(ctx, plan.WorkoutID, 40)

		created := s.logSets(ctx, plan.WorkoutID, s.catalog["Squat"], []sessions.SetInput{
			{Reps: intPtr(5), WeightKg: fPtr(120)},
			{Reps: intPtr(5), WeightKg: fPtr(125)},
		})
		require.Len(t, created, 2)
		assert.Equal(t, 1, created[0].SetNumber)
		assert.Equal(t, 2, created[1].SetNumber)
	})

	s.T().Run("get logs", func(t *testing.T) {
		resp := s.request(ctx, "GET", fmt.Sprintf("/workouts/%s/logs", plan.WorkoutID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var logs []sessions.WorkoutLog
		s.decodeBody(resp, &logs)
		require.Len(t, logs, 2)

		// newest first: the 40min session carries the squat sets, the
		// bench sets stay on the first one
		assert.Equal(t, 40, logs[0].DurationMinutes)
		require.Len(t, logs[0].ExerciseSets, 2)
		assert.Equal(t, "Squat", logs[0].ExerciseSets[0].ExerciseName)

		assert.Equal(t, 50, logs[1].DurationMinutes)
		require.Len(t, logs[1].ExerciseSets, 3)
		assert.Equal(t, "Bench Press", logs[1].ExerciseSets[0].ExerciseName)
		assert.Equal(t, 1, logs[1].ExerciseSets[0].SetNumber)

		// reading again without any writes in between answers the same thing
		resp = s.request(ctx, "GET", fmt.Sprintf("/workouts/%s/logs", plan.WorkoutID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var logsAgain []sessions.WorkoutLog
		s.decodeBody(resp, &logsAgain)
		assert.Equal(t, logs, logsAgain)
	})
}

func (s *IntegrationTestSuite) TestProgress() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.createUser(ctx, "tracker@fitplan.pro", "Tracker")
	plan := s.customWorkout(ctx, user.ID, "Bench Press")

	s.logSession(ctx, plan.WorkoutID, 60)
	s.logSets(ctx, plan.WorkoutID, s.catalog["Bench Press"], []sessions.SetInput{
		{Reps: intPtr(8), WeightKg: fPtr(60)},
		{Reps: intPtr(8), WeightKg: fPtr(60), RPE: fPtr(8)},
		{Reps: intPtr(6), WeightKg: fPtr(62.5)},
	})

	s.T().Run("summary", func(t *testing.T) {
		resp := s.request(ctx, "GET", "/progress?user_id="+user.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summary progress.Summary
		s.decodeBody(resp, &summary)

		assert.Equal(t, user.ID, summary.UserID)
		assert.Equal(t, 1, summary.TotalWorkouts)
		assert.Equal(t, 1, summary.TotalExercises)
		assert.Equal(t, 3, summary.TotalSets)
		assert.Equal(t, 22, summary.TotalReps)
		assert.Equal(t, 60, summary.TotalDurationMinutes)
		// 60 minutes at the flat 6.5 kcal burn rate
		assert.Equal(t, 390.0, summary.EstimatedCaloriesBurned)
		assert.Equal(t, progress.WorkoutFrequency{
			Last7Days:  1,
			Last30Days: 1,
			Last90Days: 1,
		}, summary.WorkoutFrequency)

		require.Len(t, summary.ExerciseProgress, 1)
		bench := summary.ExerciseProgress[0]
		assert.Equal(t, "Bench Press", bench.ExerciseName)
		assert.Equal(t, 3, bench.TotalSets)
		assert.Equal(t, 22, bench.TotalReps)
		assert.Equal(t, 62.5, bench.MaxWeightKg)
		assert.InDelta(t, 60.83, bench.AvgWeightKg, 0.01)
	})

	s.T().Run("summary for unknown user", func(t *testing.T) {
		resp := s.request(ctx, "GET", "/progress?user_id=b10e6301-63c4-4f89-97b0-101781b965f2", nil)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	s.T().Run("exercise progress", func(t *testing.T) {
		resp := s.request(ctx, "GET",
			fmt.Sprintf("/progress/exercise/%d?user_id=%s", s.catalog["Bench Press"], user.ID),
			nil,
		)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var exerciseProgress progress.ExerciseProgress
		s.decodeBody(resp, &exerciseProgress)

		assert.Equal(t, "Bench Press", exerciseProgress.ExerciseName)
		assert.Equal(t, 3, exerciseProgress.TotalSets)
		assert.Equal(t, 22, exerciseProgress.TotalReps)
		assert.Equal(t, 62.5, exerciseProgress.MaxWeightKg)
		assert.Equal(t, 60.83, exerciseProgress.AvgWeightKg)

		require.Len(t, exerciseProgress.Progression, 3)
		assert.Equal(t, 8, exerciseProgress.Progression[0].Reps)
		assert.Equal(t, 60.0, exerciseProgress.Progression[0].WeightKg)
		assert.Nil(t, exerciseProgress.Progression[0].RPE)
		require.NotNil(t, exerciseProgress.Progression[1].RPE)
		assert.Equal(t, 8.0, *exerciseProgress.Progression[1].RPE)
	})

	s.T().Run("exercise progress for unknown exercise", func(t *testing.T) {
		resp := s.request(ctx, "GET", "/progress/exercise/987654?user_id="+user.ID, nil)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func intPtr(i int) *int {
	return &i
}

func fPtr(f float64) *float64 {
	return &f
}
