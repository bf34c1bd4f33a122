package progress

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// rough burn rate per training minute, between an easy and an intense
// session
const caloriesPerMinute = 6.5

type progressRepo interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	UserLogs(ctx context.Context, userID string) ([]WorkoutLogRow, error)
	SetsForLogs(ctx context.Context, logIDs []string) ([]SetRow, error)
	ExerciseNames(ctx context.Context, ids []int) (map[int]string, error)
	ExerciseName(ctx context.Context, id int) (string, error)
	ExerciseSets(ctx context.Context, userID string, exerciseID int, since time.Time) ([]SetPoint, error)
}

type Analyzer struct {
	repo progressRepo
}

func NewAnalyzer(repo progressRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) Summary(ctx context.Context, userID string, days int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	exists, err := a.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	allLogs, err := a.repo.UserLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user logs: %w", err)
	}

	now := time.Now().UTC()
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	var windowLogs []WorkoutLogRow
	for _, logRow := range allLogs {
		if !logRow.PerformedAt.Before(since) {
			windowLogs = append(windowLogs, logRow)
		}
	}

	summary := &Summary{
		UserID:           userID,
		TotalWorkouts:    len(windowLogs),
		WorkoutFrequency: frequency(allLogs, now),
		ExerciseProgress: make([]ExerciseSummary, 0),
	}
	for _, logRow := range windowLogs {
		summary.TotalDurationMinutes += logRow.DurationMinutes
	}
	summary.EstimatedCaloriesBurned = round2(float64(summary.TotalDurationMinutes) * caloriesPerMinute)

	if len(windowLogs) == 0 {
		return summary, nil
	}

	logIDs := make([]string, 0, len(windowLogs))
	for _, logRow := range windowLogs {
		logIDs = append(logIDs, logRow.ID)
	}

	sets, err := a.repo.SetsForLogs(ctx, logIDs)
	if err != nil {
		return nil, fmt.Errorf("sets for logs: %w", err)
	}
	summary.TotalSets = len(sets)

	byExercise := make(map[int][]SetRow)
	var exerciseOrder []int
	for _, set := range sets {
		summary.TotalReps += intOrZero(set.Reps)
		if _, ok := byExercise[set.ExerciseID]; !ok {
			exerciseOrder = append(exerciseOrder, set.ExerciseID)
		}
		byExercise[set.ExerciseID] = append(byExercise[set.ExerciseID], set)
	}
	summary.TotalExercises = len(byExercise)

	if len(exerciseOrder) == 0 {
		return summary, nil
	}

	names, err := a.repo.ExerciseNames(ctx, exerciseOrder)
	if err != nil {
		return nil, fmt.Errorf("exercise names: %w", err)
	}

	for _, exerciseID := range exerciseOrder {
		name, ok := names[exerciseID]
		if !ok {
			// removed from the catalog since the sets were logged
			continue
		}
		entry := ExerciseSummary{
			ExerciseID:   exerciseID,
			ExerciseName: name,
		}
		var weights []float64
		for _, set := range byExercise[exerciseID] {
			entry.TotalSets++
			entry.TotalReps += intOrZero(set.Reps)
			if set.WeightKg != nil && *set.WeightKg != 0 {
				weights = append(weights, *set.WeightKg)
			}
		}
		entry.MaxWeightKg, entry.AvgWeightKg = maxAndAvg(weights)
		summary.ExerciseProgress = append(summary.ExerciseProgress, entry)
	}

	// busiest exercises first, ties keep first-logged order
	sort.SliceStable(summary.ExerciseProgress, func(i, j int) bool {
		return summary.ExerciseProgress[i].TotalSets > summary.ExerciseProgress[j].TotalSets
	})

	return summary, nil
}

func (a *Analyzer) ExerciseProgress(ctx context.Context, userID string, exerciseID, days int) (_ *ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.Int("days", days))

	exists, err := a.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	exerciseName, err := a.repo.ExerciseName(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise name: %w", err)
	}

	now := time.Now().UTC()
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	points, err := a.repo.ExerciseSets(ctx, userID, exerciseID, since)
	if err != nil {
		return nil, fmt.Errorf("exercise sets: %w", err)
	}

	exerciseProgress := &ExerciseProgress{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		TotalSets:    len(points),
		Progression:  make([]ProgressionPoint, 0, len(points)),
	}

	var weights []float64
	for _, point := range points {
		exerciseProgress.TotalReps += intOrZero(point.Reps)
		if point.WeightKg != nil && *point.WeightKg != 0 {
			weights = append(weights, *point.WeightKg)
		}

		progressionPoint := ProgressionPoint{
			Date:      point.PerformedAt,
			Reps:      intOrZero(point.Reps),
			SetNumber: point.SetNumber,
		}
		if point.WeightKg != nil {
			progressionPoint.WeightKg = *point.WeightKg
		}
		if point.RPE != nil && *point.RPE != 0 {
			progressionPoint.RPE = point.RPE
		}
		exerciseProgress.Progression = append(exerciseProgress.Progression, progressionPoint)
	}

	maxWeight, avgWeight := maxAndAvg(weights)
	exerciseProgress.MaxWeightKg = round2(maxWeight)
	exerciseProgress.AvgWeightKg = round2(avgWeight)

	return exerciseProgress, nil
}

func frequency(logs []WorkoutLogRow, now time.Time) WorkoutFrequency {
	var freq WorkoutFrequency
	for _, logRow := range logs {
		if !logRow.PerformedAt.Before(now.Add(-7 * 24 * time.Hour)) {
			freq.Last7Days++
		}
		if !logRow.PerformedAt.Before(now.Add(-30 * 24 * time.Hour)) {
			freq.Last30Days++
		}
		if !logRow.PerformedAt.Before(now.Add(-90 * 24 * time.Hour)) {
			freq.Last90Days++
		}
	}
	return freq
}

func maxAndAvg(weights []float64) (maxWeight, avgWeight float64) {
	if len(weights) == 0 {
		return 0, 0
	}
	var sum float64
	for _, weight := range weights {
		sum += weight
		if weight > maxWeight {
			maxWeight = weight
		}
	}
	return maxWeight, sum / float64(len(weights))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
