package sessions

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ErrInvalidDuration rejects sessions shorter than a minute.
var ErrInvalidDuration = errors.New("duration must be at least 1 minute")

type sessionsRepo interface {
	WorkoutExists(ctx context.Context, workoutID string) (bool, error)
	ExerciseInWorkout(ctx context.Context, workoutID string, exerciseID int) (bool, error)
	ExerciseExists(ctx context.Context, exerciseID int) (bool, error)
	AddLog(ctx context.Context, workoutID string, durationMinutes int) (*WorkoutLog, error)
	MostRecentLog(ctx context.Context, workoutID string) (string, error)
	AddSets(ctx context.Context, sets []ExerciseSet) ([]ExerciseSet, error)
	Logs(ctx context.Context, workoutID string) ([]WorkoutLog, error)
}

type Service struct {
	repo sessionsRepo
}

func NewService(repo sessionsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) LogSession(ctx context.Context, workoutID string, durationMinutes int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exists, err := s.repo.WorkoutExists(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("check workout: %w", err)
	}
	if !exists {
		return nil, ErrWorkoutNotFound
	}

	if durationMinutes < 1 {
		return nil, ErrInvalidDuration
	}

	workoutLog, err := s.repo.AddLog(ctx, workoutID, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("add workout log: %w", err)
	}
	return workoutLog, nil
}

// LogSets attaches a batch of sets for one exercise to the most recent
// log of the workout. A session has to be logged before any sets are.
func (s *Service) LogSets(ctx context.Context, workoutID string, exerciseID int, sets []SetInput) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.logsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.Int("sets", len(sets)))

	exists, err := s.repo.WorkoutExists(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("check workout: %w", err)
	}
	if !exists {
		return nil, ErrWorkoutNotFound
	}

	inWorkout, err := s.repo.ExerciseInWorkout(ctx, workoutID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("check workout exercise: %w", err)
	}
	if !inWorkout {
		return nil, ErrExerciseNotInWorkout
	}

	exerciseExists, err := s.repo.ExerciseExists(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("check exercise: %w", err)
	}
	if !exerciseExists {
		return nil, ErrExerciseNotFound
	}

	if len(sets) == 0 {
		return nil, ErrNoSets
	}

	logID, err := s.repo.MostRecentLog(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrNoWorkoutLog) {
			return nil, err
		}
		return nil, fmt.Errorf("most recent log: %w", err)
	}

	// set numbers restart from 1 with every batch, the position in the
	// request is the number
	exerciseSets := make([]ExerciseSet, 0, len(sets))
	for i, set := range sets {
		exerciseSets = append(exerciseSets, ExerciseSet{
			WorkoutLogID: logID,
			ExerciseID:   exerciseID,
			SetNumber:    i + 1,
			Reps:         set.Reps,
			WeightKg:     set.WeightKg,
			RPE:          set.RPE,
		})
	}

	createdSets, err := s.repo.AddSets(ctx, exerciseSets)
	if err != nil {
		return nil, fmt.Errorf("add sets: %w", err)
	}
	return createdSets, nil
}

func (s *Service) Logs(ctx context.Context, workoutID string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exists, err := s.repo.WorkoutExists(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("check workout: %w", err)
	}
	if !exists {
		return nil, ErrWorkoutNotFound
	}

	workoutLogs, err := s.repo.Logs(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return workoutLogs, nil
}
