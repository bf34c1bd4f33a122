package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseNotInWorkout = errors.New("exercise not part of workout")
	ErrNoWorkoutLog         = errors.New("no workout log found")
	ErrNoSets               = errors.New("no sets provided")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) WorkoutExists(ctx context.Context, workoutID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.workoutexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id string
	err = r.db.QueryRow(
		ctx,
		`SELECT id::text FROM workouts WHERE id = $1;`,
		workoutID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) ExerciseInWorkout(ctx context.Context, workoutID string, exerciseID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.exerciseinworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM workout_exercises WHERE workout_id = $1 AND exercise_id = $2 LIMIT 1;`,
		workoutID, exerciseID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) ExerciseExists(ctx context.Context, exerciseID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.exerciseexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM exercises WHERE id = $1;`,
		exerciseID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) AddLog(ctx context.Context, workoutID string, durationMinutes int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog := &WorkoutLog{
		ID:              uuid.NewString(),
		WorkoutID:       workoutID,
		DurationMinutes: durationMinutes,
		ExerciseSets:    make([]LoggedSet, 0),
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_logs (id, workout_id, duration_minutes)
				VALUES ($1, $2, $3)
			RETURNING performed_at;`,
		workoutLog.ID, workoutID, durationMinutes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&workoutLog.PerformedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.String("log.id", workoutLog.ID))

	return workoutLog, nil
}

// MostRecentLog returns the id of the latest log for the workout. Logs
// performed at the same instant fall back to insertion order.
func (r *Repo) MostRecentLog(ctx context.Context, workoutID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.mostrecentlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var logID string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id::text FROM workout_logs
			WHERE workout_id = $1
			ORDER BY performed_at DESC, seq DESC
			LIMIT 1;`,
		workoutID,
	).Scan(&logID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoWorkoutLog
	}
	if err != nil {
		return "", err
	}
	return logID, nil
}

// AddSets stores the batch in one transaction, either all sets land or
// none do.
func (r *Repo) AddSets(ctx context.Context, sets []ExerciseSet) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.addsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("sets", len(sets)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	created := make([]ExerciseSet, 0, len(sets))
	for _, set := range sets {
		if err = tx.QueryRow(
			ctx,
			`INSERT INTO exercise_sets
					(workout_log_id, exercise_id, set_number, reps, weight_kg, rpe)
					VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
			set.WorkoutLogID, set.ExerciseID, set.SetNumber, set.Reps, set.WeightKg, set.RPE,
		).Scan(&set.ID); err != nil {
			return nil, fmt.Errorf("insert set %d: %w", set.SetNumber, err)
		}
		created = append(created, set)
	}

	return created, nil
}

// Logs returns all logs for the workout, newest first, each with its
// sets in the order they were logged.
func (r *Repo) Logs(ctx context.Context, workoutID string) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, workout_id::text, performed_at, duration_minutes
			FROM workout_logs
			WHERE workout_id = $1
			ORDER BY performed_at DESC, seq DESC;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	workoutLogs, err := r.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}

	for i := range workoutLogs {
		loggedSets, err := r.logSets(ctx, workoutLogs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("log %s sets: %w", workoutLogs[i].ID, err)
		}
		workoutLogs[i].ExerciseSets = loggedSets
	}

	return workoutLogs, nil
}

func (r *Repo) logSets(ctx context.Context, logID string) ([]LoggedSet, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT es.id, es.exercise_id, e.name, es.set_number, es.reps, es.weight_kg, es.rpe
			FROM exercise_sets es
			JOIN exercises e ON es.exercise_id = e.id
			WHERE es.workout_log_id = $1
			ORDER BY es.id;`,
		logID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	loggedSets := make([]LoggedSet, 0)
	for rows.Next() {
		var set LoggedSet
		var weight, rpe *float64
		if err := rows.Scan(
			&set.SetID, &set.ExerciseID, &set.ExerciseName,
			&set.SetNumber, &set.Reps, &weight, &rpe,
		); err != nil {
			return nil, err
		}
		if weight != nil {
			set.WeightKg = *weight
		}
		if rpe != nil && *rpe != 0 {
			set.RPE = rpe
		}
		loggedSets = append(loggedSets, set)
	}

	return loggedSets, nil
}

func (r *Repo) rows2logs(rows pgx.Rows) ([]WorkoutLog, error) {
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var workoutLogs []WorkoutLog
	for rows.Next() {
		var workoutLog WorkoutLog
		if err := rows.Scan(
			&workoutLog.ID, &workoutLog.WorkoutID,
			&workoutLog.PerformedAt, &workoutLog.DurationMinutes,
		); err != nil {
			return nil, err
		}
		workoutLog.ExerciseSets = make([]LoggedSet, 0)
		workoutLogs = append(workoutLogs, workoutLog)
	}

	if workoutLogs == nil {
		workoutLogs = make([]WorkoutLog, 0)
	}

	return workoutLogs, nil
}
