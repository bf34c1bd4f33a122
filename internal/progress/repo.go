package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// WorkoutLogRow is one logged session of any of the user's workouts.
type WorkoutLogRow struct {
	ID              string
	PerformedAt     time.Time
	DurationMinutes int
}

// SetRow is a logged set reduced to what the summary needs.
type SetRow struct {
	ExerciseID int
	Reps       *int
	WeightKg   *float64
}

// SetPoint is a logged set of one exercise together with the time of
// the session it belongs to.
type SetPoint struct {
	PerformedAt time.Time
	SetNumber   int
	Reps        *int
	WeightKg    *float64
	RPE         *float64
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserExists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.userexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id string
	err = r.db.QueryRow(
		ctx,
		`SELECT id::text FROM users WHERE id = $1;`,
		userID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UserLogs returns every logged session across all workouts of the
// user, unfiltered. Window cuts happen in the analyzer.
func (r *Repo) UserLogs(ctx context.Context, userID string) (_ []WorkoutLogRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.userlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT wl.id::text, wl.performed_at, wl.duration_minutes
			FROM workout_logs wl
			JOIN workouts w ON wl.workout_id = w.id
			WHERE w.user_id = $1
			ORDER BY wl.performed_at DESC, wl.seq DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workoutLogs := make([]WorkoutLogRow, 0)
	for rows.Next() {
		var logRow WorkoutLogRow
		if err := rows.Scan(&logRow.ID, &logRow.PerformedAt, &logRow.DurationMinutes); err != nil {
			return nil, err
		}
		workoutLogs = append(workoutLogs, logRow)
	}

	return workoutLogs, nil
}

// SetsForLogs returns the sets of the given sessions in the order they
// were logged.
func (r *Repo) SetsForLogs(ctx context.Context, logIDs []string) (_ []SetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.setsforlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("logs", len(logIDs)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT exercise_id, reps, weight_kg
			FROM exercise_sets
			WHERE workout_log_id = ANY($1::uuid[])
			ORDER BY id;`,
		logIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sets := make([]SetRow, 0)
	for rows.Next() {
		var set SetRow
		if err := rows.Scan(&set.ExerciseID, &set.Reps, &set.WeightKg); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// ExerciseNames maps catalog ids to names. Ids of removed exercises are
// simply absent from the result.
func (r *Repo) ExerciseNames(ctx context.Context, ids []int) (_ map[int]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.exercisenames")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name FROM exercises WHERE id = ANY($1::int[]);`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	names := make(map[int]string)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}

	return names, nil
}

func (r *Repo) ExerciseName(ctx context.Context, id int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.exercisename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var name string
	err = r.db.QueryRow(
		ctx,
		`SELECT name FROM exercises WHERE id = $1;`,
		id,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrExerciseNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// ExerciseSets returns all sets of one exercise across the user's
// sessions since the given time, oldest session first.
func (r *Repo) ExerciseSets(ctx context.Context, userID string, exerciseID int, since time.Time) (_ []SetPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.exercisesets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT wl.performed_at, es.set_number, es.reps, es.weight_kg, es.rpe
			FROM exercise_sets es
			JOIN workout_logs wl ON es.workout_log_id = wl.id
			JOIN workouts w ON wl.workout_id = w.id
			WHERE w.user_id = $1
				AND es.exercise_id = $2
				AND wl.performed_at >= $3
			ORDER BY wl.performed_at, wl.seq, es.id;`,
		userID, exerciseID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	points := make([]SetPoint, 0)
	for rows.Next() {
		var point SetPoint
		if err := rows.Scan(
			&point.PerformedAt, &point.SetNumber,
			&point.Reps, &point.WeightKg, &point.RPE,
		); err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}
