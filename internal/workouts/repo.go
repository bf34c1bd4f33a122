package workouts

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

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserExists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.userexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id string
	err = r.db.QueryRow(ctx, `SELECT id::text FROM users WHERE id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CatalogExercises returns the exercises doable with the given equipment.
// Exercises without an equipment requirement always qualify. A nil or empty
// equipmentNames returns the whole catalog.
func (r *Repo) CatalogExercises(ctx context.Context, equipmentNames []string) (_ []CatalogExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.catalogexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("equipment_names", len(equipmentNames)))

	if len(equipmentNames) == 0 {
		equipmentNames = nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT e.id, e.name, e.primary_muscle
			FROM exercises e
			LEFT JOIN equipment eq ON e.equipment_id = eq.id
				WHERE ($1::text[] IS NULL OR e.equipment_id IS NULL OR eq.name = ANY($1::text[]))
			ORDER BY e.id;`,
		equipmentNames,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2catalog(rows)
}

// ExercisesByIDs returns the catalog rows for the given ids. Ids that do not
// exist are simply absent from the result, and duplicates collapse.
func (r *Repo) ExercisesByIDs(ctx context.Context, ids []int) (_ []CatalogExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercisesbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, primary_muscle FROM exercises WHERE id = ANY($1::int[]) ORDER BY id;`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2catalog(rows)
}

// CreatePlan stores the workout header and one prescription row per
// exercise, all in one transaction.
func (r *Repo) CreatePlan(
	ctx context.Context,
	userID, goal string,
	planExercises []PlanExercise,
) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

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

	workout := Workout{
		ID:     uuid.NewString(),
		UserID: userID,
		Goal:   goal,
	}
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO workouts (id, user_id, goal) VALUES ($1, $2, $3) RETURNING created_at;`,
		workout.ID, workout.UserID, workout.Goal,
	).Scan(&workout.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for _, pe := range planExercises {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO workout_exercises
					(workout_id, exercise_id, target_sets, target_reps, rest_seconds)
					VALUES ($1, $2, $3, $4, $5);`,
			workout.ID, pe.ExerciseID, pe.TargetSets, pe.TargetReps, pe.RestSeconds,
		); err != nil {
			return nil, fmt.Errorf("insert workout exercise %d: %w", pe.ExerciseID, err)
		}
	}

	span.SetAttributes(attribute.String("workout.id", workout.ID))

	return &workout, nil
}

// GetPlan rebuilds the plan response for a stored workout.
func (r *Repo) GetPlan(ctx context.Context, workoutID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	var goal string
	err = r.db.QueryRow(ctx, `SELECT goal FROM workouts WHERE id = $1`, workoutID).Scan(&goal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.exercise_id, e.name, e.primary_muscle,
				we.target_sets, we.target_reps, we.rest_seconds
			FROM workout_exercises we
			JOIN exercises e ON we.exercise_id = e.id
				WHERE we.workout_id = $1
			ORDER BY we.id;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout exercises: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	plan := &Plan{
		WorkoutID: workoutID,
		Goal:      goal,
		Exercises: make([]PlanExercise, 0),
	}
	for rows.Next() {
		var pe PlanExercise
		if err := rows.Scan(
			&pe.ExerciseID, &pe.ExerciseName, &pe.PrimaryMuscle,
			&pe.TargetSets, &pe.TargetReps, &pe.RestSeconds,
		); err != nil {
			return nil, err
		}
		plan.Exercises = append(plan.Exercises, pe)
	}

	plan.EstimatedDuration = EstimatedDuration(plan.Exercises)

	return plan, nil
}

// History returns the user's workouts newest first, each with its
// prescriptions and every log of it being performed.
func (r *Repo) History(ctx context.Context, userID string, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, goal, created_at
			FROM workouts
				WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	history := make([]HistoryEntry, 0)
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.WorkoutID, &entry.Goal, &entry.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		history = append(history, entry)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range history {
		exercises, err := r.historyExercises(ctx, history[i].WorkoutID)
		if err != nil {
			return nil, fmt.Errorf("workout %s exercises: %w", history[i].WorkoutID, err)
		}
		logs, err := r.historyLogs(ctx, history[i].WorkoutID)
		if err != nil {
			return nil, fmt.Errorf("workout %s logs: %w", history[i].WorkoutID, err)
		}
		history[i].Exercises = exercises
		history[i].ExerciseCount = len(exercises)
		history[i].Logs = logs
		history[i].TimesCompleted = len(logs)
	}

	return history, nil
}

func (r *Repo) historyExercises(ctx context.Context, workoutID string) ([]HistoryExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.exercise_id, e.name, we.target_sets, we.target_reps
			FROM workout_exercises we
			JOIN exercises e ON we.exercise_id = e.id
				WHERE we.workout_id = $1
			ORDER BY we.id;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises := make([]HistoryExercise, 0)
	for rows.Next() {
		var he HistoryExercise
		if err := rows.Scan(&he.ExerciseID, &he.ExerciseName, &he.TargetSets, &he.TargetReps); err != nil {
			return nil, err
		}
		exercises = append(exercises, he)
	}
	return exercises, nil
}

func (r *Repo) historyLogs(ctx context.Context, workoutID string) ([]HistoryLog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, performed_at, duration_minutes
			FROM workout_logs
				WHERE workout_id = $1
			ORDER BY performed_at DESC, seq DESC;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs := make([]HistoryLog, 0)
	for rows.Next() {
		var hl HistoryLog
		if err := rows.Scan(&hl.LogID, &hl.PerformedAt, &hl.DurationMinutes); err != nil {
			return nil, err
		}
		logs = append(logs, hl)
	}
	return logs, nil
}

// Delete removes the workout together with its prescriptions, logs and
// logged sets, in one transaction.
func (r *Repo) Delete(ctx context.Context, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM exercise_sets
			WHERE workout_log_id IN (SELECT id FROM workout_logs WHERE workout_id = $1)`,
		workoutID,
	); err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workout_logs WHERE workout_id = $1`, workoutID); err != nil {
		return fmt.Errorf("delete workout logs: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1`, workoutID); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func rows2catalog(rows pgx.Rows) ([]CatalogExercise, error) {
	var catalog []CatalogExercise
	for rows.Next() {
		var ce CatalogExercise
		if err := rows.Scan(&ce.ID, &ce.Name, &ce.PrimaryMuscle); err != nil {
			return nil, err
		}
		catalog = append(catalog, ce)
	}

	if catalog == nil {
		catalog = make([]CatalogExercise, 0)
	}

	return catalog, nil
}
