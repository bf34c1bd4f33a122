package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

// ListParams filter the catalog. Both filters are substring matches,
// case-insensitive. Empty values match everything.
type ListParams struct {
	PrimaryMuscle string
	Equipment     string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercises
				(name, primary_muscle, secondary_muscle, equipment_id, calories_per_min)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		exercise.Name, exercise.PrimaryMuscle, exercise.SecondaryMuscle,
		exercise.EquipmentID, exercise.CaloriesPerMin,
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

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, e.primary_muscle, e.secondary_muscle, e.equipment_id, e.calories_per_min
			FROM exercises e
			WHERE e.id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// ListAll returns catalog exercises matching the given filters.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("primary_muscle", params.PrimaryMuscle))
	span.SetAttributes(attribute.String("equipment", params.Equipment))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, e.primary_muscle, e.secondary_muscle, e.equipment_id, e.calories_per_min
			FROM exercises e
			LEFT JOIN equipment eq ON e.equipment_id = eq.id
				WHERE ($1::text = '' OR e.primary_muscle ILIKE '%' || $1 || '%')
				AND ($2::text = '' OR eq.name ILIKE '%' || $2 || '%')
			ORDER BY e.name;`,
		params.PrimaryMuscle, params.Equipment,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return exercises, nil
}

// Delete removes the exercise together with the workout prescriptions and
// logged sets that reference it, in one transaction.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

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

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_sets WHERE exercise_id = $1`, id); err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE exercise_id = $1`, id); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) AddEquipment(ctx context.Context, name string) (_ *Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addequipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err = r.db.QueryRow(
		ctx,
		`INSERT INTO equipment (name) VALUES ($1) RETURNING id;`,
		name,
	).Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("equipment.id", id))

	return &Equipment{ID: id, Name: name}, nil
}

func (r *Repo) ListEquipment(ctx context.Context) (_ []Equipment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listequipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM equipment ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	equipment := make([]Equipment, 0)
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}

	return equipment, nil
}

// DeleteEquipment clears the equipment reference on exercises that use it,
// then removes the equipment row. Exercises themselves stay.
func (r *Repo) DeleteEquipment(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.deleteequipment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

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

	if _, err = tx.Exec(ctx, `UPDATE exercises SET equipment_id = NULL WHERE equipment_id = $1`, id); err != nil {
		return fmt.Errorf("clear equipment references: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.PrimaryMuscle, &e.SecondaryMuscle,
			&e.EquipmentID, &e.CaloriesPerMin,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}

	return exercises, nil
}
