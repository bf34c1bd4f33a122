package users

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
	ErrUserNotFound = errors.New("user not found")
	ErrGoalNotFound = errors.New("goal not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddUser(ctx context.Context, email, name string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id, created_at;`,
		email, name,
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

	user := User{
		Email: email,
		Name:  name,
	}
	if err := rows.Scan(&user.ID, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	return &user, nil
}

func (r *Repo) GetUser(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var user User
	if err = r.db.QueryRow(
		ctx,
		`SELECT id, email, name, created_at FROM users WHERE id = $1;`,
		id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repo) UserExists(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var found string
	if err = r.db.QueryRow(
		ctx,
		`SELECT id FROM users WHERE id = $1;`,
		id,
	).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteUser removes the user and everything hanging off it: logged sets,
// workout logs, workout prescriptions, workouts and goals, in one
// transaction.
func (r *Repo) DeleteUser(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

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

	if _, err = tx.Exec(ctx, `
		DELETE FROM exercise_sets WHERE workout_log_id IN (
			SELECT wl.id FROM workout_logs wl
			JOIN workouts w ON wl.workout_id = w.id
			WHERE w.user_id = $1
		)`, id,
	); err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}
	if _, err = tx.Exec(ctx, `
		DELETE FROM workout_logs WHERE workout_id IN (
			SELECT id FROM workouts WHERE user_id = $1
		)`, id,
	); err != nil {
		return fmt.Errorf("delete workout logs: %w", err)
	}
	if _, err = tx.Exec(ctx, `
		DELETE FROM workout_exercises WHERE workout_id IN (
			SELECT id FROM workouts WHERE user_id = $1
		)`, id,
	); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM workouts WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM goals WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete goals: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goals (user_id, goal_type, target_value)
				VALUES ($1, $2, $3)
			RETURNING id, created_at;`,
		goal.UserID, goal.GoalType, goal.TargetValue,
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

	if err := rows.Scan(&goal.ID, &goal.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))

	return &goal, nil
}

func (r *Repo) ListGoals(ctx context.Context, userID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, goal_type, target_value, created_at
			FROM goals
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	goals := make([]Goal, 0)
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.GoalType, &goal.TargetValue, &goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

func (r *Repo) DeleteGoal(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
