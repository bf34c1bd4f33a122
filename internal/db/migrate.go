package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The cascade / null-out rules between these tables are implemented as
// explicit transactions in the repos, so the foreign keys carry no
// ON DELETE actions on purpose.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email      TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS equipment (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercises (
	id               SERIAL PRIMARY KEY,
	name             TEXT NOT NULL UNIQUE,
	primary_muscle   TEXT NOT NULL,
	secondary_muscle TEXT,
	equipment_id     INT REFERENCES equipment (id),
	calories_per_min FLOAT8 NOT NULL DEFAULT 5.0
);

CREATE TABLE IF NOT EXISTS workouts (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    UUID REFERENCES users (id),
	goal       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id           SERIAL PRIMARY KEY,
	workout_id   UUID NOT NULL REFERENCES workouts (id),
	exercise_id  INT NOT NULL REFERENCES exercises (id),
	target_sets  INT NOT NULL,
	target_reps  INT NOT NULL,
	rest_seconds INT NOT NULL DEFAULT 90
);

CREATE TABLE IF NOT EXISTS workout_logs (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	seq              BIGSERIAL,
	workout_id       UUID NOT NULL REFERENCES workouts (id),
	performed_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	duration_minutes INT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_sets (
	id             SERIAL PRIMARY KEY,
	workout_log_id UUID NOT NULL REFERENCES workout_logs (id),
	exercise_id    INT NOT NULL REFERENCES exercises (id),
	set_number     INT NOT NULL,
	reps           INT,
	weight_kg      FLOAT8 DEFAULT 0,
	rpe            FLOAT8
);

CREATE TABLE IF NOT EXISTS goals (
	id           SERIAL PRIMARY KEY,
	user_id      UUID NOT NULL REFERENCES users (id),
	goal_type    TEXT NOT NULL,
	target_value FLOAT8 NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts (user_id);
CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises (workout_id);
CREATE INDEX IF NOT EXISTS idx_workout_logs_workout ON workout_logs (workout_id, performed_at);
CREATE INDEX IF NOT EXISTS idx_exercise_sets_log ON exercise_sets (workout_log_id);
CREATE INDEX IF NOT EXISTS idx_exercise_sets_exercise ON exercise_sets (exercise_id);
CREATE INDEX IF NOT EXISTS idx_goals_user ON goals (user_id);
`

// Migrate applies the schema, every statement is idempotent so it runs
// on each boot.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
