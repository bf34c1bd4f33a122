package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fitplanpro/fitplan-backend/internal/config"
	"github.com/fitplanpro/fitplan-backend/internal/db"
	"github.com/fitplanpro/fitplan-backend/internal/logging"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// seeds the exercise catalog and equipment list, so a fresh deployment
// has something to generate workouts from; safe to run repeatedly

var equipmentNames = []string{
	"barbell",
	"dumbbell",
	"kettlebell",
	"cable machine",
	"pull-up bar",
	"bench",
	"resistance band",
	"treadmill",
	"rowing machine",
}

type seedExercise struct {
	name            string
	primaryMuscle   string
	secondaryMuscle string // empty means none
	equipment       string // empty means bodyweight
	caloriesPerMin  float64
}

var exerciseCatalog = []seedExercise{
	{name: "Bench Press", primaryMuscle: "chest", secondaryMuscle: "triceps", equipment: "barbell", caloriesPerMin: 6},
	{name: "Incline Dumbbell Press", primaryMuscle: "chest", secondaryMuscle: "shoulders", equipment: "dumbbell", caloriesPerMin: 6},
	{name: "Push Up", primaryMuscle: "chest", secondaryMuscle: "triceps", caloriesPerMin: 7},
	{name: "Cable Fly", primaryMuscle: "chest", equipment: "cable machine", caloriesPerMin: 5},

	{name: "Deadlift", primaryMuscle: "back", secondaryMuscle: "legs", equipment: "barbell", caloriesPerMin: 9},
	{name: "Pull Up", primaryMuscle: "back", secondaryMuscle: "arms", equipment: "pull-up bar", caloriesPerMin: 8},
	{name: "Barbell Row", primaryMuscle: "back", equipment: "barbell", caloriesPerMin: 7},
	{name: "Lat Pulldown", primaryMuscle: "back", equipment: "cable machine", caloriesPerMin: 5},
	{name: "Seated Cable Row", primaryMuscle: "back", equipment: "cable machine", caloriesPerMin: 5},

	{name: "Squat", primaryMuscle: "legs", secondaryMuscle: "core", equipment: "barbell", caloriesPerMin: 8},
	{name: "Romanian Deadlift", primaryMuscle: "legs", secondaryMuscle: "back", equipment: "barbell", caloriesPerMin: 7},
	{name: "Goblet Squat", primaryMuscle: "legs", secondaryMuscle: "core", equipment: "kettlebell", caloriesPerMin: 7},
	{name: "Lunge", primaryMuscle: "legs", equipment: "dumbbell", caloriesPerMin: 6},
	{name: "Calf Raise", primaryMuscle: "legs", caloriesPerMin: 4},

	{name: "Overhead Press", primaryMuscle: "shoulders", secondaryMuscle: "triceps", equipment: "barbell", caloriesPerMin: 6},
	{name: "Arnold Press", primaryMuscle: "shoulders", equipment: "dumbbell", caloriesPerMin: 6},
	{name: "Lateral Raise", primaryMuscle: "shoulders", equipment: "dumbbell", caloriesPerMin: 4},
	{name: "Face Pull", primaryMuscle: "shoulders", secondaryMuscle: "back", equipment: "cable machine", caloriesPerMin: 4},

	{name: "Bicep Curl", primaryMuscle: "arms", equipment: "dumbbell", caloriesPerMin: 4},
	{name: "Hammer Curl", primaryMuscle: "arms", equipment: "dumbbell", caloriesPerMin: 4},
	{name: "Tricep Pushdown", primaryMuscle: "arms", equipment: "cable machine", caloriesPerMin: 4},
	{name: "Skull Crusher", primaryMuscle: "arms", equipment: "barbell", caloriesPerMin: 4},
	{name: "Chin Up", primaryMuscle: "arms", secondaryMuscle: "back", equipment: "pull-up bar", caloriesPerMin: 8},

	{name: "Plank", primaryMuscle: "core", caloriesPerMin: 4},
	{name: "Russian Twist", primaryMuscle: "core", equipment: "kettlebell", caloriesPerMin: 5},
	{name: "Hanging Leg Raise", primaryMuscle: "core", equipment: "pull-up bar", caloriesPerMin: 5},

	{name: "Kettlebell Swing", primaryMuscle: "general", secondaryMuscle: "legs", equipment: "kettlebell", caloriesPerMin: 10},
	{name: "Burpee", primaryMuscle: "general", secondaryMuscle: "legs", caloriesPerMin: 10},
	{name: "Treadmill Run", primaryMuscle: "general", equipment: "treadmill", caloriesPerMin: 12},
	{name: "Rowing", primaryMuscle: "general", secondaryMuscle: "back", equipment: "rowing machine", caloriesPerMin: 11},
}

var demoGoalTypes = []string{"weight loss", "strength", "endurance", "muscle gain"}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	withDemo := flag.Bool("demo", false, "also create a demo user with a couple of goals")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx := context.Background()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate db: %s", err)
	}

	if err := seedEquipment(ctx, dbPool); err != nil {
		log.Fatalf("seed equipment: %s", err)
	}

	if err := seedExercises(ctx, dbPool); err != nil {
		log.Fatalf("seed exercises: %s", err)
	}

	if *withDemo {
		if err := seedDemoUser(ctx, dbPool); err != nil {
			log.Fatalf("seed demo user: %s", err)
		}
	}

	log.Println("seeding done")
}

func seedEquipment(ctx context.Context, dbPool *pgxpool.Pool) error {
	var added int
	for _, name := range equipmentNames {
		tag, err := dbPool.Exec(ctx,
			`INSERT INTO equipment (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`,
			name,
		)
		if err != nil {
			return fmt.Errorf("insert equipment %s: %w", name, err)
		}
		added += int(tag.RowsAffected())
	}
	log.Printf("equipment: %d added, %d already present", added, len(equipmentNames)-added)
	return nil
}

func seedExercises(ctx context.Context, dbPool *pgxpool.Pool) error {
	var added int
	for _, ex := range exerciseCatalog {
		var secondaryMuscle, equipment *string
		if ex.secondaryMuscle != "" {
			secondaryMuscle = &ex.secondaryMuscle
		}
		if ex.equipment != "" {
			equipment = &ex.equipment
		}

		// a missing equipment name resolves to a NULL equipment_id
		tag, err := dbPool.Exec(ctx,
			`INSERT INTO exercises (name, primary_muscle, secondary_muscle, equipment_id, calories_per_min)
			VALUES ($1, $2, $3, (SELECT id FROM equipment WHERE name = $4), $5)
			ON CONFLICT (name) DO NOTHING;`,
			ex.name, ex.primaryMuscle, secondaryMuscle, equipment, ex.caloriesPerMin,
		)
		if err != nil {
			return fmt.Errorf("insert exercise %s: %w", ex.name, err)
		}
		added += int(tag.RowsAffected())
	}
	log.Printf("exercises: %d added, %d already present", added, len(exerciseCatalog)-added)
	return nil
}

func seedDemoUser(ctx context.Context, dbPool *pgxpool.Pool) error {
	email := gofakeit.Email()
	name := gofakeit.Name()

	rows, err := dbPool.Query(ctx,
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id;`,
		email, name,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}
	if !rows.Next() {
		return fmt.Errorf("unexpected error [no rows next]")
	}

	var userID string
	if err := rows.Scan(&userID); err != nil {
		return err
	}
	rows.Close()

	for i := 0; i < 2; i++ {
		goalType := gofakeit.RandomString(demoGoalTypes)
		targetValue := gofakeit.Float64Range(55, 95)
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO goals (user_id, goal_type, target_value) VALUES ($1, $2, $3);`,
			userID, goalType, targetValue,
		); err != nil {
			return fmt.Errorf("insert goal: %w", err)
		}
	}

	log.Printf("demo user created: %s <%s> [%s]", name, email, userID)
	return nil
}
