package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fitplanpro/fitplan-backend/internal/middleware"
	"github.com/fitplanpro/fitplan-backend/internal/telemetry/metrics"
	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

// plans never change after creation, cached entries only need to expire
// to cover deletes done outside this service
const planCacheExpiry = 24 * time.Hour

type workoutsRepo interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	CatalogExercises(ctx context.Context, equipmentNames []string) ([]CatalogExercise, error)
	ExercisesByIDs(ctx context.Context, ids []int) ([]CatalogExercise, error)
	CreatePlan(ctx context.Context, userID, goal string, planExercises []PlanExercise) (*Workout, error)
	GetPlan(ctx context.Context, workoutID string) (*Plan, error)
	History(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
	Delete(ctx context.Context, workoutID string) error
}

type Handler struct {
	repo           workoutsRepo
	generator      *Generator
	redisClient    *redis.Client
	metricsManager *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	generator *Generator,
	redisClient *redis.Client,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		generator:      generator,
		redisClient:    redisClient,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	workoutsRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	createAllowedPerMin int,
) {
	// plan creation hits the catalog and writes several rows, worth
	// protecting from misbehaving clients
	workoutsRouter.Handle(
		"/generate",
		middleware.RateLimit(rateLimiter, "workout-create", createAllowedPerMin, metricsManager)(
			http.HandlerFunc(handler.HandleGenerate),
		),
	).Methods("POST", "OPTIONS").Name("generate-workout")
	workoutsRouter.Handle(
		"/custom",
		middleware.RateLimit(rateLimiter, "workout-create", createAllowedPerMin, metricsManager)(
			http.HandlerFunc(handler.HandleCustom),
		),
	).Methods("POST", "OPTIONS").Name("custom-workout")

	workoutsRouter.HandleFunc("/history", handler.HandleHistory).Methods("GET").Name("workout-history")
	workoutsRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("get-workout")
	workoutsRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.generate")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var genReq GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&genReq); err != nil {
		log.Errorf("generate workout, unmarshal json params: %s", err)
		http.Error(w, "generate workout failed", http.StatusBadRequest)
		return
	}

	if _, err := uuid.Parse(genReq.UserID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	userExists, err := handler.repo.UserExists(ctx, genReq.UserID)
	if err != nil {
		log.Errorf("generate workout, check user %s: %s", genReq.UserID, err)
		http.Error(w, "generate workout failed", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	goal := Goal(strings.ToLower(genReq.Goal))
	if !goal.IsValid() {
		http.Error(
			w,
			"invalid goal, must be one of: strength, hypertrophy, endurance, weight_loss, general",
			http.StatusBadRequest,
		)
		return
	}
	span.SetAttributes(attribute.String("workout.goal", goal.String()))

	catalog, err := handler.repo.CatalogExercises(ctx, genReq.Equipment)
	if err != nil {
		log.Errorf("generate workout, load catalog: %s", err)
		http.Error(w, "generate workout failed", http.StatusInternalServerError)
		return
	}
	if len(catalog) == 0 {
		http.Error(w, "no exercises found matching the equipment criteria", http.StatusBadRequest)
		return
	}

	selected := handler.generator.Select(catalog, genReq.DurationMinutes)
	prescription := goal.Prescription()

	planExercises := make([]PlanExercise, 0, len(selected))
	for _, ex := range selected {
		planExercises = append(planExercises, PlanExercise{
			ExerciseID:    ex.ID,
			ExerciseName:  ex.Name,
			PrimaryMuscle: ex.PrimaryMuscle,
			TargetSets:    prescription.Sets,
			TargetReps:    prescription.Reps,
			RestSeconds:   prescription.RestSeconds,
		})
	}

	workout, err := handler.repo.CreatePlan(ctx, genReq.UserID, goal.String(), planExercises)
	if err != nil {
		log.Errorf("generate workout, create plan: %s", err)
		http.Error(w, "generate workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsGenerated.Inc()

	plan := Plan{
		WorkoutID:         workout.ID,
		Goal:              goal.String(),
		Exercises:         planExercises,
		EstimatedDuration: EstimatedDuration(planExercises),
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal generated plan: %s", err)
		http.Error(w, "created, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	handler.cachePlan(ctx, plan.WorkoutID, planJson)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleCustom(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.custom")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var customReq CustomRequest
	if err := json.NewDecoder(r.Body).Decode(&customReq); err != nil {
		log.Errorf("custom workout, unmarshal json params: %s", err)
		http.Error(w, "custom workout failed", http.StatusBadRequest)
		return
	}

	if _, err := uuid.Parse(customReq.UserID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	userExists, err := handler.repo.UserExists(ctx, customReq.UserID)
	if err != nil {
		log.Errorf("custom workout, check user %s: %s", customReq.UserID, err)
		http.Error(w, "custom workout failed", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	if len(customReq.Exercises) == 0 {
		http.Error(w, "at least one exercise must be provided", http.StatusBadRequest)
		return
	}

	ids := make([]int, 0, len(customReq.Exercises))
	for _, spec := range customReq.Exercises {
		ids = append(ids, spec.ExerciseID)
	}

	resolved, err := handler.repo.ExercisesByIDs(ctx, ids)
	if err != nil {
		log.Errorf("custom workout, resolve exercises: %s", err)
		http.Error(w, "custom workout failed", http.StatusInternalServerError)
		return
	}
	if len(resolved) != len(ids) {
		http.Error(w, "one or more exercises not found", http.StatusNotFound)
		return
	}

	catalogByID := make(map[int]CatalogExercise, len(resolved))
	for _, ce := range resolved {
		catalogByID[ce.ID] = ce
	}

	planExercises := make([]PlanExercise, 0, len(customReq.Exercises))
	for _, spec := range customReq.Exercises {
		ce := catalogByID[spec.ExerciseID]
		planExercises = append(planExercises, PlanExercise{
			ExerciseID:    ce.ID,
			ExerciseName:  ce.Name,
			PrimaryMuscle: ce.PrimaryMuscle,
			TargetSets:    intOrDefault(spec.TargetSets, 3),
			TargetReps:    intOrDefault(spec.TargetReps, 10),
			RestSeconds:   intOrDefault(spec.RestSeconds, 90),
		})
	}

	workout, err := handler.repo.CreatePlan(ctx, customReq.UserID, customReq.Goal, planExercises)
	if err != nil {
		log.Errorf("custom workout, create plan: %s", err)
		http.Error(w, "custom workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCustom.Inc()

	plan := Plan{
		WorkoutID:         workout.ID,
		Goal:              customReq.Goal,
		Exercises:         planExercises,
		EstimatedDuration: EstimatedDuration(planExercises),
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal custom plan: %s", err)
		http.Error(w, "created, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	handler.cachePlan(ctx, plan.WorkoutID, planJson)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		if parsedLimit < 1 {
			http.Error(w, "error, limit invalid", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	userExists, err := handler.repo.UserExists(ctx, userID)
	if err != nil {
		log.Errorf("workout history, check user %s: %s", userID, err)
		http.Error(w, "get workout history failed", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	history, err := handler.repo.History(ctx, userID, limit)
	if err != nil {
		log.Errorf("workout history for %s: %s", userID, err)
		http.Error(w, "get workout history failed", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal workout history: %s", err)
		http.Error(w, "marshal workout history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)

	workoutID := vars["id"]
	if _, err := uuid.Parse(workoutID); err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	cmd := handler.redisClient.Get(ctx, planCacheKey(workoutID))
	if cachedPlan := cmd.Val(); cachedPlan != "" {
		span.SetAttributes(attribute.Bool("plan.from-cache", true))
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(cachedPlan))
		return
	}
	span.SetAttributes(attribute.Bool("plan.from-cache", false))

	plan, err := handler.repo.GetPlan(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s: %s", workoutID, err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal workout plan: %s", err)
		http.Error(w, "marshal workout plan failed", http.StatusInternalServerError)
		return
	}

	handler.cachePlan(ctx, workoutID, planJson)

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)

	workoutID := vars["id"]
	if _, err := uuid.Parse(workoutID); err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s: %s", workoutID, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	if err := handler.redisClient.Del(ctx, planCacheKey(workoutID)).Err(); err != nil {
		log.Errorf("failed to drop cached plan for %s: %s", workoutID, err)
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{DeletedID: workoutID})
	if err != nil {
		log.Errorf("marshal delete workout response: %s", err)
		http.Error(w, "deleted, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteRespJson)
}

func (handler *Handler) cachePlan(ctx context.Context, workoutID string, planJson []byte) {
	if err := handler.redisClient.Set(ctx, planCacheKey(workoutID), planJson, planCacheExpiry).Err(); err != nil {
		log.Errorf("failed to cache plan for %s: %s", workoutID, err)
	}
}

func planCacheKey(workoutID string) string {
	return fmt.Sprintf("workout-plan::%s", workoutID)
}

func intOrDefault(val *int, defaultVal int) int {
	if val == nil {
		return defaultVal
	}
	return *val
}
