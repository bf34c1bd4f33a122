package sessions

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/metrics"
	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// clients match on this exact wording, including the path placeholder
const noActiveLogMessage = "No active workout log found. " +
	"Please log the workout session first using POST /workouts/{workout_id}/log"

type sessionsService interface {
	LogSession(ctx context.Context, workoutID string, durationMinutes int) (*WorkoutLog, error)
	LogSets(ctx context.Context, workoutID string, exerciseID int, sets []SetInput) ([]ExerciseSet, error)
	Logs(ctx context.Context, workoutID string) ([]WorkoutLog, error)
}

type Handler struct {
	service        sessionsService
	metricsManager *metrics.Manager
}

func NewHandler(service sessionsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.log")
	defer span.End()

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	workoutID, ok := workoutIDFromRequest(w, r)
	if !ok {
		return
	}

	var logSessionReq LogSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&logSessionReq); err != nil {
		log.Errorf("log workout session, unmarshal json params: %s", err)
		http.Error(w, "log workout session failed", http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.LogSession(ctx, workoutID, logSessionReq.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidDuration):
			http.Error(w, "duration must be at least 1 minute", http.StatusBadRequest)
		default:
			log.Errorf("log workout session [workout %s]: %s", workoutID, err)
			http.Error(w, "log workout session failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterSessionsLogged.Inc()

	workoutLogJson, err := json.Marshal(workoutLog)
	if err != nil {
		log.Errorf("marshal workout log: %s", err)
		http.Error(w, "log workout session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutLogJson, http.StatusCreated)
}

func (handler *Handler) HandleLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.logsets")
	defer span.End()

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	workoutID, ok := workoutIDFromRequest(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	exerciseIDStr := vars["exercise_id"]
	if exerciseIDStr == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	exerciseID, err := strconv.Atoi(exerciseIDStr)
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	var logSetsReq LogSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&logSetsReq); err != nil {
		log.Errorf("log exercise sets, unmarshal json params: %s", err)
		http.Error(w, "log exercise sets failed", http.StatusBadRequest)
		return
	}

	createdSets, err := handler.service.LogSets(ctx, workoutID, exerciseID, logSetsReq.Sets)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotInWorkout):
			http.Error(
				w,
				fmt.Sprintf("Exercise %d is not part of workout %s", exerciseID, workoutID),
				http.StatusNotFound,
			)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrNoSets):
			http.Error(w, "at least one set must be provided", http.StatusBadRequest)
		case errors.Is(err, ErrNoWorkoutLog):
			http.Error(w, noActiveLogMessage, http.StatusBadRequest)
		default:
			log.Errorf("log exercise sets [workout %s, exercise %d]: %s", workoutID, exerciseID, err)
			http.Error(w, "log exercise sets failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterSetsLogged.Add(float64(len(createdSets)))

	createdSetsJson, err := json.Marshal(createdSets)
	if err != nil {
		log.Errorf("marshal created sets: %s", err)
		http.Error(w, "log exercise sets failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, createdSetsJson, http.StatusCreated)
}

func (handler *Handler) HandleGetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.getlogs")
	defer span.End()

	workoutID, ok := workoutIDFromRequest(w, r)
	if !ok {
		return
	}

	workoutLogs, err := handler.service.Logs(ctx, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout logs [workout %s]: %s", workoutID, err)
		http.Error(w, "get workout logs failed", http.StatusInternalServerError)
		return
	}

	workoutLogsJson, err := json.Marshal(workoutLogs)
	if err != nil {
		log.Errorf("marshal workout logs: %s", err)
		http.Error(w, "get workout logs failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutLogsJson)
}

func workoutIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	vars := mux.Vars(r)
	workoutID := vars["workout_id"]
	if workoutID == "" {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return "", false
	}
	if _, err := uuid.Parse(workoutID); err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return "", false
	}
	return workoutID, true
}
