package progress

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type progressAnalyzer interface {
	Summary(ctx context.Context, userID string, days int) (*Summary, error)
	ExerciseProgress(ctx context.Context, userID string, exerciseID, days int) (*ExerciseProgress, error)
}

type Handler struct {
	analyzer progressAnalyzer
}

func NewHandler(analyzer progressAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	days, ok := daysFromRequest(w, r, 30)
	if !ok {
		return
	}

	summary, err := handler.analyzer.Summary(ctx, userID, days)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("progress summary [user %s]: %s", userID, err)
		http.Error(w, "get progress summary failed", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal progress summary: %s", err)
		http.Error(w, "get progress summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercise")
	defer span.End()

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

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	days, ok := daysFromRequest(w, r, 90)
	if !ok {
		return
	}

	exerciseProgress, err := handler.analyzer.ExerciseProgress(ctx, userID, exerciseID, days)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("exercise progress [user %s, exercise %d]: %s", userID, exerciseID, err)
			http.Error(w, "get exercise progress failed", http.StatusInternalServerError)
		}
		return
	}

	exerciseProgressJson, err := json.Marshal(exerciseProgress)
	if err != nil {
		log.Errorf("marshal exercise progress: %s", err)
		http.Error(w, "get exercise progress failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseProgressJson)
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return "", false
	}
	if _, err := uuid.Parse(userID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

func daysFromRequest(w http.ResponseWriter, r *http.Request, defaultDays int) (int, bool) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return defaultDays, true
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		http.Error(w, "error, days NaN", http.StatusBadRequest)
		return 0, false
	}
	if days < 1 || days > 365 {
		http.Error(w, "error, days must be between 1 and 365", http.StatusBadRequest)
		return 0, false
	}
	return days, true
}
