package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	AddUser(ctx context.Context, email, name string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UserExists(ctx context.Context, id string) (bool, error)
	DeleteUser(ctx context.Context, id string) error
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	ListGoals(ctx context.Context, userID string) ([]Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

type DeleteUserResponse struct {
	DeletedID string `json:"deletedId"`
}

type DeleteGoalResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo usersRepo
}

func NewHandler(repo usersRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.add")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var user User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Errorf("add user, unmarshal json params: %s", err)
		http.Error(w, "add user failed", http.StatusBadRequest)
		return
	}

	if user.Email == "" {
		http.Error(w, "error, email required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(user.Email, "@") {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}

	addedUser, err := handler.repo.AddUser(ctx, user.Email, user.Name)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new user: %s", err)
		http.Error(w, "add user failed", http.StatusInternalServerError)
		return
	}

	addedUserJson, err := json.Marshal(addedUser)
	if err != nil {
		log.Errorf("marshal added user: %s", err)
		http.Error(w, "added, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedUserJson, http.StatusCreated)
}

func (handler *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	user, err := handler.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %s: %s", id, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user: %s", err)
		http.Error(w, "marshal user failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}

func (handler *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	id, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete user %s: %s", id, err)
		http.Error(w, "failed to delete user", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteUserResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete user response: %s", err)
		http.Error(w, "deleted, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteRespJson)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Errorf("add goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(goal.UserID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}
	if goal.GoalType == "" {
		http.Error(w, "error, goal type required", http.StatusBadRequest)
		return
	}

	exists, err := handler.repo.UserExists(ctx, goal.UserID)
	if err != nil {
		log.Errorf("add goal, check user %s: %s", goal.UserID, err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	addedGoal, err := handler.repo.AddGoal(ctx, goal)
	if err != nil {
		log.Errorf("failed to add new goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	addedGoalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("marshal added goal: %s", err)
		http.Error(w, "added, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedGoalJson, http.StatusCreated)
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	exists, err := handler.repo.UserExists(ctx, userID)
	if err != nil {
		log.Errorf("list goals, check user %s: %s", userID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	goals, err := handler.repo.ListGoals(ctx, userID)
	if err != nil {
		log.Errorf("list goals for user %s: %s", userID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "marshal goals failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	vars := mux.Vars(r)

	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteGoal(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete goal %d: %s", id, err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteGoalResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete goal response: %s", err)
		http.Error(w, "deleted, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteRespJson)
}

func userIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	vars := mux.Vars(r)

	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}
