package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

// catalog responses are cached for a few minutes, any write clears the cache
const catalogCacheExpireSeconds = 5 * 60

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	ListAll(ctx context.Context, params ListParams) ([]Exercise, error)
	Delete(ctx context.Context, id int) error
	AddEquipment(ctx context.Context, name string) (*Equipment, error)
	ListEquipment(ctx context.Context) ([]Equipment, error)
	DeleteEquipment(ctx context.Context, id int) error
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type DeleteEquipmentResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewHandler(repo exercisesRepo) *Handler {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &Handler{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" || exercise.PrimaryMuscle == "" {
		http.Error(w, "error, name and primary muscle required", http.StatusBadRequest)
		return
	}
	if exercise.CaloriesPerMin == 0 {
		exercise.CaloriesPerMin = DefaultCaloriesPerMin
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "equipment not found", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new exercise: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()

	addedExerciseJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("marshal added exercise: %s", err)
		http.Error(w, "added, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	params := ListParams{
		PrimaryMuscle: r.URL.Query().Get("primary_muscle"),
		Equipment:     r.URL.Query().Get("equipment"),
	}

	cacheKey := fmt.Sprintf("exercises|pm=%s|eq=%s", params.PrimaryMuscle, params.Equipment)
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	exercises, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "marshal exercises failed", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(cacheKey), exercisesJson, catalogCacheExpireSeconds); err != nil {
		log.Errorf("cache exercises response: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
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

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal exercise: %s", err)
		http.Error(w, "marshal exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
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

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise %d: %s", id, err)
		http.Error(w, "failed to delete exercise", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()

	deleteRespJson, err := json.Marshal(DeleteExerciseResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete exercise response: %s", err)
		http.Error(w, "deleted, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteRespJson)
}

func (handler *Handler) HandleAddEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.add")
	defer span.End()

	if contentType := r.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var equipment Equipment
	if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
		log.Errorf("add equipment, unmarshal json params: %s", err)
		http.Error(w, "add equipment failed", http.StatusBadRequest)
		return
	}

	if equipment.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	addedEquipment, err := handler.repo.AddEquipment(ctx, equipment.Name)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "equipment already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new equipment: %s", err)
		http.Error(w, "add equipment failed", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()

	addedEquipmentJson, err := json.Marshal(addedEquipment)
	if err != nil {
		log.Errorf("marshal added equipment: %s", err)
		http.Error(w, "added, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedEquipmentJson, http.StatusCreated)
}

func (handler *Handler) HandleListEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.list")
	defer span.End()

	cacheKey := "equipment"
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	equipment, err := handler.repo.ListEquipment(ctx)
	if err != nil {
		log.Errorf("list equipment: %s", err)
		http.Error(w, "failed to list equipment", http.StatusInternalServerError)
		return
	}

	equipmentJson, err := json.Marshal(equipment)
	if err != nil {
		log.Errorf("marshal equipment: %s", err)
		http.Error(w, "marshal equipment failed", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(cacheKey), equipmentJson, catalogCacheExpireSeconds); err != nil {
		log.Errorf("cache equipment response: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, equipmentJson)
}

func (handler *Handler) HandleDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.equipment.delete")
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

	if err := handler.repo.DeleteEquipment(ctx, id); err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			http.Error(w, "equipment not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete equipment %d: %s", id, err)
		http.Error(w, "failed to delete equipment", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()

	deleteRespJson, err := json.Marshal(DeleteEquipmentResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete equipment response: %s", err)
		http.Error(w, "deleted, but failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deleteRespJson)
}
