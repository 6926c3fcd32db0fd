package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id, userID int) (*Exercise, error)
	ListAll(ctx context.Context, params ExerciseParams) ([]Exercise, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" || exercise.MuscleGroup == "" {
		http.Error(w, "error, exercise name or muscle group empty", http.StatusBadRequest)
		return
	}

	// user-added exercises always belong to that user
	exercise.OwnerID = &userID

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add new exercise [%s], [%s]: %s", exercise.MuscleGroup, exercise.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	addedExJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal new exercise: %s", err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %s", addedExJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	found, err := handler.repo.ListAll(ctx, ExerciseParams{
		UserID:      userID,
		MuscleGroup: r.URL.Query().Get("muscle_group"),
	})
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Exercises: found,
	})
	if err != nil {
		log.Errorf("failed to marshal exercises list response: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}
