package sets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/telemetry/metrics"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=sets_mocks_test.go -package=sets_test

type setsRepo interface {
	Add(ctx context.Context, set Set) (*Set, error)
	Get(ctx context.Context, id, userID int) (*Set, error)
	List(ctx context.Context, params ListParams) (_ []Set, total int, err error)
	Delete(ctx context.Context, id, userID int) error
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Sets  []Set `json:"sets"`
	Total int   `json:"total"`
}

type Handler struct {
	repo    setsRepo
	metrics *metrics.Manager
	// invalidateStats drops the user's cached stats responses after a write
	invalidateStats func(userID int)
}

func NewHandler(repo setsRepo, metricsManager *metrics.Manager, invalidateStats func(userID int)) *Handler {
	return &Handler{
		repo:            repo,
		metrics:         metricsManager,
		invalidateStats: invalidateStats,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.new")
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

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if set.ExerciseID <= 0 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if set.Weight != nil && *set.Weight < 0 {
		http.Error(w, "error, negative weight", http.StatusBadRequest)
		return
	}
	if set.Reps != nil && *set.Reps < 0 {
		http.Error(w, "error, negative reps", http.StatusBadRequest)
		return
	}

	set.UserID = userID
	if set.LoggedAt.IsZero() {
		set.LoggedAt = time.Now()
	}

	addedSet, err := handler.repo.Add(ctx, set)
	if err != nil {
		log.Errorf("failed to add new set for exercise %d: %s", set.ExerciseID, err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsLogged.Inc()
	if handler.invalidateStats != nil {
		handler.invalidateStats(userID)
	}

	addedSetJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new set added: %s", addedSetJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.get")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid set id", http.StatusBadRequest)
		return
	}

	set, err := handler.repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get set %d: %s", id, err)
		http.Error(w, "failed to get set", http.StatusInternalServerError)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("failed to marshal set %d: %s", id, err)
		http.Error(w, "failed to get set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, setJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.list")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "error, page must be greater than 0", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "error, size must be greater than 0", http.StatusBadRequest)
		return
	}

	params := ListParams{
		SetParams: SetParams{
			UserID: userID,
		},
		Page: page,
		Size: size,
	}
	if exerciseIDStr := r.URL.Query().Get("exercise_id"); exerciseIDStr != "" {
		exerciseID, err := strconv.Atoi(exerciseIDStr)
		if err != nil {
			http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
			return
		}
		params.ExerciseID = exerciseID
	}
	if programIDStr := r.URL.Query().Get("program_id"); programIDStr != "" {
		programID, err := strconv.Atoi(programIDStr)
		if err != nil {
			http.Error(w, "error, invalid program id", http.StatusBadRequest)
			return
		}
		params.ProgramID = programID
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "error, invalid from timestamp", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "error, invalid to timestamp", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	found, total, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list sets error: %s", err)
		http.Error(w, "failed to list sets", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Sets:  found,
		Total: total,
	})
	if err != nil {
		log.Errorf("failed to marshal sets list response: %s", err)
		http.Error(w, "failed to list sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.delete")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid set id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete set %d: %s", id, err)
		http.Error(w, "failed to delete set", http.StatusInternalServerError)
		return
	}

	if handler.invalidateStats != nil {
		handler.invalidateStats(userID)
	}

	deletedJson, err := json.Marshal(DeleteSetResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete set response: %s", err)
		http.Error(w, "failed to delete set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deletedJson)
}
