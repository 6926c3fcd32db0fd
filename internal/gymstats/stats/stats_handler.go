package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/gymstats/standards"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const (
	oneMinute         = 60
	bodyMapCacheTTL   = oneMinute * 5
	standardsCacheTTL = oneMinute * 60
)

type statsService interface {
	StatsByExercise(ctx context.Context, userID int) (map[int]ExerciseStats, error)
	StatsByProgram(ctx context.Context, userID, programID int) (map[int]ExerciseStats, error)
	StatsByMuscleGroup(ctx context.Context, userID int, muscleGroup string) ([]ExerciseStats, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID, limit int) ([]HistoryPoint, error)
	BodyMap(ctx context.Context, userID int) (*BodyMap, error)
	Standards() *standards.Table
}

type StatsByExerciseResponse struct {
	Stats map[int]ExerciseStats `json:"stats"`
}

type StatsByMuscleGroupResponse struct {
	MuscleGroup string          `json:"muscleGroup"`
	Stats       []ExerciseStats `json:"stats"`
}

type HistoryResponse struct {
	ExerciseID int            `json:"exerciseId"`
	Points     []HistoryPoint `json:"points"`
}

type Handler struct {
	service statsService
	cache   *freecache.Cache
}

func NewHandler(service statsService) *Handler {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &Handler{
		service: service,
		cache:   freecache.NewCache(cacheSize),
	}
}

func (handler *Handler) HandleStatsByExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.byExercise")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	found, err := handler.service.StatsByExercise(ctx, userID)
	if err != nil {
		log.Errorf("stats by exercise for user %d: %s", userID, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(StatsByExerciseResponse{Stats: found})
	if err != nil {
		log.Errorf("failed to marshal stats by exercise: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleStatsByProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.byProgram")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	programID, err := strconv.Atoi(vars["programId"])
	if err != nil {
		http.Error(w, "error, invalid program id", http.StatusBadRequest)
		return
	}

	found, err := handler.service.StatsByProgram(ctx, userID, programID)
	if err != nil {
		log.Errorf("stats by program %d for user %d: %s", programID, userID, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(StatsByExerciseResponse{Stats: found})
	if err != nil {
		log.Errorf("failed to marshal stats by program: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleStatsByMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.byMuscleGroup")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	muscleGroup := vars["muscleGroup"]
	if muscleGroup == "" {
		http.Error(w, "error, muscle group empty", http.StatusBadRequest)
		return
	}

	found, err := handler.service.StatsByMuscleGroup(ctx, userID, muscleGroup)
	if err != nil {
		log.Errorf("stats by muscle group %s for user %d: %s", muscleGroup, userID, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(StatsByMuscleGroupResponse{
		MuscleGroup: muscleGroup,
		Stats:       found,
	})
	if err != nil {
		log.Errorf("failed to marshal stats by muscle group: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statsJson)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exerciseHistory")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseID, err := strconv.Atoi(vars["exerciseId"])
	if err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	limit := -1 // all days
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
	}

	points, err := handler.service.ExerciseHistory(ctx, userID, exerciseID, limit)
	if err != nil {
		log.Errorf("exercise %d history for user %d: %s", exerciseID, userID, err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(HistoryResponse{
		ExerciseID: exerciseID,
		Points:     points,
	})
	if err != nil {
		log.Errorf("failed to marshal exercise history: %s", err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (handler *Handler) HandleBodyMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.bodyMap")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	cacheKey := []byte(fmt.Sprintf("bodymap::%d", userID))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("found body map for user %d in cache", userID)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	bodyMap, err := handler.service.BodyMap(ctx, userID)
	if err != nil {
		log.Errorf("body map for user %d: %s", userID, err)
		http.Error(w, "failed to compute body map", http.StatusInternalServerError)
		return
	}

	bodyMapJson, err := json.Marshal(bodyMap)
	if err != nil {
		log.Errorf("failed to marshal body map: %s", err)
		http.Error(w, "failed to compute body map", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, bodyMapJson, bodyMapCacheTTL); err != nil {
		log.Errorf("failed to cache body map for user %d: %s", userID, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, bodyMapJson)
}

// InvalidateBodyMap drops the cached body map after new sets are
// logged or body metrics change.
func (handler *Handler) InvalidateBodyMap(userID int) {
	handler.cache.Del([]byte(fmt.Sprintf("bodymap::%d", userID)))
}

func (handler *Handler) HandleStandards(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.standards")
	defer span.End()

	cacheKey := []byte("standards")
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	standardsJson, err := json.Marshal(handler.service.Standards())
	if err != nil {
		log.Errorf("failed to marshal strength standards: %s", err)
		http.Error(w, "failed to get strength standards", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, standardsJson, standardsCacheTTL); err != nil {
		log.Errorf("failed to cache strength standards: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, standardsJson)
}
