package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=profiles_mocks_test.go -package=profiles_test

type profilesRepo interface {
	Add(ctx context.Context, profile Profile) (*Profile, error)
	Get(ctx context.Context, id int) (*Profile, error)
	UpdateBodyMetrics(ctx context.Context, id int, metrics BodyMetrics) error
}

type Handler struct {
	repo profilesRepo
	// invalidateStats drops the user's cached stats responses after body metrics change
	invalidateStats func(userID int)
}

func NewHandler(repo profilesRepo, invalidateStats func(userID int)) *Handler {
	return &Handler{
		repo:            repo,
		invalidateStats: invalidateStats,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	type registerRequest struct {
		Username   string   `json:"username"`
		Password   string   `json:"password"`
		BodyWeight *float64 `json:"bodyWeight,omitempty"`
		Gender     *string  `json:"gender,omitempty"`
		Age        *int     `json:"age,omitempty"`
	}

	var registerReq registerRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if registerReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if len(registerReq.Password) < 8 {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}
	if registerReq.BodyWeight != nil && *registerReq.BodyWeight <= 0 {
		http.Error(w, "error, invalid body weight", http.StatusBadRequest)
		return
	}
	if registerReq.Age != nil && (*registerReq.Age < 0 || *registerReq.Age > 150) {
		http.Error(w, "error, invalid age", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(registerReq.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	addedProfile, err := handler.repo.Add(ctx, Profile{
		Username:     registerReq.Username,
		PasswordHash: passwordHash,
		BodyWeight:   registerReq.BodyWeight,
		Gender:       registerReq.Gender,
		Age:          registerReq.Age,
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "error, username taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to register user %s: %s", registerReq.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(addedProfile)
	if err != nil {
		log.Errorf("failed to marshal new profile: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s [%d]", addedProfile.Username, addedProfile.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusCreated)
}

func (handler *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.getMe")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	profile, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (handler *Handler) HandleUpdateBodyMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.updateBodyMetrics")
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

	var metrics BodyMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		log.Tracef("update body metrics, unmarshal json params: %s", err)
		http.Error(w, "update body metrics failed", http.StatusBadRequest)
		return
	}

	if metrics.BodyWeight != nil && *metrics.BodyWeight <= 0 {
		http.Error(w, "error, invalid body weight", http.StatusBadRequest)
		return
	}
	if metrics.Age != nil && (*metrics.Age < 0 || *metrics.Age > 150) {
		http.Error(w, "error, invalid age", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateBodyMetrics(ctx, userID, metrics); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update body metrics for %d: %s", userID, err)
		http.Error(w, "failed to update body metrics", http.StatusInternalServerError)
		return
	}

	if handler.invalidateStats != nil {
		handler.invalidateStats(userID)
	}

	pkg.WriteTextResponseOK(w, "updated")
}
