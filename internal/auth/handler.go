package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

// userDirectory resolves a username to the stored account, so the
// handler can stay decoupled from the profiles storage.
type userDirectory interface {
	FindUserByUsername(ctx context.Context, username string) (userID int, passwordHash string, err error)
}

// ErrUserNotFound is what a userDirectory returns for unknown usernames.
var ErrUserNotFound = errors.New("user not found")

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}

type Handler struct {
	authService *Service
	users       userDirectory
}

func NewHandler(authService *Service, users userDirectory) *Handler {
	return &Handler{
		authService: authService,
		users:       users,
	}
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	userIP, err := pkg.ReadUserIP(r)
	if err != nil {
		userIP = "unknown"
	}

	userID, passwordHash, err := handler.users.FindUserByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user %s from %s", loginReq.Username, userIP)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, find user %s: %s", loginReq.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, passwordHash) {
		log.Tracef("[password] failed login attempt for user %s from %s", loginReq.Username, userIP)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	loginRespJson, err := json.Marshal(LoginResponse{
		Token:  token,
		UserID: userID,
	})
	if err != nil {
		log.Errorf("login failed, marshal response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, loginRespJson)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	token := r.Header.Get("X-LIFT-TOKEN")
	if token == "" {
		http.Error(w, "error, missing token", http.StatusBadRequest)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, token)
	if err != nil {
		log.Tracef("logout failed for token %s: %s", token, err)
		http.Error(w, "logout failed", http.StatusBadRequest)
		return
	}
	if !loggedOut {
		http.Error(w, "logout failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
