package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/config"
	"github.com/liftlog/backend/internal/db"
	"github.com/liftlog/backend/internal/gymstats/exercises"
	"github.com/liftlog/backend/internal/gymstats/profiles"
	"github.com/liftlog/backend/internal/gymstats/sets"
	"github.com/liftlog/backend/internal/gymstats/standards"
	"github.com/liftlog/backend/internal/gymstats/stats"
	"github.com/liftlog/backend/internal/middleware"
	"github.com/liftlog/backend/internal/telemetry/metrics"
	"github.com/liftlog/backend/internal/telemetry/tracing"
	"github.com/liftlog/backend/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	dbPool         *pgxpool.Pool
	standardsTable *standards.Table

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "liftlog_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	var standardsTable *standards.Table
	if params.Config.StandardsPath != "" {
		standardsTable, err = standards.LoadFromFile(params.Config.StandardsPath)
	} else {
		standardsTable, err = standards.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load strength standards: %w", err)
	}

	return &Server{
		config:         params.Config,
		dbPool:         dbPool,
		standardsTable: standardsTable,
		versionInfo:    params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm all lifted up 🏋️")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	profilesRepo := profiles.NewRepo(s.dbPool)
	exercisesRepo := exercises.NewRepo(s.dbPool)
	setsRepo := sets.NewRepo(s.dbPool)

	statsService := stats.NewService(setsRepo, exercisesRepo, profilesRepo, s.standardsTable, s.metricsManager)
	statsHandler := stats.NewHandler(statsService)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService, profilesRepo)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	profilesHandler := profiles.NewHandler(profilesRepo, statsHandler.InvalidateBodyMap)
	authRouter.HandleFunc("/register", profilesHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/profile/me", profilesHandler.HandleGetMe).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile/me/body", profilesHandler.HandleUpdateBodyMetrics).Methods("PUT", "OPTIONS").Name("update-body-metrics")

	exercisesHandler := exercises.NewHandler(exercisesRepo)
	r.HandleFunc("/gymstats/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/gymstats/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/gymstats/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	setsHandler := sets.NewHandler(setsRepo, s.metricsManager, statsHandler.InvalidateBodyMap)
	r.HandleFunc("/gymstats/sets", setsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-set")
	r.HandleFunc("/gymstats/sets/page/{page}/size/{size}", setsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sets")
	r.HandleFunc("/gymstats/sets/{id}", setsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-set")
	r.HandleFunc("/gymstats/sets/{id}", setsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-set")
	r.HandleFunc("/gymstats/stats/exercises", statsHandler.HandleStatsByExercise).Methods("GET", "OPTIONS").Name("stats-by-exercise")
	r.HandleFunc("/gymstats/stats/program/{programId}", statsHandler.HandleStatsByProgram).Methods("GET", "OPTIONS").Name("stats-by-program")
	r.HandleFunc("/gymstats/stats/group/{muscleGroup}", statsHandler.HandleStatsByMuscleGroup).Methods("GET", "OPTIONS").Name("stats-by-muscle-group")
	r.HandleFunc("/gymstats/exercise/{exerciseId}/history", statsHandler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	r.HandleFunc("/gymstats/bodymap", statsHandler.HandleBodyMap).Methods("GET", "OPTIONS").Name("bodymap")
	r.HandleFunc("/gymstats/standards", statsHandler.HandleStandards).Methods("GET", "OPTIONS").Name("standards")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		strconv.Itoa(s.config.PrometheusMetricsPort),
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
