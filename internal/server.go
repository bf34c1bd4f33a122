package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/fitplanpro/fitplan-backend/internal/config"
	"github.com/fitplanpro/fitplan-backend/internal/db"
	"github.com/fitplanpro/fitplan-backend/internal/exercises"
	"github.com/fitplanpro/fitplan-backend/internal/middleware"
	"github.com/fitplanpro/fitplan-backend/internal/misc"
	"github.com/fitplanpro/fitplan-backend/internal/progress"
	"github.com/fitplanpro/fitplan-backend/internal/sessions"
	"github.com/fitplanpro/fitplan-backend/internal/telemetry/metrics"
	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/internal/users"
	"github.com/fitplanpro/fitplan-backend/internal/workouts"

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

	config        *config.Config
	dbPool        *pgxpool.Pool
	quotesManager *misc.QuotesManager

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
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
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	// an unreachable store is a boot failure, not a warning
	if err := dbPool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(
		params.HoneycombTracingEnabled, "fitplan-backend", rdb,
	)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.QuotesCsvPath != "" {
		quotesCsvFile, err := os.Open(params.Config.QuotesCsvPath)
		if err != nil {
			return nil, fmt.Errorf("open quotes file: %w", err)
		}
		defer func() {
			if err := quotesCsvFile.Close(); err != nil {
				log.Warnf("close quotes csv file: %s", err)
			}
		}()

		s.quotesManager, err = misc.NewQuoteManager(csv.NewReader(quotesCsvFile))
		if err != nil {
			return nil, fmt.Errorf("failed to create quote manager: %s", err)
		}
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.quotesManager, s.versionInfo)
	miscHandler.SetupRoutes(r)

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET").Name("list-exercises")
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/equipment", exercisesHandler.HandleListEquipment).Methods("GET").Name("list-equipment")
	r.HandleFunc("/equipment", exercisesHandler.HandleAddEquipment).Methods("POST", "OPTIONS").Name("new-equipment")
	r.HandleFunc("/equipment/{id}", exercisesHandler.HandleDeleteEquipment).Methods("DELETE", "OPTIONS").Name("delete-equipment")

	// session routes go before the workouts subrouter, their paths share
	// the /workouts prefix
	sessionsHandler := sessions.NewHandler(
		sessions.NewService(sessions.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/workouts/{workout_id}/log", sessionsHandler.HandleLogSession).
		Methods("POST", "OPTIONS").Name("log-session")
	r.HandleFunc("/workouts/{workout_id}/exercises/{exercise_id}/log", sessionsHandler.HandleLogSets).
		Methods("POST", "OPTIONS").Name("log-sets")
	r.HandleFunc("/workouts/{workout_id}/logs", sessionsHandler.HandleGetLogs).
		Methods("GET").Name("get-logs")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	workoutsHandler := workouts.NewHandler(
		workouts.NewRepo(s.dbPool),
		workouts.NewGenerator(),
		s.redisClient,
		s.metricsManager,
	)
	workoutsHandler.SetupRoutes(
		r.PathPrefix("/workouts").Subrouter(),
		reqRateLimiter,
		s.metricsManager,
		s.config.GenerateRateLimitAllowedPerMin,
	)

	progressHandler := progress.NewHandler(
		progress.NewAnalyzer(progress.NewRepo(s.dbPool)),
	)
	r.HandleFunc("/progress", progressHandler.HandleSummary).Methods("GET").Name("progress-summary")
	r.HandleFunc("/progress/exercise/{exercise_id}", progressHandler.HandleExerciseProgress).
		Methods("GET").Name("exercise-progress")

	usersHandler := users.NewHandler(users.NewRepo(s.dbPool))
	r.HandleFunc("/users", usersHandler.HandleAddUser).Methods("POST", "OPTIONS").Name("new-user")
	r.HandleFunc("/users/{id}", usersHandler.HandleGetUser).Methods("GET").Name("get-user")
	r.HandleFunc("/users/{id}", usersHandler.HandleDeleteUser).Methods("DELETE", "OPTIONS").Name("delete-user")
	r.HandleFunc("/goals", usersHandler.HandleAddGoal).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals", usersHandler.HandleListGoals).Methods("GET").Name("list-goals")
	r.HandleFunc("/goals/{id}", usersHandler.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("delete-goal")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

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
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
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
