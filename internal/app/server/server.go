// Package server assembles the identity and resource API.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"workwise/internal/domain/audit"
	"workwise/internal/domain/auth"
	"workwise/internal/domain/employees"
	"workwise/internal/domain/evaluations"
	"workwise/internal/domain/payroll"
	"workwise/internal/domain/permissions"
	"workwise/internal/domain/positions"
	"workwise/internal/domain/reports"
	"workwise/internal/domain/schedules"
	"workwise/internal/platform/config"
	"workwise/internal/platform/crypto"
	"workwise/internal/platform/db"
	"workwise/internal/platform/jobs"
	"workwise/internal/platform/logger"
	"workwise/internal/platform/metrics"
	"workwise/internal/platform/redis"
	audithandler "workwise/internal/transport/http/handlers/audit"
	authhandler "workwise/internal/transport/http/handlers/auth"
	dashboardhandler "workwise/internal/transport/http/handlers/dashboard"
	employeeshandler "workwise/internal/transport/http/handlers/employees"
	evaluationshandler "workwise/internal/transport/http/handlers/evaluations"
	payrollhandler "workwise/internal/transport/http/handlers/payroll"
	permissionshandler "workwise/internal/transport/http/handlers/permissions"
	roleshandler "workwise/internal/transport/http/handlers/roles"
	scheduleshandler "workwise/internal/transport/http/handlers/schedules"
	"workwise/internal/transport/http/middleware"
)

// APIPrefix is where the resource API is mounted.
const APIPrefix = "/api/v1"

const jobRevocationSweep = "revocation_sweep"

type App struct {
	Config  config.Config
	Log     zerolog.Logger
	Router  http.Handler
	Auth    *auth.Service
	Jobs    *jobs.Service
	Metrics *metrics.Collector

	pool        *pgxpool.Pool
	redis       *goredis.Client
	revocations auth.RevocationStore
}

// New wires the application from cfg. Without DATABASE_URL every store lives
// in memory; without REDIS_ADDR token revocations do too.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	var st stores
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		app.pool = pool
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				app.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		st = postgresStores(pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory stores")
		st = memoryStores()
	}

	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redis = client
		app.revocations = auth.NewRedisRevocations(client)
	} else {
		app.revocations = auth.NewMemoryRevocations()
	}

	sealer, err := crypto.NewSealer(cfg.DataEncryptionKey)
	if err != nil {
		app.Close()
		return nil, err
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret = randomSecret()
		log.Warn().Msg("JWT_SECRET not set, tokens will not survive a restart")
	}
	app.Auth = auth.NewService(st.Users, app.revocations, sealer, secret, cfg.TokenTTL)

	if cfg.SeedDemoUsers {
		if err := seed(ctx, st, app.Auth, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.Metrics = metrics.New(reg)
	app.Jobs = jobs.New(log.With().Str("component", "jobs").Logger())
	app.Router = app.routes(st, reg)
	return app, nil
}

func (a *App) routes(st stores, reg *prometheus.Registry) http.Handler {
	auditSvc := audit.New(st.Audit)
	employeeSvc := employees.NewService(st.Employees, st.Positions, a.Auth)
	positionSvc := positions.NewService(st.Positions, employeeSvc)
	scheduleSvc := schedules.NewService(st.Schedules, employeeSvc)
	evaluationSvc := evaluations.NewService(st.Evaluations, employeeSvc)
	payrollSvc := payroll.NewService(st.Payrolls, employeeSvc)
	permissionSvc := permissions.NewService(st.Permissions, employeeSvc)
	reportSvc := &reports.Service{
		Employees:   employeeSvc,
		Positions:   positionSvc,
		Schedules:   scheduleSvc,
		Evaluations: evaluationSvc,
		Payrolls:    payrollSvc,
		Permissions: permissionSvc,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics(a.Metrics))
	router.Use(middleware.SecureHeaders(a.Config.Production()))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(middleware.Auth(a.Auth))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", a.handleReady)
	if a.Config.MetricsEnabled {
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	router.Route(APIPrefix, func(r chi.Router) {
		authhandler.NewHandler(a.Auth, a.Metrics, a.Config.RateLimitPerMinute).RegisterRoutes(r)
		employeeshandler.NewHandler(employeeSvc, auditSvc).RegisterRoutes(r)
		roleshandler.NewHandler(positionSvc, auditSvc).RegisterRoutes(r)
		scheduleshandler.NewHandler(scheduleSvc, employeeSvc, auditSvc).RegisterRoutes(r)
		evaluationshandler.NewHandler(evaluationSvc, employeeSvc, auditSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, employeeSvc, auditSvc).RegisterRoutes(r)
		permissionshandler.NewHandler(permissionSvc, employeeSvc, auditSvc).RegisterRoutes(r)
		dashboardhandler.NewHandler(reportSvc, employeeSvc).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
	})
	return router
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if a.pool != nil {
		if err := a.pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
	}
	if a.redis != nil {
		if err := a.redis.Ping(ctx).Err(); err != nil {
			http.Error(w, "redis not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// StartJobs runs the background worker and its periodic jobs until ctx ends.
func (a *App) StartJobs(ctx context.Context) {
	a.Jobs.Start(ctx)
	if sweeper, ok := a.revocations.(auth.Sweeper); ok {
		a.Jobs.Every(ctx, a.Config.SweepInterval, jobRevocationSweep, func(context.Context) (any, error) {
			return map[string]int{"swept": sweeper.Sweep(time.Now().UTC())}, nil
		})
	}
}

func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Run loads configuration from the environment and serves until SIGINT or
// SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "workwise"})

	app, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()
	app.StartJobs(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Environment).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
