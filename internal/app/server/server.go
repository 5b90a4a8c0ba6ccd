package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/domain/account"
	"ems/internal/domain/attendance"
	"ems/internal/domain/audit"
	"ems/internal/domain/dashboard"
	"ems/internal/domain/department"
	"ems/internal/domain/leave"
	"ems/internal/domain/onboarding"
	"ems/internal/domain/payroll"
	"ems/internal/domain/recruitment"
	"ems/internal/domain/reward"
	"ems/internal/domain/salary"
	"ems/internal/domain/task"
	"ems/internal/platform/config"
	"ems/internal/platform/email"
	"ems/internal/platform/metrics"
	"ems/internal/transport/http/api"
	attendancehandler "ems/internal/transport/http/handlers/attendance"
	audithandler "ems/internal/transport/http/handlers/audit"
	authhandler "ems/internal/transport/http/handlers/auth"
	dashboardhandler "ems/internal/transport/http/handlers/dashboard"
	departmenthandler "ems/internal/transport/http/handlers/department"
	employeehandler "ems/internal/transport/http/handlers/employee"
	leavehandler "ems/internal/transport/http/handlers/leave"
	onboardinghandler "ems/internal/transport/http/handlers/onboarding"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	recruitmenthandler "ems/internal/transport/http/handlers/recruitment"
	rewardhandler "ems/internal/transport/http/handlers/reward"
	salaryhandler "ems/internal/transport/http/handlers/salary"
	taskhandler "ems/internal/transport/http/handlers/task"
	"ems/internal/transport/http/middleware"
)

// App wires stores, services and handlers onto a single router.
type App struct {
	Cfg       config.Config
	Pool      *pgxpool.Pool
	Router    chi.Router
	Collector *metrics.Collector
}

func New(cfg config.Config, pool *pgxpool.Pool) *App {
	app := &App{
		Cfg:       cfg,
		Pool:      pool,
		Collector: metrics.New(),
	}
	app.Router = app.buildRouter()
	return app
}

func (a *App) buildRouter() chi.Router {
	accounts := account.NewService(account.NewStore(a.Pool))
	departments := department.NewStore(a.Pool)
	leaves := leave.NewService(leave.NewStore(a.Pool), email.New(a.Cfg))
	attendances := attendance.NewStore(a.Pool)
	salaries := salary.NewStore(a.Pool)
	payrolls := payroll.NewService(payroll.NewStore(a.Pool))
	dashboards := dashboard.NewService(dashboard.NewStore(a.Pool))
	recruiting := recruitment.NewStore(a.Pool)
	onboardings := onboarding.NewStore(a.Pool)
	tasks := task.NewStore(a.Pool)
	rewards := reward.NewStore(a.Pool)
	auditor := audit.New(a.Pool)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(a.Collector))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(a.Cfg.IsProduction()))
	r.Use(middleware.BodyLimit(a.Cfg.MaxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{a.Cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if a.Cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(a.Cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/healthz", a.handleHealth)
	r.Get("/readyz", a.handleReady)

	loginLimit := httprate.LimitByIP(a.Cfg.LoginRatePerMinute, time.Minute)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(a.Cfg.JWTSecret))

		authhandler.NewHandler(accounts, a.Cfg, loginLimit).RegisterRoutes(r)
		departmenthandler.NewHandler(departments, accounts, auditor).RegisterRoutes(r)
		employeehandler.NewHandler(accounts, auditor).RegisterRoutes(r)
		leavehandler.NewHandler(leaves, auditor).RegisterRoutes(r)
		attendancehandler.NewHandler(attendances).RegisterRoutes(r)
		salaryhandler.NewHandler(salaries, auditor).RegisterRoutes(r)
		payrollhandler.NewHandler(payrolls, auditor).RegisterRoutes(r)
		dashboardhandler.NewHandler(dashboards).RegisterRoutes(r)
		recruitmenthandler.NewHandler(recruiting, auditor).RegisterRoutes(r)
		onboardinghandler.NewHandler(onboardings, auditor).RegisterRoutes(r)
		taskhandler.NewHandler(tasks).RegisterRoutes(r)
		rewardhandler.NewHandler(rewards, auditor).RegisterRoutes(r)
		audithandler.NewHandler(auditor).RegisterRoutes(r)

		r.With(middleware.RequireAuth, middleware.RequireAdmin).Get("/metrics", a.handleMetrics)
	})

	r.NotFound(a.spaHandler())

	return r
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, "ok", nil)
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.Pool.Ping(ctx); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	api.Success(w, http.StatusOK, "ready", nil)
}

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, "", api.Payload{"metrics": a.Collector.Snapshot()})
}

// spaHandler serves the built frontend, falling back to index.html for
// client-side routes. API misses still get a JSON 404.
func (a *App) spaHandler() http.HandlerFunc {
	dir := a.Cfg.FrontendDir
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api.Fail(w, http.StatusNotFound, "route not found")
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			api.Fail(w, http.StatusNotFound, "route not found")
			return
		}
		http.ServeFile(w, r, index)
	}
}

// Run serves until ctx is cancelled, then drains connections.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.Cfg.Addr,
		Handler:      a.Router,
		ReadTimeout:  a.Cfg.ReadTimeout,
		WriteTimeout: a.Cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", a.Cfg.Addr, "env", a.Cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
