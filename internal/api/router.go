package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sapperhq/sapper/internal/api/handlers"
	mw "github.com/sapperhq/sapper/internal/api/middleware"
	"github.com/sapperhq/sapper/internal/config"
	"github.com/sapperhq/sapper/internal/service"
	"github.com/sapperhq/sapper/internal/store"
	"go.uber.org/zap"
)

// App holds the router and request metrics.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(logger *zap.Logger) *App {
	sessionStore := store.NewSessionStore()

	sessionSvc := service.NewSessionService(sessionStore, logger, config.MaxBoardDim(), config.MaxSessions())
	inferenceSvc := service.NewInferenceService(sessionSvc, logger)

	sessionHandler := handlers.NewSessionHandler(sessionSvc)
	knowledgeHandler := handlers.NewKnowledgeHandler(inferenceSvc)
	moveHandler := handlers.NewMoveHandler(inferenceSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/", sessionHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetByID)
				r.Delete("/", sessionHandler.Delete)

				r.Post("/observations", knowledgeHandler.Observe)
				r.Get("/knowledge", knowledgeHandler.Get)
				r.Post("/flags/mine", knowledgeHandler.FlagMine)
				r.Post("/flags/safe", knowledgeHandler.FlagSafe)

				r.Get("/moves/safe", moveHandler.Safe)
				r.Get("/moves/random", moveHandler.Random)
			})
		})
	})

	return app
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}
