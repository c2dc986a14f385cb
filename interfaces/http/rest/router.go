package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	qhandlers "hiretrack-backend/application/queries/handlers"
	"hiretrack-backend/application/services"
	"hiretrack-backend/infrastructure/config"
	"hiretrack-backend/interfaces/http/rest/handlers"
	"hiretrack-backend/interfaces/http/rest/middleware"
	"hiretrack-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	service   *services.DocumentService
	graphData *qhandlers.GetGraphDataHandler
	collector *observability.Collector
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *services.DocumentService,
	graphData *qhandlers.GetGraphDataHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		service:   service,
		graphData: graphData,
		collector: collector,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.collector))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.collector.Handler())
	}

	documentHandler := handlers.NewDocumentHandler(rt.service, rt.logger)
	personHandler := handlers.NewPersonHandler(rt.service, rt.logger)
	graphHandler := handlers.NewGraphHandler(rt.graphData, rt.logger)

	breaker := middleware.CircuitBreaker(
		middleware.DefaultCircuitBreakerConfig("document-store"),
		rt.logger,
	)

	// Legacy whole-document endpoint: GET returns the stored document,
	// POST replaces it wholesale, everything else is 405 with no body.
	router.Route("/api/graph", func(r chi.Router) {
		r.Use(breaker)
		r.Get("/", documentHandler.GetDocument)
		r.Post("/", documentHandler.ReplaceDocument)
	})

	// Typed per-record surface
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(breaker)

		r.Route("/people", func(r chi.Router) {
			r.Post("/", personHandler.CreatePerson)
			r.Put("/{personID}", personHandler.UpdatePerson)
			r.Delete("/{personID}", personHandler.DeletePerson)
			r.Post("/{personID}/children", personHandler.AddChild)
			r.Put("/{personID}/position", personHandler.MovePerson)
		})

		// Graph data endpoint for visualization
		r.Get("/graph-data", graphHandler.GetGraphData)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck verifies the stored document is readable before reporting
// ready; a malformed or unreadable document file fails readiness
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if _, err := rt.service.GetDocument(req.Context()); err != nil {
		rt.logger.Error("Readiness check failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
